package repository

import (
	"context"
	"testing"

	"recipehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Rating{}, &models.Favorite{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedRecipe(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:        title,
		Description:  title + " description",
		Ingredients:  []string{"water"},
		Instructions: []string{"boil"},
		AuthorID:     author.ID,
	}
	require.NoError(t, NewRecipeRepository(db).Create(context.Background(), recipe))
	return recipe
}

func strPtr(s string) *string { return &s }
