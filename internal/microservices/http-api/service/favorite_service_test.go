package service

import (
	"context"
	"testing"

	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite_Success(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	recipes := new(MockRecipeRepository)
	svc := NewFavoriteService(favorites, recipes, discardLogger())

	recipes.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	favorites.On("Exists", mock.Anything, "u-1", int64(5)).Return(false, nil)
	favorites.On("Create", mock.Anything, mock.AnythingOfType("*models.Favorite")).Return(nil)

	favorite, err := svc.Add(context.Background(), "u-1", 5)

	require.NoError(t, err)
	assert.Equal(t, "u-1", favorite.UserID)
	assert.Equal(t, int64(5), favorite.RecipeID)
	favorites.AssertExpectations(t)
}

func TestAddFavorite_Twice(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	recipes := new(MockRecipeRepository)
	svc := NewFavoriteService(favorites, recipes, discardLogger())

	recipes.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	favorites.On("Exists", mock.Anything, "u-1", int64(5)).Return(false, nil).Once()
	favorites.On("Exists", mock.Anything, "u-1", int64(5)).Return(true, nil)
	favorites.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Add(context.Background(), "u-1", 5)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), "u-1", 5)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)
	favorites.AssertNumberOfCalls(t, "Create", 1)
}

func TestAddFavorite_RaceLoser(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	recipes := new(MockRecipeRepository)
	svc := NewFavoriteService(favorites, recipes, discardLogger())

	recipes.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	favorites.On("Exists", mock.Anything, "u-1", int64(5)).Return(false, nil)
	favorites.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := svc.Add(context.Background(), "u-1", 5)

	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestAddFavorite_RecipeNotFound(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	recipes := new(MockRecipeRepository)
	svc := NewFavoriteService(favorites, recipes, discardLogger())

	recipes.On("Exists", mock.Anything, int64(5)).Return(false, nil)

	_, err := svc.Add(context.Background(), "u-1", 5)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
	favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetFavorite_NotFound(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	svc := NewFavoriteService(favorites, new(MockRecipeRepository), discardLogger())

	favorites.On("Get", mock.Anything, "u-1", int64(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.Get(context.Background(), "u-1", 5)

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	svc := NewFavoriteService(favorites, new(MockRecipeRepository), discardLogger())

	favorites.On("Delete", mock.Anything, "u-1", int64(5)).Return(repository.ErrNotFound)

	err := svc.Remove(context.Background(), "u-1", 5)

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestListFavorites(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	svc := NewFavoriteService(favorites, new(MockRecipeRepository), discardLogger())

	favorites.On("ListDetailed", mock.Anything, "u-1").
		Return([]models.FavoriteDetail{{RecipeID: 5, Title: "Soup", AuthorUsername: "alice"}}, nil)

	list, err := svc.ListDetailed(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Soup", list[0].Title)
}
