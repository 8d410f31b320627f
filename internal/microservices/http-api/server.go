// Package httpapi assembles the recipe API: repositories, services, handlers
// and the gin engine they are mounted on.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"recipehub/internal/config"
	"recipehub/internal/microservices/http-api/handler"
	"recipehub/internal/microservices/http-api/middleware"
	"recipehub/internal/microservices/http-api/repository"
	"recipehub/internal/microservices/http-api/service"
	"recipehub/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators of the API. Redis and Metrics are optional.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// NewRouter wires every layer and returns the gin engine serving the API.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.Config == nil || deps.DB == nil {
		return nil, errors.New("httpapi: config and database are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	recipeRepo := repository.NewRecipeRepository(deps.DB)
	ratingRepo := repository.NewRatingRepository(deps.DB)
	favoriteRepo := repository.NewFavoriteRepository(deps.DB)
	ratingCache := repository.NewRatingCacheRedis(deps.Redis, cfg.CacheTTL)

	// Services
	tokens := service.NewTokenService(service.NewTokenConfig(cfg))
	resolver := service.NewIdentityResolver(tokens, userRepo)
	authService := service.NewAuthService(userRepo, tokens, cfg.LoginTokenTTL, logger)
	recipeService := service.NewRecipeService(recipeRepo, ratingCache, logger)
	ratingService := service.NewRatingService(ratingRepo, recipeRepo, ratingCache, logger)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", deps.Metrics.Handler())
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("httpapi: get sql.DB: %w", err)
	}
	observability.NewHealthChecker(sqlDB, deps.Redis).RegisterRoutes(r.Group("/health"))

	requireAuth := middleware.AuthMiddleware(resolver)

	handler.NewAuthHandler(authService).RegisterRoutes(r.Group("/users"), requireAuth)

	recipes := r.Group("/recipes")
	handler.NewRecipeHandler(recipeService).RegisterRoutes(recipes, requireAuth)
	handler.NewRatingHandler(ratingService).RegisterRoutes(recipes, requireAuth)

	handler.NewFavoriteHandler(favoriteService).RegisterRoutes(r.Group("/favorites", requireAuth))

	return r, nil
}

// Server runs the API until its context is cancelled.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

func NewServer(cfg *config.Config, h http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr(),
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// Run serves HTTP and shuts down gracefully once ctx is done.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http_server_started", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("http_server_stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
