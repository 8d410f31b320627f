package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recipehub/internal/middleware/auth"
	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/repository"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
	Login(ctx context.Context, username, password string) (IssuedToken, *models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	loginTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService wires the credential store to the token service. loginTTL is
// the lifetime requested for tokens issued by Login.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, loginTTL time.Duration, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		loginTTL: loginTTL,
		logger:   logger,
	}
}

// Register creates a user with a bcrypt hashed password.
func (s *authService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	// Check if user exists
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrNameInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// Check if email exists
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	// A concurrent registration can still win the race past the pre-checks
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	s.logger.Info("user_registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and issues a bearer token for the username.
func (s *authService) Login(ctx context.Context, username, password string) (IssuedToken, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return IssuedToken{}, nil, err
		}
		// User not found, still pay for one bcrypt compare so timing matches a wrong password
		_ = auth.VerifyDummy(password)
		return IssuedToken{}, nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return IssuedToken{}, nil, ErrInvalidCredentials
	}

	issued, err := s.tokens.Issue(user.Username, s.loginTTL)
	if err != nil {
		return IssuedToken{}, nil, err
	}

	s.logger.Info("user_logged_in", "user_id", user.ID)
	return issued, user, nil
}
