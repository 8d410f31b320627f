package service

import (
	"context"
	"errors"
	"fmt"

	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/repository"
)

// IdentityResolver turns a bearer token into the user it was issued for.
// It is the only source of the current user for authenticated operations.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

type identityResolver struct {
	tokens   TokenService
	userRepo repository.UserRepository
}

func NewIdentityResolver(tokens TokenService, userRepo repository.UserRepository) IdentityResolver {
	return &identityResolver{tokens: tokens, userRepo: userRepo}
}

// Resolve fails with ErrUnauthenticated for a missing or bad token (wrapping the
// ErrToken* reason) and ErrUserNotFound when the subject no longer exists.
func (r *identityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	username, err := r.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := r.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
