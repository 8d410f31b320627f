package service

import (
	"errors"
	"fmt"
)

// Identity and token errors
var (
	ErrDuplicateIdentity  = errors.New("duplicate identity")
	ErrNameInUse          = fmt.Errorf("%w: username already in use", ErrDuplicateIdentity)
	ErrEmailInUse         = fmt.Errorf("%w: email already in use", ErrDuplicateIdentity)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenMalformed        = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenMissingSubject   = errors.New("missing username in token")
)

// Recipe, rating and favorite errors
var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotRecipeAuthor    = errors.New("not the recipe author")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrInvalidRatingValue = errors.New("rating must be between 1 and 3")
	ErrAlreadyRated       = errors.New("already rated")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrAlreadyFavorited   = errors.New("already favorited")
)
