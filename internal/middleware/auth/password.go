package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt hashes; longer passwords are
// rejected rather than truncated.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// dummyHash is compared against when the user does not exist so that a failed
// login costs the same whether or not the username is known.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("recipehub-dummy-password"), bcrypt.DefaultCost)

// HashPassword creates a salted bcrypt hash from the given plaintext password.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	// bcrypt.DefaultCost (10) is what every stored hash is created with
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided plaintext password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}

// VerifyDummy burns one bcrypt comparison and always fails.
func VerifyDummy(providedPassword string) error {
	if err := bcrypt.CompareHashAndPassword(dummyHash, []byte(providedPassword)); err != nil {
		return err
	}
	return bcrypt.ErrMismatchedHashAndPassword
}
