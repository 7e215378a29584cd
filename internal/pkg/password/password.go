package password

import (
	"errors"

	"eventpro/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errs.Kind("invalid password", errs.ErrValidation)
	ErrMismatch        = errs.Kind("password mismatch", errs.ErrUnauthorized)
)

const DefaultCost = bcrypt.DefaultCost

func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Compare returns ErrMismatch when password does not match hashed.
func Compare(hashed, password string) error {
	if hashed == "" || password == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return errs.Wrap(err, "compare password")
	}
	return nil
}
