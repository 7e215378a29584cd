package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Error kinds. Module-level sentinels are marked with one of these so the
// HTTP layer can map any error to a status without knowing the module.
var (
	ErrValidation           = cr.New("validation error")
	ErrNotFound             = cr.New("not found")
	ErrStateConflict        = cr.New("state conflict")
	ErrDuplicate            = cr.New("duplicate")
	ErrConflict             = cr.New("conflict")
	ErrUnauthorized         = cr.New("unauthorized")
	ErrForbidden            = cr.New("forbidden")
	ErrNotificationDelivery = cr.New("notification delivery failed")
)

func New(msg string) error {
	return cr.New(msg)
}

// Kind returns a new sentinel carrying msg that also matches kind under errors.Is.
func Kind(msg string, kind error) error {
	return cr.Mark(cr.NewWithDepth(1, msg), kind)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Root strips every wrapper and returns the original cause.
func Root(err error) error {
	return cr.UnwrapAll(err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func As(err error, target any) bool {
	return cr.As(err, target)
}
