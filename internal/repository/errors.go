package repository

import (
	"errors"
	"strings"

	"eventpro/internal/database"
	"eventpro/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errs.Kind("record not found", errs.ErrNotFound)
	ErrDuplicate = errs.Kind("record already exists", errs.ErrDuplicate)
	ErrInUse     = errs.Kind("record is still referenced", errs.ErrConflict)
)

// translate maps driver errors onto the package sentinels and adds context.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if database.IsUniqueViolation(err) {
		return errs.Mark(errs.Wrap(err, op), ErrDuplicate)
	}
	if database.IsForeignKeyViolation(err) {
		return errs.Mark(errs.Wrap(err, op), ErrInUse)
	}
	return errs.Wrap(err, op)
}

// likePattern builds a case-insensitive contains pattern for
// LOWER(col) LIKE ? ESCAPE '\'.
func likePattern(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	q = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + q + "%"
}

// compareAndSetStatus applies updates only while the row still has status
// from, as one conditional UPDATE. It reports whether the row changed.
func compareAndSetStatus(db *gorm.DB, model any, id int64, from string, updates map[string]any) (bool, error) {
	res := db.Model(model).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
