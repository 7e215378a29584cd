package repository

import (
	"context"

	"gorm.io/gorm"
)

// UploadRefs lists every stored image/logo/avatar value that may point at
// an uploaded file.
func UploadRefs(ctx context.Context, db *gorm.DB) ([]string, error) {
	sources := []struct{ table, column string }{
		{"events", "image"},
		{"blogs", "image"},
		{"settings", "logo"},
		{"users", "avatar"},
	}

	var out []string
	for _, src := range sources {
		var vals []string
		err := db.WithContext(ctx).Table(src.table).
			Where(src.column+" <> ''").
			Pluck(src.column, &vals).Error
		if err != nil {
			return nil, translate(err, "list "+src.table+" uploads")
		}
		out = append(out, vals...)
	}
	return out, nil
}
