package upload

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"eventpro/internal/pkg/errs"
)

// PruneOrphans removes files in the upload directory that no reference
// points at and that are older than minAge. refs may be bare names, paths
// or absolute URLs. With dryRun nothing is deleted. It returns the names
// of the files it removed, or would remove.
func (s *Service) PruneOrphans(ctx context.Context, refs []string, minAge time.Duration, dryRun bool) ([]string, error) {
	keep := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		if i := strings.IndexAny(ref, "?#"); i >= 0 {
			ref = ref[:i]
		}
		keep[path.Base(ref)] = struct{}{}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "read upload directory")
	}

	cutoff := s.now().Add(-minAge)
	var removed []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if e.IsDir() {
			continue
		}
		if _, ok := keep[e.Name()]; ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return removed, errs.Wrapf(err, "stat %s", e.Name())
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if !dryRun {
			if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
				return removed, errs.Wrapf(err, "remove %s", e.Name())
			}
		}
		removed = append(removed, e.Name())
	}
	return removed, nil
}
