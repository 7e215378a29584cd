package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eventpro/internal/pkg/errs"

	"github.com/google/uuid"
)

// URLPrefix is the path the upload directory is served under.
const URLPrefix = "/uploads"

// Kind selects which extensions an endpoint accepts.
type Kind struct {
	Name string
	Exts map[string]string // extension -> sniffed MIME type
}

var (
	Images = Kind{Name: "image", Exts: map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
	}}
	BlogImages = Kind{Name: "blog image", Exts: map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
	}}
)

type Stored struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

type Service struct {
	dir      string
	maxBytes int64
	baseURL  string
	now      func() time.Time
	newID    func() string
}

// NewService stores files in dir. baseURL, when set, is prepended to the
// returned URLs.
func NewService(dir string, maxBytes int64, baseURL string) *Service {
	return &Service{
		dir:      dir,
		maxBytes: maxBytes,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		now:      time.Now,
		newID:    func() string { return uuid.NewString()[:8] },
	}
}

func (s *Service) MaxBytes() int64 { return s.maxBytes }

func (s *Service) Dir() string { return s.dir }

// Save validates fh against kind and writes it as <unixmillis>-<id8><ext>.
func (s *Service) Save(ctx context.Context, fh *multipart.FileHeader, kind Kind) (*Stored, error) {
	if fh == nil {
		return nil, ErrNoFile
	}
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := kind.Exts[ext]
	if !ok {
		return nil, ErrInvalidFileType
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(err, "open upload")
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, errs.Wrap(err, "read upload header")
	}
	mimeType, _, _ := strings.Cut(http.DetectContentType(head[:n]), ";")
	if mimeType != want {
		return nil, ErrInvalidFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, errs.Wrap(err, "rewind upload")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "create upload directory")
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), s.newID(), ext)
	path := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, errs.Wrap(err, "create upload file")
	}
	written, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, errs.Wrap(err, "write upload file")
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return nil, ErrFileTooLarge
	}

	return &Stored{
		Filename: name,
		URL:      s.baseURL + URLPrefix + "/" + name,
		MimeType: mimeType,
		Size:     written,
	}, nil
}
