package blog

import (
	"context"
	"strings"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/validator"

	"github.com/jinzhu/copier"
)

const (
	AdminPageSize  = 5
	PublicPageSize = 6
)

type Service struct {
	blogs BlogRepository
}

func NewService(blogs BlogRepository) *Service {
	return &Service{blogs: blogs}
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	status := domain.BlogStatus(strings.TrimSpace(q.Status))
	if status != "" && status != domain.BlogPending && status != domain.BlogApproved {
		return nil, ErrInvalidStatus
	}
	return s.list(ctx, status, q, AdminPageSize)
}

// ListPublic ignores any requested status and returns approved posts only.
func (s *Service) ListPublic(ctx context.Context, q ListQuery) (*ListResponse, error) {
	return s.list(ctx, domain.BlogApproved, q, PublicPageSize)
}

func (s *Service) list(ctx context.Context, status domain.BlogStatus, q ListQuery, defaultLimit int) (*ListResponse, error) {
	p := q.Normalize(defaultLimit)
	items, total, err := s.blogs.List(ctx, status, strings.TrimSpace(q.Search), p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list blogs")
	}
	return &ListResponse{
		Blogs:       items,
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages(total),
		TotalBlogs:  total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, errs.Wrap(err, "get blog")
	}
	return b, nil
}

func (s *Service) GetPublic(ctx context.Context, id int64) (*domain.Blog, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BlogApproved {
		return nil, ErrBlogNotFound
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Blog, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	b := &domain.Blog{}
	if err := copier.Copy(b, &req); err != nil {
		return nil, errs.Wrap(err, "map blog")
	}
	if b.Status == "" {
		b.Status = domain.BlogPending
	}
	if err := s.blogs.Create(ctx, b); err != nil {
		return nil, errs.Wrap(err, "create blog")
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Blog, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(b, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply blog patch")
	}
	if req.Status != "" {
		b.Status = domain.BlogStatus(req.Status)
	}
	if err := s.blogs.Save(ctx, b); err != nil {
		return nil, errs.Wrap(err, "update blog")
	}
	return b, nil
}

// ToggleApproval flips the post between pending and approved.
func (s *Service) ToggleApproval(ctx context.Context, id int64) (*domain.Blog, error) {
	if err := s.blogs.ToggleApproval(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, errs.Wrap(err, "toggle blog approval")
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.blogs.Delete(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrBlogNotFound
		}
		return errs.Wrap(err, "delete blog")
	}
	return nil
}
