package user

import (
	"context"
	"strings"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/password"
	"eventpro/internal/pkg/validator"
	"eventpro/internal/repository"

	"github.com/jinzhu/copier"
)

const DefaultPageSize = 6

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "get user")
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, id, req.Username, req.Email); err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(u, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply profile patch")
	}
	return u, s.save(ctx, u)
}

func (s *Service) ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := password.Compare(u.PasswordHash, req.OldPassword); err != nil {
		if errs.Is(err, password.ErrMismatch) {
			return ErrWrongPassword
		}
		return err
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.save(ctx, u)
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	filter := repository.UserFilter{Role: domain.UserRole(strings.TrimSpace(q.Role))}
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, ErrInvalidRole
	}

	p := q.Normalize(DefaultPageSize)
	items, total, err := s.users.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list users")
	}
	return &ListResponse{
		Users:       items,
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages(total),
		TotalUsers:  total,
	}, nil
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if err := s.ensureUnique(ctx, 0, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		Avatar:       req.Avatar,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, errs.Wrap(err, "create user")
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, id, req.Username, req.Email); err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(u, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply user patch")
	}

	if req.Role != "" {
		role := domain.UserRole(req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		u.Role = role
	}
	if req.Password != "" {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	return u, s.save(ctx, u)
}

// Delete removes a user. Admins cannot remove themselves.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return ErrDeleteSelf
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "delete user")
	}
	return nil
}

func (s *Service) ensureUnique(ctx context.Context, id int64, username, email string) error {
	if email != "" {
		taken, err := s.users.ExistsByEmail(ctx, email, id)
		if err != nil {
			return errs.Wrap(err, "check email")
		}
		if taken {
			return ErrEmailAlreadyExists
		}
	}
	if username != "" {
		taken, err := s.users.ExistsByUsername(ctx, username, id)
		if err != nil {
			return errs.Wrap(err, "check username")
		}
		if taken {
			return ErrUsernameTaken
		}
	}
	return nil
}

func (s *Service) save(ctx context.Context, u *domain.User) error {
	if err := s.users.Update(ctx, u); err != nil {
		switch {
		case errs.Is(err, errs.ErrNotFound):
			return ErrUserNotFound
		case errs.Is(err, errs.ErrDuplicate):
			return ErrEmailAlreadyExists
		}
		return errs.Wrap(err, "update user")
	}
	return nil
}
