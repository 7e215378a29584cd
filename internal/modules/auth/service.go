package auth

import (
	"context"
	"strings"
	"sync"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/password"
	"eventpro/internal/pkg/validator"
)

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := password.Hash("not-a-real-password")
	return h
})

type Service struct {
	users UserRepository
	jwt   TokenIssuer
}

func NewService(users UserRepository, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks credentials and issues a session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			_ = password.Compare(dummyHash(), req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "load user")
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		if errs.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.issue(user)
}

// Register creates a customer account and logs it in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	if taken, err := s.users.ExistsByEmail(ctx, req.Email, 0); err != nil {
		return nil, errs.Wrap(err, "check email")
	} else if taken {
		return nil, ErrEmailAlreadyExists
	}
	if taken, err := s.users.ExistsByUsername(ctx, req.Username, 0); err != nil {
		return nil, errs.Wrap(err, "check username")
	} else if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, errs.Wrap(err, "create user")
	}

	return s.issue(user)
}

// Refresh reissues a token for a signed but possibly expired one. The role
// is re-read so a demoted user does not keep old privileges.
func (s *Service) Refresh(ctx context.Context, token string) (*TokenResponse, error) {
	claims, err := s.jwt.ParseIgnoringExpiry(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "load user")
	}
	return s.issue(user)
}

func (s *Service) issue(user *domain.User) (*TokenResponse, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, errs.Wrap(err, "sign token")
	}
	user.PasswordHash = ""
	return &TokenResponse{Token: token, User: user}, nil
}
