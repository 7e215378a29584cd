package auth

import (
	"context"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/jwt"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string, exceptID int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string, exceptID int64) (bool, error)
}

// TokenIssuer is the subset of *jwt.Service the flows need.
type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
	ParseIgnoringExpiry(token string) (*jwt.Claims, error)
}
