package jwt

import (
	"time"

	"eventpro/internal/pkg/errs"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errs.Kind("invalid token", errs.ErrUnauthorized)

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) GenerateToken(userID int64, role string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

// ValidateToken checks signature and expiry.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr)
}

// ParseIgnoringExpiry checks only the signature so an expired session can be
// exchanged for a fresh token.
func (s *Service) ParseIgnoringExpiry(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, jwtlib.WithoutClaimsValidation())
}

func (s *Service) parse(tokenStr string, opts ...jwtlib.ParserOption) (*Claims, error) {
	opts = append(opts,
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
