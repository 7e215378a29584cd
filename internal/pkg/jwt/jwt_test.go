package jwt

import (
	"testing"
	"time"

	"eventpro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestService_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(1, "customer")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, errs.Is(err, errs.ErrUnauthorized))
}

func TestService_Expired(t *testing.T) {
	svc := New("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken(7, "staff")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := svc.ParseIgnoringExpiry(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestService_Garbage(t *testing.T) {
	_, err := New("secret", time.Hour).ParseIgnoringExpiry("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
