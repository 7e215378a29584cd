package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, MailDriverConsole, cfg.Mail.Driver)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.IsProd())
}

func TestFromEnv_SMTPRequiresHost(t *testing.T) {
	t.Setenv("MAIL_DRIVER", "SMTP")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "SMTP_HOST")

	t.Setenv("SMTP_HOST", "smtp.example.com")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, MailDriverSMTP, cfg.Mail.Driver)
}

func TestFromEnv_ProdRejectsDefaultSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAIL_DRIVER", "smtp")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_UnknownMailDriver(t *testing.T) {
	t.Setenv("MAIL_DRIVER", "pigeon")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "MAIL_DRIVER")
}
