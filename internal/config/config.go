package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultJWTSecret = "change-me-jwt-secret"

	MailDriverConsole = "console"
	MailDriverSMTP    = "smtp"
)

// -----------------------------------------------------------------------------
// required: nothing. Every value has a development default so `go run` works
// against a local sqlite file; prod-like environments are checked in validate.
// -----------------------------------------------------------------------------

type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	CORS   CORSConfig
	Log    LogConfig
	Mail   MailConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	URL string `envconfig:"DATABASE_URL" default:"eventpro.db"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type MailConfig struct {
	Driver      string        `envconfig:"MAIL_DRIVER" default:"console"`
	Host        string        `envconfig:"SMTP_HOST"`
	Port        int           `envconfig:"SMTP_PORT" default:"587"`
	Username    string        `envconfig:"SMTP_USERNAME"`
	Password    string        `envconfig:"SMTP_PASSWORD"`
	From        string        `envconfig:"MAIL_FROM" default:"noreply@eventpro.local"`
	SendTimeout time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"10s"`
}

type UploadConfig struct {
	Dir           string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxBytes      int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:""`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.Mail.Driver = strings.ToLower(strings.TrimSpace(cfg.Mail.Driver))

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validate(cfg *Config) error {
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.Mail.SendTimeout <= 0 {
		return fmt.Errorf("MAIL_SEND_TIMEOUT must be > 0")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be > 0")
	}

	switch cfg.Mail.Driver {
	case MailDriverConsole:
	case MailDriverSMTP:
		if cfg.Mail.Host == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_DRIVER=smtp")
		}
		if cfg.Mail.From == "" {
			return fmt.Errorf("MAIL_FROM is required when MAIL_DRIVER=smtp")
		}
	default:
		return fmt.Errorf("MAIL_DRIVER must be one of: console, smtp")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWT.Secret, DefaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.Mail.Driver != MailDriverSMTP {
			return fmt.Errorf("in prod/release MAIL_DRIVER must be smtp")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
