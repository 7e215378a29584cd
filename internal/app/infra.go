package app

import (
	"context"
	"log/slog"
	"os"

	"eventpro/internal/config"
	"eventpro/internal/database"
	"eventpro/internal/modules/feed"
	"eventpro/internal/notification"
	"eventpro/internal/pkg/jwt"
	"eventpro/internal/pkg/logger"
	"eventpro/internal/pkg/mailer"
	"eventpro/internal/repository"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewLogger,
		NewDB,
		NewMailer,
		NewJWT,
		NewNotifier,
		NewFeedHub,
	),
	fx.Invoke(Migrate),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
}

func NewDB(lc fx.Lifecycle, cfg config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := database.Open(cfg.DB.URL, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			log.Info("closing database")
			return database.Close(db)
		},
	})
	return db, nil
}

// Migrate brings the schema up to date and seeds the settings row before
// the server starts accepting requests.
func Migrate(lc fx.Lifecycle, db *gorm.DB, settings *repository.SettingRepository, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repository.AutoMigrate(db.WithContext(ctx)); err != nil {
				return err
			}
			if err := settings.EnsureDefault(ctx); err != nil {
				return err
			}
			log.Info("database schema ready")
			return nil
		},
	})
}

func NewMailer(lc fx.Lifecycle, cfg config.Config, log *slog.Logger) (mailer.Mailer, error) {
	var m mailer.Mailer
	switch cfg.Mail.Driver {
	case config.MailDriverSMTP:
		smtp, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			Timeout:  cfg.Mail.SendTimeout,
		})
		if err != nil {
			return nil, err
		}
		m = smtp
	default:
		m = mailer.NewConsoleMailer(log)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error { return m.Close() },
	})
	log.Info("mailer configured", "driver", cfg.Mail.Driver)
	return m, nil
}

func NewJWT(cfg config.Config) *jwt.Service {
	return jwt.New(cfg.JWT.Secret, cfg.JWT.TTL)
}

func NewNotifier(m mailer.Mailer, cfg config.Config, log *slog.Logger) *notification.Service {
	return notification.NewService(m, cfg.Mail.SendTimeout, log)
}

func NewFeedHub(lc fx.Lifecycle, log *slog.Logger) *feed.Hub {
	hub := feed.NewHub(log)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}
