// Package seed loads the accounts and catalogue rows a fresh install needs.
// Every step is keyed on a unique column, so running it again is a no-op.
package seed

import (
	"context"
	"log/slog"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/password"
	"eventpro/internal/repository"

	"gorm.io/gorm"
)

const (
	AdminEmail    = "admin@eventpro.local"
	AdminPassword = "admin123"
	StaffEmail    = "staff@eventpro.local"
	StaffPassword = "staff123"
)

type account struct {
	username string
	email    string
	password string
	role     domain.UserRole
}

var accounts = []account{
	{"admin", AdminEmail, AdminPassword, domain.RoleAdmin},
	{"staff", StaffEmail, StaffPassword, domain.RoleStaff},
}

var eventTypes = []domain.EventType{
	{Name: "Đám cưới", TypeCode: "WEDDING", Description: "Tiệc cưới và lễ thành hôn"},
	{Name: "Hội nghị", TypeCode: "CONFERENCE", Description: "Hội nghị, hội thảo doanh nghiệp"},
	{Name: "Sinh nhật", TypeCode: "BIRTHDAY", Description: "Tiệc sinh nhật"},
	{Name: "Ra mắt sản phẩm", TypeCode: "LAUNCH", Description: "Sự kiện ra mắt sản phẩm"},
}

// Report counts the rows created by one run.
type Report struct {
	Users      int
	EventTypes int
}

func Run(ctx context.Context, db *gorm.DB, log *slog.Logger) (Report, error) {
	var rep Report
	if err := repository.AutoMigrate(db.WithContext(ctx)); err != nil {
		return rep, errs.Wrap(err, "migrate")
	}

	users := repository.NewUserRepository(db)
	for _, a := range accounts {
		_, err := users.GetByEmail(ctx, a.email)
		if err == nil {
			continue
		}
		if !errs.Is(err, errs.ErrNotFound) {
			return rep, errs.Wrapf(err, "look up %s", a.email)
		}

		hash, err := password.Hash(a.password)
		if err != nil {
			return rep, err
		}
		u := &domain.User{Username: a.username, Email: a.email, PasswordHash: hash, Role: a.role}
		if err := users.Create(ctx, u); err != nil {
			return rep, errs.Wrapf(err, "create %s", a.email)
		}
		log.Info("seeded user", "email", a.email, "role", a.role)
		rep.Users++
	}

	types := repository.NewEventTypeRepository(db)
	for _, et := range eventTypes {
		exists, err := types.ExistsByCode(ctx, et.TypeCode, 0)
		if err != nil {
			return rep, err
		}
		if exists {
			continue
		}
		et := et
		if err := types.Create(ctx, &et); err != nil {
			return rep, errs.Wrapf(err, "create event type %s", et.TypeCode)
		}
		rep.EventTypes++
	}

	if err := repository.NewSettingRepository(db).EnsureDefault(ctx); err != nil {
		return rep, errs.Wrap(err, "seed settings")
	}
	return rep, nil
}
