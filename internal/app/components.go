package app

import (
	"log/slog"

	"eventpro/internal/config"
	"eventpro/internal/modules/auth"
	"eventpro/internal/modules/blog"
	"eventpro/internal/modules/booking"
	"eventpro/internal/modules/contact"
	"eventpro/internal/modules/contract"
	"eventpro/internal/modules/customer"
	"eventpro/internal/modules/dashboard"
	"eventpro/internal/modules/event"
	"eventpro/internal/modules/eventtype"
	"eventpro/internal/modules/feed"
	"eventpro/internal/modules/setting"
	"eventpro/internal/modules/upload"
	"eventpro/internal/modules/user"
	"eventpro/internal/notification"
	"eventpro/internal/pkg/jwt"
	"eventpro/internal/repository"
	"eventpro/internal/router"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewUserRepository,
		repository.NewBookingRepository,
		repository.NewContactRepository,
		repository.NewCustomerRepository,
		repository.NewEventTypeRepository,
		repository.NewEventRepository,
		repository.NewContractRepository,
		repository.NewBlogRepository,
		repository.NewSettingRepository,
	),
)

// ServiceModule binds the concrete repositories to each module's ports.
var ServiceModule = fx.Module("service",
	fx.Provide(
		func(users *repository.UserRepository, j *jwt.Service) *auth.Service {
			return auth.NewService(users, j)
		},
		func(users *repository.UserRepository) *user.Service {
			return user.NewService(users)
		},
		func(r *repository.BookingRepository, n *notification.Service, hub *feed.Hub, log *slog.Logger) *booking.Service {
			return booking.NewService(r, n, hub, log)
		},
		func(r *repository.ContactRepository, n *notification.Service, hub *feed.Hub, log *slog.Logger) *contact.Service {
			return contact.NewService(r, n, hub, log)
		},
		func(r *repository.CustomerRepository) *customer.Service {
			return customer.NewService(r)
		},
		func(r *repository.EventTypeRepository) *eventtype.Service {
			return eventtype.NewService(r)
		},
		func(r *repository.EventRepository, types *repository.EventTypeRepository) *event.Service {
			return event.NewService(r, types)
		},
		func(r *repository.ContractRepository, customers *repository.CustomerRepository, types *repository.EventTypeRepository) *contract.Service {
			return contract.NewService(r, customers, types)
		},
		func(r *repository.BlogRepository) *blog.Service {
			return blog.NewService(r)
		},
		func(r *repository.SettingRepository) *setting.Service {
			return setting.NewService(r)
		},
		func(
			users *repository.UserRepository,
			customers *repository.CustomerRepository,
			events *repository.EventRepository,
			contracts *repository.ContractRepository,
			blogs *repository.BlogRepository,
			types *repository.EventTypeRepository,
			bookings *repository.BookingRepository,
			contacts *repository.ContactRepository,
		) *dashboard.Service {
			return dashboard.NewService(dashboard.Sources{
				Users:      users,
				Customers:  customers,
				Events:     events,
				Contracts:  contracts,
				Blogs:      blogs,
				EventTypes: types,
				Bookings:   bookings,
				Contacts:   contacts,
			})
		},
		func(cfg config.Config) *upload.Service {
			return upload.NewService(cfg.Upload.Dir, cfg.Upload.MaxBytes, cfg.Upload.PublicBaseURL)
		},
	),
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		auth.NewHandler,
		user.NewHandler,
		booking.NewHandler,
		contact.NewHandler,
		customer.NewHandler,
		eventtype.NewHandler,
		event.NewHandler,
		contract.NewHandler,
		blog.NewHandler,
		setting.NewHandler,
		dashboard.NewHandler,
		upload.NewHandler,
		feed.NewHandler,
		router.New,
	),
)
