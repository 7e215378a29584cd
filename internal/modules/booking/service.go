package booking

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eventpro/internal/domain"
	"eventpro/internal/modules/feed"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/pagination"
	"eventpro/internal/pkg/validator"
)

const DefaultPageSize = 5

type Service struct {
	bookings BookingRepository
	notifier Notifier
	feed     Publisher
	log      *slog.Logger
}

func NewService(bookings BookingRepository, notifier Notifier, feed Publisher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		bookings: bookings,
		notifier: notifier,
		feed:     feed,
		log:      log,
	}
}

// Submit stores a new Pending booking. Fields are only checked for presence.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.BookingRequest, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	req.EventType = strings.TrimSpace(req.EventType)
	req.EventDate = strings.TrimSpace(req.EventDate)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	date, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	b := &domain.BookingRequest{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		EventType:    req.EventType,
		EventDate:    date,
		Status:       domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, errs.Wrap(err, "create booking")
	}

	s.feed.Publish(feed.BookingSubmitted, b.ID)
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "get booking")
	}
	return b, nil
}

// List returns one page, newest first.
func (s *Service) List(ctx context.Context, q pagination.Query) (*ListResponse, error) {
	p := q.Normalize(DefaultPageSize)

	items, total, err := s.bookings.List(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list bookings")
	}
	return &ListResponse{
		Bookings:      items,
		CurrentPage:   p.Page,
		TotalPages:    p.TotalPages(total),
		TotalBookings: total,
	}, nil
}

func (s *Service) Approve(ctx context.Context, id int64) (*TransitionResult, error) {
	return s.transition(ctx, id, domain.BookingApproved, nil)
}

// Reject stores reason, or DefaultRejectionReason when it is blank.
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*TransitionResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = domain.DefaultRejectionReason
	}
	return s.transition(ctx, id, domain.BookingRejected, &reason)
}

// transition applies the guarded update first and only then notifies. A
// failed email is logged and reported in the result; the new status stays.
func (s *Service) transition(ctx context.Context, id int64, to domain.BookingStatus, reason *string) (*TransitionResult, error) {
	changed, err := s.bookings.Transition(ctx, id, to, reason)
	if err != nil {
		return nil, errs.Wrapf(err, "set booking %d to %s", id, to)
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrAlreadyProcessed
	}

	var notifyErr error
	kind := feed.BookingApproved
	if to == domain.BookingRejected {
		kind = feed.BookingRejected
		notifyErr = s.notifier.BookingRejected(ctx, *b)
	} else {
		notifyErr = s.notifier.BookingApproved(ctx, *b)
	}
	if notifyErr != nil {
		s.log.WarnContext(ctx, "booking notification failed",
			slog.Int64("booking_id", id),
			slog.String("status", string(to)),
			slog.Any("error", notifyErr),
		)
	}

	s.feed.Publish(kind, id)
	return &TransitionResult{BookingRequest: b, NotificationSent: notifyErr == nil}, nil
}

func parseEventDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidEventDate
}
