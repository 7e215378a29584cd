package dashboard

import (
	"context"
	"time"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
)

// Months is the length of the bookings-per-month series.
const Months = 12

type Service struct {
	src Sources
	now func() time.Time
}

func NewService(src Sources) *Service {
	return &Service{src: src, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	var (
		t   Totals
		err error
	)

	counts := []struct {
		dst  *int64
		src  Counter
		name string
	}{
		{&t.Customers, s.src.Customers, "customers"},
		{&t.Events, s.src.Events, "events"},
		{&t.Contracts, s.src.Contracts, "contracts"},
		{&t.Blogs, s.src.Blogs, "blogs"},
		{&t.Bookings, s.src.Bookings, "bookings"},
		{&t.Contacts, s.src.Contacts, "contacts"},
	}
	for _, c := range counts {
		if *c.dst, err = c.src.Count(ctx); err != nil {
			return nil, errs.Wrapf(err, "count %s", c.name)
		}
	}

	if t.PendingBookings, err = s.src.Bookings.CountByStatus(ctx, domain.BookingPending); err != nil {
		return nil, errs.Wrap(err, "count pending bookings")
	}
	if t.PendingContacts, err = s.src.Contacts.CountByStatus(ctx, domain.ContactPending); err != nil {
		return nil, errs.Wrap(err, "count pending contacts")
	}

	roles, err := s.src.Users.CountByRole(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "count users by role")
	}
	for _, r := range roles {
		t.Users += r.Count
	}

	perType, err := s.src.EventTypes.EventCounts(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "count events by type")
	}

	series, err := s.bookingsPerMonth(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		Totals:       t,
		UsersByRole:  roles,
		EventStats:   perType,
		BookingStats: series,
	}, nil
}

// bookingsPerMonth buckets bookings into the last Months calendar months
// (UTC), oldest first, ending with the current month.
func (s *Service) bookingsPerMonth(ctx context.Context) (MonthlySeries, error) {
	now := s.now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	first := current.AddDate(0, -(Months - 1), 0)

	created, err := s.src.Bookings.CreatedSince(ctx, first)
	if err != nil {
		return MonthlySeries{}, errs.Wrap(err, "load booking dates")
	}

	out := MonthlySeries{
		Labels: make([]string, Months),
		Data:   make([]int64, Months),
	}
	for i := range Months {
		out.Labels[i] = first.AddDate(0, i, 0).Format("01/2006")
	}
	for _, at := range created {
		at = at.UTC()
		idx := (at.Year()-first.Year())*12 + int(at.Month()) - int(first.Month())
		if idx >= 0 && idx < Months {
			out.Data[idx]++
		}
	}
	return out, nil
}
