package event

import (
	"context"
	"strings"
	"time"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/validator"
	"eventpro/internal/repository"

	"github.com/jinzhu/copier"
)

const (
	PublicPageSize = 6
	AdminPageSize  = 3
)

type Service struct {
	events EventRepository
	types  EventTypeReader
}

func NewService(events EventRepository, types EventTypeReader) *Service {
	return &Service{events: events, types: types}
}

// ListPublic only ever returns approved events; any status in q is ignored.
func (s *Service) ListPublic(ctx context.Context, q ListQuery) (*ListResponse, error) {
	q.Status = string(domain.EventApproved)
	return s.list(ctx, q, PublicPageSize)
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	if q.Status != "" && !domain.EventStatus(q.Status).Valid() {
		return nil, ErrInvalidStatus
	}
	return s.list(ctx, q, AdminPageSize)
}

func (s *Service) list(ctx context.Context, q ListQuery, defaultLimit int) (*ListResponse, error) {
	p := q.Normalize(defaultLimit)
	filter := repository.EventFilter{
		Status:      domain.EventStatus(q.Status),
		EventTypeID: q.EventTypeID,
		TypeCode:    strings.TrimSpace(q.TypeCode),
		Search:      strings.TrimSpace(q.Search),
	}

	items, total, err := s.events.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list events")
	}
	return &ListResponse{
		Events:      items,
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages(total),
		TotalEvents: total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Wrap(err, "get event")
	}
	return e, nil
}

// GetPublic hides events that are not approved.
func (s *Service) GetPublic(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status != domain.EventApproved {
		return nil, ErrEventNotFound
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(req.Status, domain.EventPending)
	if err != nil {
		return nil, err
	}
	if err := s.ensureType(ctx, req.EventTypeID); err != nil {
		return nil, err
	}

	e := &domain.Event{
		Name:        req.Name,
		EventTypeID: req.EventTypeID,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
		Status:      status,
		Image:       req.Image,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, errs.Wrap(err, "create event")
	}
	return s.Get(ctx, e.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.EventTypeID != 0 && req.EventTypeID != e.EventTypeID {
		if err := s.ensureType(ctx, req.EventTypeID); err != nil {
			return nil, err
		}
	}
	if err := copier.CopyWithOption(e, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply event patch")
	}
	if req.Date != "" {
		if e.Date, err = parseDate(req.Date); err != nil {
			return nil, err
		}
	}
	if e.Status, err = parseStatus(req.Status, e.Status); err != nil {
		return nil, err
	}

	if err := s.events.Save(ctx, e); err != nil {
		return nil, errs.Wrap(err, "update event")
	}
	return s.Get(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, req StatusRequest) (*domain.Event, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	status := domain.EventStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.events.UpdateStatus(ctx, id, status); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Wrap(err, "update event status")
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrEventNotFound
		}
		return errs.Wrap(err, "delete event")
	}
	return nil
}

func (s *Service) ensureType(ctx context.Context, id int64) error {
	if _, err := s.types.GetByID(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrUnknownEventType
		}
		return errs.Wrap(err, "load event type")
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

func parseStatus(v string, fallback domain.EventStatus) (domain.EventStatus, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	status := domain.EventStatus(v)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
