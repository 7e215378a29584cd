package eventtype

import (
	"context"
	"strings"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/validator"

	"github.com/jinzhu/copier"
)

const DefaultPageSize = 10

type Service struct {
	types EventTypeRepository
}

func NewService(types EventTypeRepository) *Service {
	return &Service{types: types}
}

func (s *Service) Public(ctx context.Context) ([]PublicEventType, error) {
	all, err := s.types.All(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list event types")
	}
	out := make([]PublicEventType, 0, len(all))
	for _, et := range all {
		out = append(out, PublicEventType{Name: et.Name, TypeCode: et.TypeCode, Description: et.Description})
	}
	return out, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	p := q.Normalize(DefaultPageSize)
	items, total, err := s.types.List(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list event types")
	}
	return &ListResponse{
		EventTypes:      items,
		CurrentPage:     p.Page,
		TotalPages:      p.TotalPages(total),
		TotalEventTypes: total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.EventType, error) {
	et, err := s.types.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, errs.Wrap(err, "get event type")
	}
	return et, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.EventType, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.TypeCode = strings.TrimSpace(req.TypeCode)
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, req.TypeCode, 0); err != nil {
		return nil, err
	}

	et := &domain.EventType{Name: req.Name, TypeCode: req.TypeCode, Description: req.Description}
	if err := s.types.Create(ctx, et); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, errs.Wrap(err, "create event type")
	}
	return et, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.EventType, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.TypeCode = strings.TrimSpace(req.TypeCode)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	et, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.TypeCode != "" && req.TypeCode != et.TypeCode {
		if err := s.ensureCodeFree(ctx, req.TypeCode, id); err != nil {
			return nil, err
		}
	}
	if err := copier.CopyWithOption(et, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply event type patch")
	}
	if err := s.types.Save(ctx, et); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, errs.Wrap(err, "update event type")
	}
	return et, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.types.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errs.Is(err, errs.ErrNotFound):
		return ErrEventTypeNotFound
	case errs.Is(err, errs.ErrConflict):
		return ErrEventTypeInUse
	}
	return errs.Wrap(err, "delete event type")
}

func (s *Service) ensureCodeFree(ctx context.Context, code string, exceptID int64) error {
	taken, err := s.types.ExistsByCode(ctx, code, exceptID)
	if err != nil {
		return errs.Wrap(err, "check type code")
	}
	if taken {
		return ErrCodeTaken
	}
	return nil
}
