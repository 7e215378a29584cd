package customer

import (
	"context"
	"strings"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/validator"

	"github.com/jinzhu/copier"
)

const DefaultPageSize = 5

type Service struct {
	customers CustomerRepository
}

func NewService(customers CustomerRepository) *Service {
	return &Service{customers: customers}
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	p := q.Normalize(DefaultPageSize)
	items, total, err := s.customers.List(ctx, q.Search, p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list customers")
	}
	return &ListResponse{
		Customers:      items,
		CurrentPage:    p.Page,
		TotalPages:     p.TotalPages(total),
		TotalCustomers: total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "get customer")
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Customer, error) {
	req.CustomerCode = strings.TrimSpace(req.CustomerCode)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, req.CustomerCode, 0); err != nil {
		return nil, err
	}

	c := &domain.Customer{}
	if err := copier.Copy(c, &req); err != nil {
		return nil, errs.Wrap(err, "map customer")
	}
	if err := s.customers.Create(ctx, c); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, errs.Wrap(err, "create customer")
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Customer, error) {
	req.CustomerCode = strings.TrimSpace(req.CustomerCode)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CustomerCode != "" && req.CustomerCode != c.CustomerCode {
		if err := s.ensureCodeFree(ctx, req.CustomerCode, id); err != nil {
			return nil, err
		}
	}

	if err := copier.CopyWithOption(c, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply customer patch")
	}
	if err := s.customers.Save(ctx, c); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, errs.Wrap(err, "update customer")
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.customers.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errs.Is(err, errs.ErrNotFound):
		return ErrCustomerNotFound
	case errs.Is(err, errs.ErrConflict):
		return ErrCustomerInUse
	}
	return errs.Wrap(err, "delete customer")
}

func (s *Service) ensureCodeFree(ctx context.Context, code string, exceptID int64) error {
	taken, err := s.customers.ExistsByCode(ctx, code, exceptID)
	if err != nil {
		return errs.Wrap(err, "check customer code")
	}
	if taken {
		return ErrCodeTaken
	}
	return nil
}
