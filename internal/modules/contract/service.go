package contract

import (
	"context"
	"strings"
	"time"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

const DefaultPageSize = 5

type Service struct {
	contracts ContractRepository
	customers CustomerReader
	types     EventTypeReader
}

func NewService(contracts ContractRepository, customers CustomerReader, types EventTypeReader) *Service {
	return &Service{contracts: contracts, customers: customers, types: types}
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	status := domain.ContractStatus(strings.TrimSpace(q.Status))
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	p := q.Normalize(DefaultPageSize)
	items, total, err := s.contracts.List(ctx, status, strings.TrimSpace(q.Search), p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list contracts")
	}
	return &ListResponse{
		Contracts:      items,
		CurrentPage:    p.Page,
		TotalPages:     p.TotalPages(total),
		TotalContracts: total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Contract, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, errs.Wrap(err, "get contract")
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Contract, error) {
	req.ContractCode = strings.TrimSpace(req.ContractCode)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(req.Status, domain.ContractPending)
	if err != nil {
		return nil, err
	}
	if err := checkAmounts(req.TotalCost, req.Deposit); err != nil {
		return nil, err
	}
	if err := s.ensureRefs(ctx, req.CustomerID, req.EventTypeID); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, req.ContractCode, 0); err != nil {
		return nil, err
	}

	c := &domain.Contract{
		ContractCode: req.ContractCode,
		CustomerID:   req.CustomerID,
		EventTypeID:  req.EventTypeID,
		EventDate:    date,
		Location:     req.Location,
		TotalCost:    req.TotalCost,
		Deposit:      req.Deposit,
		Status:       status,
	}
	if err := s.contracts.Create(ctx, c); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, errs.Wrap(err, "create contract")
	}
	return s.Get(ctx, c.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Contract, error) {
	req.ContractCode = strings.TrimSpace(req.ContractCode)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ContractCode != "" && req.ContractCode != c.ContractCode {
		if err := s.ensureCodeFree(ctx, req.ContractCode, id); err != nil {
			return nil, err
		}
		c.ContractCode = req.ContractCode
	}
	customerID, typeID := c.CustomerID, c.EventTypeID
	if req.CustomerID != 0 {
		customerID = req.CustomerID
	}
	if req.EventTypeID != 0 {
		typeID = req.EventTypeID
	}
	if customerID != c.CustomerID || typeID != c.EventTypeID {
		if err := s.ensureRefs(ctx, customerID, typeID); err != nil {
			return nil, err
		}
		c.CustomerID, c.EventTypeID = customerID, typeID
	}
	if strings.TrimSpace(req.EventDate) != "" {
		if c.EventDate, err = parseDate(req.EventDate); err != nil {
			return nil, err
		}
	}
	if req.Location != "" {
		c.Location = req.Location
	}
	if req.TotalCost != nil {
		c.TotalCost = *req.TotalCost
	}
	if req.Deposit != nil {
		c.Deposit = *req.Deposit
	}
	if err := checkAmounts(c.TotalCost, c.Deposit); err != nil {
		return nil, err
	}
	if c.Status, err = parseStatus(req.Status, c.Status); err != nil {
		return nil, err
	}

	if err := s.contracts.Save(ctx, c); err != nil {
		if errs.Is(err, errs.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, errs.Wrap(err, "update contract")
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.contracts.Delete(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrContractNotFound
		}
		return errs.Wrap(err, "delete contract")
	}
	return nil
}

func (s *Service) ensureRefs(ctx context.Context, customerID, typeID int64) error {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrUnknownCustomer
		}
		return errs.Wrap(err, "load customer")
	}
	if _, err := s.types.GetByID(ctx, typeID); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrUnknownEventType
		}
		return errs.Wrap(err, "load event type")
	}
	return nil
}

func (s *Service) ensureCodeFree(ctx context.Context, code string, exceptID int64) error {
	taken, err := s.contracts.ExistsByCode(ctx, code, exceptID)
	if err != nil {
		return errs.Wrap(err, "check contract code")
	}
	if taken {
		return ErrCodeTaken
	}
	return nil
}

func checkAmounts(total, deposit decimal.Decimal) error {
	if total.IsNegative() || deposit.IsNegative() {
		return ErrNegativeAmount
	}
	if deposit.GreaterThan(total) {
		return ErrDepositTooLarge
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

func parseStatus(v string, fallback domain.ContractStatus) (domain.ContractStatus, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	status := domain.ContractStatus(v)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
