package contact

import (
	"context"
	"log/slog"
	"strings"

	"eventpro/internal/domain"
	"eventpro/internal/modules/feed"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/pagination"
	"eventpro/internal/pkg/validator"
)

const DefaultPageSize = 5

type Service struct {
	contacts ContactRepository
	notifier Notifier
	feed     Publisher
	log      *slog.Logger
}

func NewService(contacts ContactRepository, notifier Notifier, feed Publisher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{contacts: contacts, notifier: notifier, feed: feed, log: log}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	c := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  domain.ContactPending,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, errs.Wrap(err, "create contact")
	}

	s.feed.Publish(feed.ContactCreated, c.ID)
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, errs.Wrap(err, "get contact")
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, q pagination.Query) (*ListResponse, error) {
	p := q.Normalize(DefaultPageSize)

	items, total, err := s.contacts.List(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list contacts")
	}
	return &ListResponse{
		Contacts:      items,
		CurrentPage:   p.Page,
		TotalPages:    p.TotalPages(total),
		TotalContacts: total,
	}, nil
}

// Reply marks a Pending message Replied, then emails the reply. The stored
// message text is never changed. A failed send is logged and reported in
// the result without undoing the status change.
func (s *Service) Reply(ctx context.Context, id int64, req ReplyRequest) (*ReplyResult, error) {
	req.ReplyMessage = strings.TrimSpace(req.ReplyMessage)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	changed, err := s.contacts.Transition(ctx, id, domain.ContactReplied)
	if err != nil {
		return nil, errs.Wrapf(err, "reply contact %d", id)
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrAlreadyProcessed
	}

	sent := true
	if err := s.notifier.ContactReply(ctx, *c, req.ReplyMessage); err != nil {
		sent = false
		s.log.WarnContext(ctx, "contact reply not delivered",
			slog.Int64("contact_id", id),
			slog.Any("error", err),
		)
	}

	s.feed.Publish(feed.ContactReplied, id)
	return &ReplyResult{ContactMessage: c, NotificationSent: sent}, nil
}

// Delete removes the message outright, whatever its status.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return ErrContactNotFound
		}
		return errs.Wrap(err, "delete contact")
	}
	s.feed.Publish(feed.ContactDeleted, id)
	return nil
}
