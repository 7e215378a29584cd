package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/mailer"
)

const (
	SubjectBookingApproved = "Thông báo phê duyệt đặt lịch từ EventPro"
	SubjectBookingRejected = "Thông báo từ chối đặt lịch từ EventPro"
	SubjectContactReply    = "Phản hồi từ EventPro"

	dateLayout = "02/01/2006"
)

// Service composes customer-facing emails and hands them to a Mailer.
// Every delivery gets its own deadline derived from the caller's context.
type Service struct {
	mailer  mailer.Mailer
	timeout time.Duration
	log     *slog.Logger
}

func NewService(m mailer.Mailer, timeout time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{mailer: m, timeout: timeout, log: log}
}

func (s *Service) BookingApproved(ctx context.Context, b domain.BookingRequest) error {
	body := fmt.Sprintf(
		"Chúng tôi xin thông báo rằng yêu cầu đặt lịch của bạn cho sự kiện \"%s\" vào ngày %s đã được phê duyệt.",
		b.EventType, b.EventDate.Format(dateLayout),
	)
	return s.send(ctx, b.Email, b.CustomerName, SubjectBookingApproved, body)
}

func (s *Service) BookingRejected(ctx context.Context, b domain.BookingRequest) error {
	reason := domain.DefaultRejectionReason
	if b.RejectionReason != nil {
		reason = *b.RejectionReason
	}
	body := fmt.Sprintf(
		"Chúng tôi rất tiếc phải thông báo rằng yêu cầu đặt lịch của bạn cho sự kiện \"%s\" vào ngày %s đã bị từ chối.\n\nLý do: %s.",
		b.EventType, b.EventDate.Format(dateLayout), reason,
	)
	return s.send(ctx, b.Email, b.CustomerName, SubjectBookingRejected, body)
}

func (s *Service) ContactReply(ctx context.Context, c domain.ContactMessage, reply string) error {
	body := "Cảm ơn bạn đã liên hệ với chúng tôi. Dưới đây là phản hồi của chúng tôi:\n\n" + reply
	return s.send(ctx, c.Email, c.Name, SubjectContactReply, body)
}

func (s *Service) send(ctx context.Context, to, name, subject, body string) error {
	html, err := renderHTML(name, body)
	if err != nil {
		// plain text alone is still deliverable
		s.log.WarnContext(ctx, "mail html render failed", slog.String("subject", subject), slog.Any("error", err))
		html = ""
	}

	msg := mailer.Message{
		To:      to,
		Subject: subject,
		Text:    fmt.Sprintf("Chào %s,\n\n%s\n\nTrân trọng,\nEventPro Team", name, body),
		HTML:    html,
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return errs.Mark(errs.Wrapf(err, "send %q to %s", subject, to), errs.ErrNotificationDelivery)
	}
	s.log.InfoContext(ctx, "mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}
