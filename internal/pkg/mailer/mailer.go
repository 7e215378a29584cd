package mailer

import (
	"context"
	"log/slog"
	"sync/atomic"

	"eventpro/internal/pkg/errs"
)

var ErrClosed = errs.New("mailer closed")

// Message is a single outbound email. HTML is optional.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers messages. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// ConsoleMailer logs messages instead of delivering them. Used in dev and
// whenever MAIL_DRIVER=console.
type ConsoleMailer struct {
	log    *slog.Logger
	closed atomic.Bool
}

func NewConsoleMailer(log *slog.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	if m.closed.Load() {
		return ErrClosed
	}
	m.log.InfoContext(ctx, "[DEV-EMAIL]",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)
	return nil
}

func (m *ConsoleMailer) Close() error {
	m.closed.Store(true)
	return nil
}
