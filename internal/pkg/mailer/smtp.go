package mailer

import (
	"context"
	"sync/atomic"
	"time"

	"eventpro/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer dials the relay once per message. The relay serializes
// concurrent deliveries on its side.
type SMTPMailer struct {
	cfg    SMTPConfig
	client *mail.Client
	closed atomic.Bool
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create smtp client")
	}
	return &SMTPMailer{cfg: cfg, client: client}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.closed.Load() {
		return ErrClosed
	}

	out := mail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return errs.Wrap(err, "set sender")
	}
	if err := out.To(msg.To); err != nil {
		return errs.Wrapf(err, "set recipient %q", msg.To)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return errs.Wrapf(err, "deliver mail to %q", msg.To)
	}
	return nil
}

func (m *SMTPMailer) Close() error {
	m.closed.Store(true)
	return nil
}
