// Package notifier formats and delivers the new-article digest.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/sandovabarbora/articles-checker/internal/model"
)

// Email delivers digests over SMTP with STARTTLS and PLAIN authentication.
type Email struct {
	sender   string
	password string
	receiver string
	host     string
	port     int
	log      *slog.Logger
	now      func() time.Time
}

// NewEmail creates an Email notifier for the given SMTP account.
func NewEmail(sender, password, receiver, host string, port int, log *slog.Logger) *Email {
	return &Email{
		sender:   sender,
		password: password,
		receiver: receiver,
		host:     host,
		port:     port,
		log:      log,
		now:      time.Now,
	}
}

// Notify sends one digest email listing the given articles. The caller is
// expected to skip the call entirely when there is nothing to report.
// A transport failure is returned to the caller; it is the one failure of
// a run that is not absorbed.
func (e *Email) Notify(ctx context.Context, articles []model.Article) error {
	if len(articles) == 0 {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(e.sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(e.receiver); err != nil {
		return fmt.Errorf("set receiver: %w", err)
	}
	msg.Subject(Subject(e.now()))
	msg.SetBodyString(mail.TypeTextPlain, Body(articles))

	client, err := mail.NewClient(e.host,
		mail.WithPort(e.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(e.sender),
		mail.WithPassword(e.password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	e.log.Info("digest sent", "articles", len(articles), "to", e.receiver)
	return nil
}
