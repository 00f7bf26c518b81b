// Package mail implements outbound SMTP delivery for transactional mail.
package mail

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"keygate/config"
	"keygate/internal/domain/service"
)

// gomailSender delivers mail over SMTP via gomail.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender builds a MailSender from SMTP configuration.
func NewGomailSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp config missing")
	}

	return &gomailSender{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}, nil
}

// Send delivers one message, honoring context cancellation before dialing.
func (s *gomailSender) Send(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send canceled")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "send mail to %s", mail.To)
	}

	return nil
}
