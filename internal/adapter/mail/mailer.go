package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"campustasks/internal/config"
	"campustasks/internal/core/ports"
)

// SMTPMailer sends mail through the configured SMTP relay. A fresh
// connection is dialed per message; volume is low enough that pooling
// is not worth it.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody, textBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	switch {
	case htmlBody != "" && textBody != "":
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		msg.SetBody("text/html", htmlBody)
	default:
		msg.SetBody("text/plain", textBody)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
