package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/nurpe/donations-service/internal/config"
)

// Mailer is the transport behind outcome notifications. Implementations
// return an error when the message was not accepted by the transport.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

func NewSMTP(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		timeout: cfg.SendTimeout,
	}
}

// Send delivers one message. A send that exceeds the configured timeout is
// reported as a failure rather than blocking the request.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", to, err)
		}
		return nil
	case <-time.After(m.timeout):
		return fmt.Errorf("smtp send to %s: timed out after %s", to, m.timeout)
	}
}
