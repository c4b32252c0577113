package infra

import (
	"fmt"
	"net/smtp"

	"github.com/NightFoX54/ERP-Proje/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends plain-text mail through the configured SMTP relay. A zero
// host disables sending — Send becomes a no-op so development setups work
// without a relay.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return &Mailer{}
	}
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		from: cfg.SMTPUser,
	}
}

// Send delivers one message, attaching the file at pdfPath when non-empty.
func (m *Mailer) Send(to, subject, body, pdfPath string) error {
	if m.addr == "" {
		return nil
	}
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return err
		}
	}
	return e.Send(m.addr, m.auth)
}
