package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/config"
)

// Mailer wraps SMTP configuration for outbound notification mail.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configured reports whether a sender address is set; without one the reset
// flow still succeeds but no mail leaves the process.
func (m *Mailer) Configured() bool { return m.from != "" }

// SendPasswordReset sends the reset link for a requested password reset.
// The link stays valid for one hour.
func (m *Mailer) SendPasswordReset(to, resetURL string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = "Reset your password"
	e.Text = []byte(fmt.Sprintf("Follow this link to reset your password (valid for 1 hour):\n\n%s\n", resetURL))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
