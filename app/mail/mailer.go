// Package mail wraps the outbound mail collaborator behind a narrow
// interface so handlers and tests never touch SMTP directly.
package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"videopull/app/config"
)

// Mailer delivers one message. The only caller today is the password-reset
// flow.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// New returns an SMTP-backed mailer when a mail server is configured, and a
// log-only mailer otherwise so development never needs a relay.
func New(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		log.Println("MAIL_SERVER not set, outbound mail will only be logged")
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// SMTPMailer sends through a plain-auth SMTP relay (e.g. Gmail on 587).
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

// LogMailer records the delivery attempt in the process log and reports
// success. Used when no SMTP relay is configured.
type LogMailer struct{}

func (m *LogMailer) Send(to []string, subject, body string) error {
	log.Printf("mail (not sent): to=%s subject=%q\n%s", strings.Join(to, ","), subject, body)
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = (*LogMailer)(nil)
)
