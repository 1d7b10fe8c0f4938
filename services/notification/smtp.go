package notification

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends email via unauthenticated SMTP (Mailpit-compatible, or
// a real relay in front of the provider of choice).
type SMTPMailer struct {
	addr string
}

func NewSMTPMailer(host, port string) *SMTPMailer {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	return &SMTPMailer{addr: fmt.Sprintf("%s:%s", host, port)}
}

func (m *SMTPMailer) Send(msg Message) error {
	raw := buildMessage(msg)
	return smtp.SendMail(m.addr, nil, msg.From, []string{msg.To}, []byte(raw))
}

func buildMessage(msg Message) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		msg.From,
		msg.To,
		msg.Subject,
		msg.HTML,
	)
}
