// Package mailer composes and delivers the outreach emails. Transport is
// isolated behind the Mailer interface so the dispatch guards are testable
// without a network; the one real implementation speaks SMTP with
// STARTTLS using the caller's own credentials.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
)

// Message is one plain-text outreach email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message through an external relay.
type Mailer interface {
	Send(msg Message, password string) error
}

// SMTPMailer sends through an SMTP relay with STARTTLS, authenticating
// with the sender's address and app password. Defaults match Gmail.
type SMTPMailer struct {
	Host string
	Port int
}

// NewSMTPMailer returns a mailer for the given relay endpoint. Empty
// host/zero port fall back to smtp.gmail.com:587.
func NewSMTPMailer(host string, port int) *SMTPMailer {
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == 0 {
		port = 587
	}
	return &SMTPMailer{Host: host, Port: port}
}

// Send submits the message over one SMTP session. net/smtp negotiates
// STARTTLS before authenticating. Errors carry the relay's detail and are
// left to the caller to surface.
func (m *SMTPMailer) Send(msg Message, password string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", msg.From, password, m.Host)

	payload := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		msg.From, msg.To, msg.Subject, msg.Body,
	)

	log.Printf("[SMTP] sending to %s via %s", msg.To, addr)
	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, []byte(payload)); err != nil {
		return fmt.Errorf("smtp relay %s: %w", addr, err)
	}
	return nil
}
