// Package notify sends transactional email over SMTP.
package notify

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) addr() string {
	return fmt.Sprintf("%s:%d", m.host, m.port)
}

func (m *SMTPMailer) auth() smtp.Auth {
	if m.username == "" {
		return nil
	}
	return smtp.PlainAuth("", m.username, m.password, m.host)
}

// Send delivers an HTML email.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(m.addr(), m.auth(), m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}
	return nil
}

// SendWithAttachment delivers a plain-text email with a single file attached.
func (m *SMTPMailer) SendWithAttachment(to, subject, body string, attachment []byte, filename string) error {
	const boundary = "resumecraft-mail-boundary"

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: multipart/mixed; boundary=\"" + boundary + "\"\r\n")
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body + "\r\n")

	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: application/octet-stream\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString("Content-Disposition: attachment; filename=\"" + filename + "\"\r\n")
	msg.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// RFC 2045: base64 lines must not exceed 76 characters
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded + "\r\n")
	msg.WriteString("--" + boundary + "--\r\n")

	if err := smtp.SendMail(m.addr(), m.auth(), m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending email with attachment to %s: %w", to, err)
	}
	return nil
}
