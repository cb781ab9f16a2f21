// internal/service/email/sender.go
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// Sender delivers outgoing emails via SMTP. When no host or username is
// configured it reports as unconfigured and sends nothing.
type Sender struct {
	smtpHost string
	smtpPort string
	username string
	password string
	fromName string
	secure   bool
}

func NewSender(host, port, user, pass, fromName string, secure bool) *Sender {
	return &Sender{
		smtpHost: host,
		smtpPort: port,
		username: user,
		password: pass,
		fromName: fromName,
		secure:   secure,
	}
}

// Configured reports whether the channel has credentials to attempt I/O.
func (s *Sender) Configured() bool {
	return s.smtpHost != "" && s.username != ""
}

// Send delivers a plain-text email with a subject line.
func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	if !s.Configured() {
		return fmt.Errorf("email channel not configured")
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.username)
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := s.smtpHost + ":" + s.smtpPort
	auth := smtp.PlainAuth("", s.username, s.password, s.smtpHost)

	if !s.secure {
		// Port 587 - STARTTLS
		if err := smtp.SendMail(serverAddr, auth, s.username, []string{to}, msg); err != nil {
			return fmt.Errorf("send mail failed: %w", err)
		}
		return nil
	}

	// Port 465 - implicit TLS
	tlsConfig := &tls.Config{ServerName: s.smtpHost}
	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("tls dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.smtpHost)
	if err != nil {
		return fmt.Errorf("smtp client failed: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth failed: %w", err)
	}
	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}
