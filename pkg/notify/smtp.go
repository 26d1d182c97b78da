package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go-marketing-backend/config"
)

// SMTPSender delivers notifications by submitting a plain-text mail directly
// to an SMTP server. Supports implicit TLS ("ssl"), explicit upgrade
// ("starttls") and unencrypted ("none") connections.
//
// Send performs blocking network I/O; the dispatcher runs it off the request
// path so a slow mail server cannot stall request handling.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
	security string
	timeout  time.Duration
}

// NewSMTPSender creates the SMTP transport from process configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFromEmail,
		to:       cfg.ContactEmailTo,
		security: cfg.SMTPSecurity,
		timeout:  outboundTimeout,
	}
}

func (s *SMTPSender) Name() string {
	return "smtp"
}

// Configured reports whether the required configuration subset is present.
func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.port != "" && s.username != "" &&
		s.password != "" && s.from != "" && s.to != ""
}

// Send composes and submits the notification mail. Any protocol or network
// error is a send failure.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	client, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("smtp connect failed: %w", err)
	}
	defer client.Close()

	if s.security == "starttls" {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("smtp starttls failed: %w", err)
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail from failed: %w", err)
	}
	if err := client.Rcpt(s.to); err != nil {
		return fmt.Errorf("smtp rcpt to failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write(s.compose(msg)); err != nil {
		w.Close()
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close failed: %w", err)
	}

	return client.Quit()
}

// dial opens the connection according to the configured security mode.
// "ssl" means TLS from the first byte; "starttls" and "none" connect in
// plaintext (the upgrade happens in Send).
func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, s.port)
	dialer := &net.Dialer{Timeout: s.timeout}

	var (
		conn net.Conn
		err  error
	)
	if s.security == "ssl" {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, err
	}

	// The deadline bounds the whole SMTP conversation, not just the dial:
	// greeting, STARTTLS, AUTH and DATA all read from this conn. A stalled
	// server surfaces as a transport failure instead of a hung goroutine.
	if err := conn.SetDeadline(time.Now().Add(s.timeout)); err != nil {
		conn.Close()
		return nil, err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}

// compose builds the raw RFC 5322 message.
func (s *SMTPSender) compose(msg Message) []byte {
	subject := fmt.Sprintf("New contact form submission from %s - %s", msg.Name, msg.Service)

	body := fmt.Sprintf(
		"Time: %s\r\n"+
			"Name: %s\r\n"+
			"Email: %s\r\n"+
			"Phone: %s\r\n"+
			"Company: %s\r\n"+
			"Service: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		msg.Time, msg.Name, msg.Email, msg.Phone, msg.Company, msg.Service, msg.Body,
	)

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.from, s.to, msg.Email, subject, body,
	))
}
