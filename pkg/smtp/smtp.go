package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/mail"
	smtpPkg "net/smtp"
	"time"
)

type ItfSmtp interface {
	Send(ctx context.Context, msg Message) error
}

type smtp struct {
	cfg         Config
	dialTimeout time.Duration
}

func New(cfg Config) ItfSmtp {
	return &smtp{cfg: cfg, dialTimeout: 15 * time.Second}
}

func (s *smtp) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients configured")
	}

	from, err := envelopeAddress(msg.From)
	if err != nil {
		return err
	}
	recipients := make([]string, 0, len(msg.To))
	for _, to := range msg.To {
		rcpt, err := envelopeAddress(to)
		if err != nil {
			return err
		}
		recipients = append(recipients, rcpt)
	}

	dialer := &net.Dialer{Timeout: s.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("connect to %s: %w", s.cfg.Addr(), err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConfig := &tls.Config{ServerName: s.cfg.Host}
	if s.cfg.Port == 465 {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtpPkg.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if s.cfg.UseTLS && s.cfg.Port != 465 {
		ok, _ := client.Extension("STARTTLS")
		if !ok {
			return errors.New("server does not support STARTTLS")
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtpPkg.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes(time.Now())); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// envelopeAddress strips any display name; MAIL FROM and RCPT TO take the
// bare address only.
func envelopeAddress(raw string) (string, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", raw, err)
	}
	return addr.Address, nil
}
