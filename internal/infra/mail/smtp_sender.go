// Package mail provides the SMTP implementation of the MailSender service.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"skyvault/config"
	"skyvault/internal/domain/service"
)

// debounceWindow suppresses repeat mails with the same recipient and
// subject. Order decisions can be retried quickly by impatient clients
// and the recipient should not get a burst of identical mails.
const debounceWindow = 5 * time.Second

// smtpSender implements service.MailSender over plain SMTP with AUTH.
type smtpSender struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger

	mu       sync.Mutex
	lastSent map[string]time.Time
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	smtpCfg := cfg.SMTP
	if smtpCfg == nil || smtpCfg.Host == "" {
		return nil, errors.New("smtp is not configured")
	}

	var auth smtp.Auth
	if smtpCfg.Username != "" {
		auth = smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	}

	return &smtpSender{
		addr:     fmt.Sprintf("%s:%d", smtpCfg.Host, smtpCfg.Port),
		auth:     auth,
		from:     smtpCfg.From,
		logger:   logger,
		lastSent: make(map[string]time.Time),
	}, nil
}

// Send delivers one HTML mail to a single recipient.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if s.debounced(to, subject) {
		s.logger.Debug("mail debounced",
			slog.String("to", to),
			slog.String("subject", subject),
		)

		return nil
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	s.logger.Info("mail sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

// debounced records the send attempt and reports whether an identical
// mail went out inside the debounce window.
func (s *smtpSender) debounced(to, subject string) bool {
	key := to + "|" + subject
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSent[key]; ok && now.Sub(last) < debounceWindow {
		return true
	}
	s.lastSent[key] = now

	// Drop stale entries so the map does not grow unbounded.
	for k, t := range s.lastSent {
		if now.Sub(t) > debounceWindow {
			delete(s.lastSent, k)
		}
	}

	return false
}
