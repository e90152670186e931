package service

import "context"

// MailSender delivers transactional mail. Sending is best effort: a mail
// failure must never fail the business operation that triggered it.
type MailSender interface {
	// Send delivers one HTML mail to a single recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
