package service

import "context"

// Mail is one outbound message.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// MailSender delivers transactional mail (verification codes, reset links).
// Fire-and-forget from the core's perspective; delivery failures surface as
// errors but trigger no retries here.
type MailSender interface {
	Send(ctx context.Context, mail *Mail) error
}
