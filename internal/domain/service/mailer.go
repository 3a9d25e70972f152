package service

import "context"

// MailMessage is a plain text email.
type MailMessage struct {
	To      []string
	Bcc     []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
