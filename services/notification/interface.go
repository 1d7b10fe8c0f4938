package notification

import (
	"context"

	"bookify/models"
)

// Outcome is the aggregate result of one notification round. A single
// failed recipient degrades the whole round to OutcomeFailed; per-recipient
// detail is logged, not surfaced.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// Message is one outbound email.
type Message struct {
	To      string
	From    string
	Subject string
	HTML    string
}

// Mailer delivers a single message through the external mail channel.
// Implementations are injected at startup so tests can substitute a fake;
// nothing in this package reaches for a process-global transport.
type Mailer interface {
	Send(msg Message) error
}

// NotificationService sends booking confirmations to the customer and the
// administrator.
type NotificationService interface {
	// Notify delivers both notices for a persisted booking. It never
	// returns an error: delivery failures are captured in the Outcome.
	Notify(ctx context.Context, record models.BookingRecord) Outcome

	// SendTestEmail sends a probe message to the administrator address.
	SendTestEmail(ctx context.Context) error
}
