package notification

import (
	"context"
	"fmt"

	"bookify/models"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Mailer     Mailer
	From       string
	AdminEmail string
	Logger     *zap.Logger
}

func NewDefaultNotificationService(mailer Mailer, from, adminEmail string, logger *zap.Logger) (*DefaultNotificationService, error) {
	if mailer == nil {
		return nil, fmt.Errorf("notification service initialization error: mailer is nil")
	}
	if from == "" || adminEmail == "" {
		return nil, fmt.Errorf("notification service initialization error: sender or admin address is empty")
	}
	return &DefaultNotificationService{
		Mailer:     mailer,
		From:       from,
		AdminEmail: adminEmail,
		Logger:     logger,
	}, nil
}

// Notify sends the customer and administrator notices. The two sends are
// independent: an admin failure never blocks the customer send, and vice
// versa. The booking is already persisted by the time this runs, so
// failures degrade the outcome instead of propagating.
func (s *DefaultNotificationService) Notify(ctx context.Context, record models.BookingRecord) Outcome {
	outcome := OutcomeSent

	userMsg := Message{
		To:      record.User.Email,
		From:    s.From,
		Subject: fmt.Sprintf("Booking Confirmation — %s on %s", record.ServiceTitle, record.Date),
		HTML:    UserNoticeHTML(record),
	}
	if err := s.send(userMsg); err != nil {
		s.Logger.Error("Notify: customer email failed",
			zap.String("bookingId", record.BookingID),
			zap.String("to", record.User.Email),
			zap.Error(err))
		outcome = OutcomeFailed
	}

	adminMsg := Message{
		To:      s.AdminEmail,
		From:    s.From,
		Subject: fmt.Sprintf("New Booking — %s on %s", record.ServiceTitle, record.Date),
		HTML:    AdminNoticeHTML(record),
	}
	if err := s.send(adminMsg); err != nil {
		s.Logger.Error("Notify: admin email failed",
			zap.String("bookingId", record.BookingID),
			zap.String("to", s.AdminEmail),
			zap.Error(err))
		outcome = OutcomeFailed
	}

	if outcome == OutcomeSent {
		s.Logger.Info("Notify: emails sent", zap.String("bookingId", record.BookingID))
	}
	return outcome
}

// SendTestEmail sends a probe to the administrator so deployments can
// verify the mail channel end to end.
func (s *DefaultNotificationService) SendTestEmail(ctx context.Context) error {
	msg := Message{
		To:      s.AdminEmail,
		From:    s.From,
		Subject: "Bookify Test Email",
		HTML:    "<h2>The mail channel is working correctly.</h2>",
	}
	return s.send(msg)
}

// send shields callers from a misbehaving Mailer implementation: a panic
// inside the transport becomes an ordinary error.
func (s *DefaultNotificationService) send(msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mailer panic: %v", r)
		}
	}()
	return s.Mailer.Send(msg)
}
