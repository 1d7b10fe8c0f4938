package notification

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// fakeMailer records sends and fails recipients listed in failFor.
type fakeMailer struct {
	sent    []Message
	failFor map[string]bool
}

func (m *fakeMailer) Send(msg Message) error {
	m.sent = append(m.sent, msg)
	if m.failFor[msg.To] {
		return errors.New("relay refused")
	}
	return nil
}

type panicMailer struct{}

func (panicMailer) Send(Message) error { panic("transport exploded") }

func newTestService(t *testing.T, m Mailer) *DefaultNotificationService {
	t.Helper()
	svc, err := NewDefaultNotificationService(m, "no-reply@bookify.local", "admin@bookify.local", zap.NewNop())
	if err != nil {
		t.Fatalf("NewDefaultNotificationService failed: %v", err)
	}
	return svc
}

func TestNotifySendsBothRecipients(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(t, mailer)

	outcome := svc.Notify(context.Background(), sampleRecord())
	if outcome != OutcomeSent {
		t.Errorf("expected outcome sent, got %q", outcome)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To != "a@x.com" {
		t.Errorf("first send should target the customer, got %q", mailer.sent[0].To)
	}
	if mailer.sent[1].To != "admin@bookify.local" {
		t.Errorf("second send should target the admin, got %q", mailer.sent[1].To)
	}
	if mailer.sent[0].Subject != "Booking Confirmation — Consultation on 2024-05-01" {
		t.Errorf("unexpected customer subject %q", mailer.sent[0].Subject)
	}
	if mailer.sent[1].Subject != "New Booking — Consultation on 2024-05-01" {
		t.Errorf("unexpected admin subject %q", mailer.sent[1].Subject)
	}
}

func TestNotifyAdminFailureDoesNotSkipCustomer(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"admin@bookify.local": true}}
	svc := newTestService(t, mailer)

	outcome := svc.Notify(context.Background(), sampleRecord())
	if outcome != OutcomeFailed {
		t.Errorf("expected outcome failed, got %q", outcome)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("both sends must still be attempted, got %d", len(mailer.sent))
	}
}

func TestNotifyCustomerFailureDoesNotSkipAdmin(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"a@x.com": true}}
	svc := newTestService(t, mailer)

	outcome := svc.Notify(context.Background(), sampleRecord())
	if outcome != OutcomeFailed {
		t.Errorf("expected outcome failed, got %q", outcome)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("both sends must still be attempted, got %d", len(mailer.sent))
	}
}

func TestNotifyCapturesMailerPanics(t *testing.T) {
	svc := newTestService(t, panicMailer{})

	outcome := svc.Notify(context.Background(), sampleRecord())
	if outcome != OutcomeFailed {
		t.Errorf("expected outcome failed after panic, got %q", outcome)
	}
}

func TestSendTestEmailTargetsAdmin(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(t, mailer)

	if err := svc.SendTestEmail(context.Background()); err != nil {
		t.Fatalf("SendTestEmail failed: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].To != "admin@bookify.local" {
		t.Fatalf("expected one send to the admin, got %+v", mailer.sent)
	}
}

func TestNewDefaultNotificationServiceRejectsBadConfig(t *testing.T) {
	if _, err := NewDefaultNotificationService(nil, "a@b", "c@d", zap.NewNop()); err == nil {
		t.Error("expected error for nil mailer")
	}
	if _, err := NewDefaultNotificationService(&fakeMailer{}, "", "c@d", zap.NewNop()); err == nil {
		t.Error("expected error for empty sender")
	}
	if _, err := NewDefaultNotificationService(&fakeMailer{}, "a@b", "", zap.NewNop()); err == nil {
		t.Error("expected error for empty admin address")
	}
}
