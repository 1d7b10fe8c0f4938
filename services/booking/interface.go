package booking

import (
	"context"

	"bookify/models"
	"bookify/services/notification"
	"bookify/services/sheet"
)

// BookingService defines the booking intake flow plus the catalog
// passthroughs the record store answers directly.
type BookingService interface {
	// CreateBooking runs the full intake: validate, persist against the
	// record store, notify. The returned outcome reflects email delivery
	// only; a persisted booking is never failed by it.
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingRecord, notification.Outcome, error)

	GetServices(ctx context.Context) sheet.Result
	GetSlots(ctx context.Context, serviceID, date string, duration int) sheet.Result
	ListBookings(ctx context.Context) sheet.Result
	ListAllBookings(ctx context.Context) sheet.Result
}
