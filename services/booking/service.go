package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bookify/models"
	"bookify/services/notification"
	"bookify/services/sheet"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService against the external
// record store and the notification service.
type DefaultBookingService struct {
	Sheet    sheet.Client
	Notifier notification.NotificationService
	Logger   *zap.Logger

	// NewID and Now are overridable for tests; zero values use the
	// production identifier generator and wall clock.
	NewID func() string
	Now   func() time.Time
}

func (s *DefaultBookingService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return NewBookingID()
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking drives one intake attempt end to end. The identifier is
// fixed before the store call so persistence, response, and notification
// all carry the same one. Conflict detection honors both signals the store
// is known to emit: HTTP 409 and reason "slot_taken" at any status.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingRecord, notification.Outcome, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, "", NewValidationError(missing)
	}

	bookingID := s.newID()

	extraJSON := "{}"
	if len(req.User.Extra) > 0 {
		if raw, err := json.Marshal(req.User.Extra); err == nil {
			extraJSON = string(raw)
		}
	}

	payload := map[string]interface{}{
		"action":       sheet.ActionCreate,
		"bookingId":    bookingID,
		"serviceType":  req.ServiceType,
		"serviceTitle": req.ServiceTitle,
		"serviceId":    req.ServiceID,
		"date":         req.Date,
		"startTime":    req.StartTime,
		"endTime":      req.EndTime,
		"name":         req.User.Name,
		"email":        req.User.Email,
		"phone":        req.User.Phone,
		"extra":        extraJSON,
		"status":       models.BookingStatusPending,
	}

	res := s.Sheet.Send(ctx, payload)

	if res.HTTPStatus == http.StatusConflict || res.Body.Reason() == "slot_taken" {
		s.Logger.Info("CreateBooking: slot conflict",
			zap.String("bookingId", bookingID),
			zap.String("serviceId", req.ServiceID),
			zap.String("date", req.Date),
			zap.String("startTime", req.StartTime))
		return nil, "", NewConflictError()
	}
	if !res.Body.OK() {
		s.Logger.Error("CreateBooking: record store rejected create",
			zap.String("bookingId", bookingID),
			zap.Int("status", res.HTTPStatus),
			zap.Any("body", res.Body))
		return nil, "", NewUpstreamError(res.Body)
	}

	// The store's timestamp wins; the local clock at record-build time is
	// the fallback.
	createdAt := res.Body.CreatedAtUTC()
	if createdAt == "" {
		createdAt = s.now().UTC().Format(time.RFC3339)
	}

	record := models.BookingRecord{
		BookingID:    bookingID,
		ServiceID:    req.ServiceID,
		ServiceType:  req.ServiceType,
		ServiceTitle: req.ServiceTitle,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		User:         req.User,
		Status:       models.BookingStatusPending,
		CreatedAtUTC: createdAt,
	}

	// The booking is durable at this point; notification failure degrades
	// the outcome, never the booking.
	outcome := s.Notifier.Notify(ctx, record)

	return &record, outcome, nil
}

func (s *DefaultBookingService) GetServices(ctx context.Context) sheet.Result {
	return s.Sheet.Send(ctx, map[string]interface{}{"action": sheet.ActionGetServices})
}

func (s *DefaultBookingService) GetSlots(ctx context.Context, serviceID, date string, duration int) sheet.Result {
	return s.Sheet.Send(ctx, map[string]interface{}{
		"action":    sheet.ActionGetSlots,
		"serviceId": serviceID,
		"date":      date,
		"duration":  duration,
	})
}

func (s *DefaultBookingService) ListBookings(ctx context.Context) sheet.Result {
	return s.Sheet.Send(ctx, map[string]interface{}{"action": sheet.ActionGetBookings})
}

func (s *DefaultBookingService) ListAllBookings(ctx context.Context) sheet.Result {
	return s.Sheet.Send(ctx, map[string]interface{}{"action": sheet.ActionListAll})
}
