package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookify/models"
	"bookify/services/booking"
	"bookify/services/notification"
	"bookify/services/sheet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeBookingService replays canned results for every operation.
type fakeBookingService struct {
	record  *models.BookingRecord
	outcome notification.Outcome
	err     error
	result  sheet.Result

	createCalls int
	slotsCalls  int
}

func (f *fakeBookingService) CreateBooking(context.Context, models.BookingRequest) (*models.BookingRecord, notification.Outcome, error) {
	f.createCalls++
	return f.record, f.outcome, f.err
}

func (f *fakeBookingService) GetServices(context.Context) sheet.Result { return f.result }

func (f *fakeBookingService) GetSlots(_ context.Context, _, _ string, _ int) sheet.Result {
	f.slotsCalls++
	return f.result
}

func (f *fakeBookingService) ListBookings(context.Context) sheet.Result    { return f.result }
func (f *fakeBookingService) ListAllBookings(context.Context) sheet.Result { return f.result }

type fakeNotifier struct{ err error }

func (f *fakeNotifier) Notify(context.Context, models.BookingRecord) notification.Outcome {
	return notification.OutcomeSent
}

func (f *fakeNotifier) SendTestEmail(context.Context) error { return f.err }

func newRouter(svc booking.BookingService, notifier notification.NotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, notifier, zap.NewNop())
	api := r.Group("/api")
	api.GET("/services", h.GetServices)
	api.GET("/slots", h.GetSlots)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/admin/bookings", h.ListAllBookings)
	api.GET("/test-email", h.TestEmail)
	return r
}

func TestCreateBookingReturns201WithBookingAndEmailStatus(t *testing.T) {
	record := models.BookingRecord{
		BookingID:    "BKG-a1b2c3d4",
		ServiceID:    "svc1",
		ServiceType:  "consult",
		ServiceTitle: "Consultation",
		Date:         "2024-05-01",
		StartTime:    "10:00",
		User:         models.BookingUser{Name: "Alice", Email: "a@x.com"},
		Status:       "pending",
		CreatedAtUTC: "2024-05-01T09:00:00Z",
	}
	svc := &fakeBookingService{record: &record, outcome: notification.OutcomeSent}
	r := newRouter(svc, &fakeNotifier{})

	body := `{"serviceId":"svc1","serviceType":"consult","serviceTitle":"Consultation","date":"2024-05-01","startTime":"10:00","user":{"name":"Alice","email":"a@x.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.BookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok=true")
	}
	if resp.Booking.BookingID != "BKG-a1b2c3d4" {
		t.Errorf("unexpected bookingId %s", resp.Booking.BookingID)
	}
	if resp.Booking.Status != "pending" {
		t.Errorf("expected status pending, got %s", resp.Booking.Status)
	}
	if resp.EmailStatus != "sent" {
		t.Errorf("expected emailStatus sent, got %q", resp.EmailStatus)
	}
}

func TestCreateBookingMapsFlowErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", booking.NewValidationError([]string{"serviceId"}), http.StatusBadRequest, "missing_fields"},
		{"conflict", booking.NewConflictError(), http.StatusConflict, "slot_taken"},
		{"upstream", booking.NewUpstreamError(sheet.Body{"ok": false}), http.StatusInternalServerError, "sheet_error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "server_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeBookingService{err: tc.err}
			r := newRouter(svc, &fakeNotifier{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"serviceId":"svc1"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response JSON: %v", err)
			}
			if resp["error"] != tc.wantCode {
				t.Errorf("expected error %q, got %v", tc.wantCode, resp["error"])
			}
		})
	}
}

func TestGetSlotsRequiresServiceIDAndDate(t *testing.T) {
	svc := &fakeBookingService{}
	r := newRouter(svc, &fakeNotifier{})

	for _, target := range []string{"/api/slots", "/api/slots?serviceId=svc1", "/api/slots?date=2024-05-01"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "missing_params" {
			t.Errorf("%s: expected missing_params, got %v", target, resp["error"])
		}
	}
	if svc.slotsCalls != 0 {
		t.Errorf("missing params must not reach the store, got %d calls", svc.slotsCalls)
	}
}

func TestPassthroughsMirrorStoreStatus(t *testing.T) {
	svc := &fakeBookingService{result: sheet.Result{
		HTTPStatus: http.StatusBadGateway,
		Body:       sheet.Body{"ok": false, "error": "upstream down"},
	}}
	r := newRouter(svc, &fakeNotifier{})

	for _, target := range []string{"/api/services", "/api/bookings", "/api/admin/bookings", "/api/slots?serviceId=svc1&date=2024-05-01"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadGateway {
			t.Errorf("%s: expected store status mirrored, got %d", target, w.Code)
		}
	}
}

func TestTestEmailReportsFailure(t *testing.T) {
	r := newRouter(&fakeBookingService{}, &fakeNotifier{err: errors.New("relay down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test-email", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	r = newRouter(&fakeBookingService{}, &fakeNotifier{})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test-email", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
