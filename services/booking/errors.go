package booking

import (
	"fmt"
	"net/http"
)

// FlowError is a terminal booking-flow failure carrying the HTTP status and
// API error code the handler should surface.
type FlowError struct {
	Code   string
	Status int
	Detail interface{}
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Code, e.Status)
}

// NewValidationError reports missing required request fields. No external
// calls were made.
func NewValidationError(missing []string) error {
	return &FlowError{
		Code:   "missing_fields",
		Status: http.StatusBadRequest,
		Detail: missing,
	}
}

// NewConflictError reports a slot already reserved per the record store.
func NewConflictError() error {
	return &FlowError{
		Code:   "slot_taken",
		Status: http.StatusConflict,
	}
}

// NewUpstreamError reports a reachable record store that refused or
// garbled the create; the raw store reply rides along for diagnostics.
func NewUpstreamError(detail interface{}) error {
	return &FlowError{
		Code:   "sheet_error",
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}
