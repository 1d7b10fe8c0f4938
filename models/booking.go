package models

// BookingUser carries the customer details supplied with a booking request.
// Extra is an open mapping for domain-specific fields (company name,
// vehicle plate, whatever the embedding site collects).
type BookingUser struct {
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Phone string            `json:"phone,omitempty"`
	Extra map[string]string `json:"extra,omitempty"`
}

// BookingRequest is the caller-supplied input for POST /api/bookings.
type BookingRequest struct {
	ServiceID    string      `json:"serviceId"`
	ServiceType  string      `json:"serviceType"`
	ServiceTitle string      `json:"serviceTitle"`
	Date         string      `json:"date"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime,omitempty"`
	User         BookingUser `json:"user"`
}

// MissingFields reports which required fields are absent or empty.
func (r *BookingRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"serviceId", r.ServiceID},
		{"serviceType", r.ServiceType},
		{"serviceTitle", r.ServiceTitle},
		{"date", r.Date},
		{"startTime", r.StartTime},
		{"user.name", r.User.Name},
		{"user.email", r.User.Email},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// BookingStatusPending is the only status this flow ever produces; the
// record store owns any later transitions.
const BookingStatusPending = "pending"

// BookingRecord is the canonical representation of a persisted booking.
// It is built once after the record store confirms the create and is not
// mutated afterwards.
type BookingRecord struct {
	BookingID    string      `json:"bookingId"`
	ServiceID    string      `json:"serviceId"`
	ServiceType  string      `json:"serviceType"`
	ServiceTitle string      `json:"serviceTitle"`
	Date         string      `json:"date"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime,omitempty"`
	User         BookingUser `json:"user"`
	Status       string      `json:"status"`
	CreatedAtUTC string      `json:"createdAtUTC"`
}

// BookingResponse is the success payload for POST /api/bookings.
type BookingResponse struct {
	OK          bool          `json:"ok"`
	Booking     BookingRecord `json:"booking"`
	EmailStatus string        `json:"emailStatus,omitempty"`
}
