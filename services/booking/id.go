package booking

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingID returns a short human-readable booking identifier of the
// form BKG-xxxxxxxx, the token being the first segment of a random UUID.
// Collisions are negligible at this system's volume.
func NewBookingID() string {
	return "BKG-" + strings.SplitN(uuid.New().String(), "-", 2)[0]
}
