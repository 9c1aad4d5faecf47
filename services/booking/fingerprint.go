package booking

import (
	"fmt"
	"strings"

	"drivio/models"
)

// Fingerprint computes the deterministic dedup key for a booking intent.
// Two intents with the same user, car and date range are the same logical
// booking no matter how many times "create" is invoked.
func Fingerprint(intent models.BookingIntent) (string, error) {
	if strings.TrimSpace(intent.UserID) == "" || strings.TrimSpace(intent.CarID) == "" {
		return "", ErrInvalidIdentity
	}
	return fmt.Sprintf("%s|%s|%s|%s", intent.UserID, intent.CarID, intent.StartDate, intent.EndDate), nil
}
