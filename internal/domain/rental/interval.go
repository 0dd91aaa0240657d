package rental

import (
	"math"
	"time"
)

// ValidateInterval checks a candidate booking window. The retrieval date may
// fall anywhere on or after the calendar day of now; the return date must be
// strictly later than the retrieval. Only the supplied now is consulted.
func ValidateInterval(retrieval, devolution, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if retrieval.Before(today) {
		return ErrRetrievalInPast
	}
	if !devolution.After(retrieval) {
		return ErrReturnNotAfterRetrieval
	}
	return nil
}

// ComputeTotal returns the billed day count and total price for a booking
// window. Days are counted as the ceiling of the elapsed time, so a partial
// day bills as a full one. An invalid window prices at zero; only the
// ordering of the two dates matters here, not their relation to the clock.
func ComputeTotal(retrieval, devolution time.Time, unitPrice float64) (int, float64) {
	if err := ValidateInterval(retrieval, devolution, retrieval); err != nil {
		return 0, 0
	}
	days := int(math.Ceil(devolution.Sub(retrieval).Hours() / 24))
	return days, float64(days) * unitPrice
}
