// Package pricing derives the cost breakdown for a stay.
package pricing

import (
	"math"
	"time"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// TaxRate is applied to the subtotal (GST).
const TaxRate = 0.10

// ServiceFee is a flat per-booking charge in currency units.
const ServiceFee = 150.0

// Quote is the derived cost breakdown for a room over a date range.
// Total = Subtotal + Tax + ServiceFee, with Subtotal = Nights x unit price.
type Quote struct {
	Nights     int
	Subtotal   float64
	Tax        float64
	ServiceFee float64
	Total      float64
}

// Nights computes ceil((checkOut - checkIn) / 1 day), clamped to zero when
// check-out is not after check-in. The ceiling matters when the two
// timestamps carry times of day: any partial day counts as a full night.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Compute derives the quote for a room over a date range. A zero-night
// range produces a quote whose only charge is the service fee placeholder;
// CanProceed gates submission on it.
func Compute(room domain.Room, checkIn, checkOut time.Time) Quote {
	nights := Nights(checkIn, checkOut)
	subtotal := float64(nights) * room.Price
	tax := subtotal * TaxRate

	return Quote{
		Nights:     nights,
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: ServiceFee,
		Total:      subtotal + tax + ServiceFee,
	}
}

// CanProceed reports whether the quote may be submitted. Zero-night quotes
// (check-out on or before check-in) are rejected at this gate.
func (q Quote) CanProceed() bool {
	return q.Nights > 0
}
