package domain

import "time"

// Booking links a user and a room over a date range. The room is embedded
// as a denormalized snapshot taken at booking time, so later catalog edits
// never rewrite a confirmed booking.
//
// ID is the surrogate identifier assigned by the store on create; BookingID
// is the user-facing reference shown on the confirmation screen. Check-out
// must be strictly after check-in; the input layer enforces that before a
// booking is ever assembled.
type Booking struct {
	ID        string `json:"id,omitempty"`
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Room      Room   `json:"room"`

	// Contact block snapshotted from the session user.
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`

	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests"`

	// Derived pricing fields. Total = Subtotal + Tax + ServiceFee.
	Nights     int     `json:"nights"`
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`

	BookingDate time.Time `json:"bookingDate"`
}

// Contact carries an edited contact block for a single booking. Edits here
// never write back to the user's profile.
type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`
}
