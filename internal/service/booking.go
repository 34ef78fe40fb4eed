package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/errors"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/id"
	"github.com/staynestapp/staynest-client/internal/pricing"
	"github.com/staynestapp/staynest-client/internal/validation"
)

// FlowState identifies the stage of an in-progress booking attempt.
type FlowState string

const (
	StateBrowsing     FlowState = "browsing"
	StateDetailsEntry FlowState = "details_entry"
	StatePaymentEntry FlowState = "payment_entry"
	StateConfirmed    FlowState = "confirmed"
)

// Flow is the state of a single booking attempt. It advances strictly
// browsing -> details entry -> payment entry -> confirmed; a failed
// payment leaves it in payment entry, and Close resets it from any
// stage.
type Flow struct {
	State FlowState
	Room  *domain.Room
	Draft *domain.Booking
	Quote pricing.Quote

	// TransactionID is set once payment lands, for the confirmation view.
	TransactionID string
}

// NewFlow returns a flow at rest.
func NewFlow() *Flow {
	return &Flow{State: StateBrowsing}
}

// Close abandons the attempt and resets the flow to browsing. Nothing
// reaches the booking store until payment confirms, so closing at any
// earlier stage leaves no record behind.
func (f *Flow) Close() {
	*f = Flow{State: StateBrowsing}
}

// DetailsRequest contains the stay details form input.
type DetailsRequest struct {
	CheckIn         time.Time `json:"checkIn" validate:"required"`
	CheckOut        time.Time `json:"checkOut" validate:"required"`
	Guests          int       `json:"guests" validate:"gte=1"`
	SpecialRequests string    `json:"specialRequests"`
}

// BookingService drives the booking flow and the booking list.
type BookingService struct {
	gateway  *gateway.Client
	validate *validation.Validator
	logger   *slog.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(gw *gateway.Client, v *validation.Validator, logger *slog.Logger) *BookingService {
	return &BookingService{gateway: gw, validate: v, logger: logger}
}

// Begin opens a booking attempt for a room. It is gated on an
// authenticated user and on the room being available; both gates report
// blocked errors and leave the flow in browsing.
func (s *BookingService) Begin(flow *Flow, user *domain.User, room domain.Room) error {
	if user == nil {
		return errors.Blocked("please login to book a room")
	}
	if !room.Available {
		return errors.Blocked("this room is currently unavailable")
	}

	flow.State = StateDetailsEntry
	flow.Room = &room
	flow.Draft = nil
	flow.Quote = pricing.Quote{}
	flow.TransactionID = ""
	return nil
}

// EnterDetails prices the stay and assembles the draft record. A stay of
// zero nights cannot proceed. The draft snapshots the room and carries a
// contact block prefilled from the user's profile, editable per booking
// without touching the profile itself.
func (s *BookingService) EnterDetails(flow *Flow, user *domain.User, req DetailsRequest) (pricing.Quote, error) {
	if flow.State != StateDetailsEntry {
		return pricing.Quote{}, errors.Blocked("no booking in progress")
	}
	if err := s.validate.Validate(req); err != nil {
		return pricing.Quote{}, err
	}
	if req.Guests > flow.Room.Capacity {
		return pricing.Quote{}, errors.Validationf("this room sleeps at most %d guests", flow.Room.Capacity)
	}

	quote := pricing.Compute(*flow.Room, req.CheckIn, req.CheckOut)
	if !quote.CanProceed() {
		return quote, errors.Validation("check-out must be after check-in")
	}

	now := time.Now()
	flow.Draft = &domain.Booking{
		BookingID: id.BookingRef(now),
		UserID:    user.ID,
		Room:      *flow.Room,

		FullName: user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		City:     user.City,
		State:    user.State,
		Pincode:  user.Pincode,
		Country:  user.Country,

		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,

		Nights:      quote.Nights,
		Subtotal:    quote.Subtotal,
		Tax:         quote.Tax,
		ServiceFee:  quote.ServiceFee,
		Total:       quote.Total,
		BookingDate: now,
	}
	flow.Quote = quote
	flow.State = StatePaymentEntry
	return quote, nil
}

// SetContact overrides the draft's contact block. Only valid while the
// attempt is past details entry and not yet confirmed.
func (s *BookingService) SetContact(flow *Flow, contact domain.Contact) error {
	if flow.State != StatePaymentEntry || flow.Draft == nil {
		return errors.Blocked("no booking in progress")
	}
	flow.Draft.FullName = contact.FullName
	flow.Draft.Email = contact.Email
	flow.Draft.Phone = contact.Phone
	flow.Draft.Address = contact.Address
	flow.Draft.City = contact.City
	flow.Draft.State = contact.State
	flow.Draft.Pincode = contact.Pincode
	flow.Draft.Country = contact.Country
	return nil
}

// ConfirmPayment runs the simulated payment and writes the booking
// through the gateway. The flow reaches confirmed only after both
// succeed; any failure leaves it in payment entry so the attempt can be
// retried or abandoned.
func (s *BookingService) ConfirmPayment(ctx context.Context, flow *Flow, pay PaymentRequest) (*domain.Booking, error) {
	if flow.State != StatePaymentEntry || flow.Draft == nil {
		return nil, errors.Blocked("no booking in progress")
	}

	txID, err := processPayment(pay)
	if err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateBooking(ctx, *flow.Draft)
	if err != nil {
		return nil, err
	}

	flow.State = StateConfirmed
	flow.Draft = created
	flow.TransactionID = txID

	s.logger.Info("booking confirmed",
		"booking_id", created.BookingID,
		"room_id", created.Room.ID,
		"total", created.Total)
	return created, nil
}

// ListForUser returns the user's bookings from the store.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.gateway.ListBookingsByUser(ctx, userID)
}

// Cancel deletes a booking by its surrogate id. The caller drops the
// booking from its view only after this returns nil.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	ok, err := s.gateway.DeleteBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Transport("cancel booking: store did not confirm the delete")
	}
	s.logger.Info("booking cancelled", "id", bookingID)
	return nil
}
