package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// ListBookings fetches every booking in the store.
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	resp, err := c.http.R().SetContext(ctx).SetResult(&bookings).Get("/bookings")
	if err := c.wrapErr("list bookings", resp, err); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsByUser fetches the bookings belonging to one user.
func (c *Client) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&bookings).
		Get("/bookings")
	if err := c.wrapErr("list bookings by user", resp, err); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches a single booking by its surrogate identifier.
func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	resp, err := c.http.R().SetContext(ctx).SetResult(&booking).
		Get(fmt.Sprintf("/bookings/%s", id))
	if err := c.wrapErr("get booking", resp, err); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking inserts a booking and returns the stored record with its
// assigned surrogate identifier.
func (c *Client) CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	var created domain.Booking
	resp, err := c.http.R().SetContext(ctx).SetBody(booking).SetResult(&created).
		Post("/bookings")
	if err := c.wrapErr("create booking", resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBooking replaces a booking record and returns the stored result.
func (c *Client) UpdateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	var updated domain.Booking
	resp, err := c.http.R().SetContext(ctx).SetBody(booking).SetResult(&updated).
		Put(fmt.Sprintf("/bookings/%s", booking.ID))
	if err := c.wrapErr("update booking", resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBooking removes a booking by its surrogate identifier. Success is
// derived from the response status.
func (c *Client) DeleteBooking(ctx context.Context, id string) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("/bookings/%s", id))
	if err := c.wrapErr("delete booking", resp, err); err != nil {
		return false, err
	}
	return resp.StatusCode() == http.StatusOK, nil
}
