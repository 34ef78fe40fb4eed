package service_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/errors"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/service"
	"github.com/staynestapp/staynest-client/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T, handler http.Handler) *service.BookingService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw := gateway.New(srv.URL, 5*time.Second, slog.Default())
	return service.NewBookingService(gw, validation.New(), slog.Default())
}

func acceptBookings(t *testing.T) (http.Handler, *int) {
	t.Helper()
	creates := new(int)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bookings", r.URL.Path)
		*creates++
		var b domain.Booking
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		b.ID = "stored-1"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(b)
	}), creates
}

func bookableRoom() domain.Room {
	return domain.Room{
		ID: "room-1", Name: "Seaside Suite", Price: 2000,
		Capacity: 3, Available: true,
	}
}

func sessionUser() *domain.User {
	return &domain.User{ID: "user-1", Name: "Priya", Email: "priya@example.com", Phone: "9876543210"}
}

func validDetails() service.DetailsRequest {
	return service.DetailsRequest{
		CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Guests:   2,
	}
}

func cardPayment() service.PaymentRequest {
	return service.PaymentRequest{
		Method:     service.MethodCard,
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Priya Sharma",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func TestBegin_RequiresLogin(t *testing.T) {
	svc := newBookingService(t, http.NotFoundHandler())
	flow := service.NewFlow()

	err := svc.Begin(flow, nil, bookableRoom())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBlocked))
	assert.Equal(t, service.StateBrowsing, flow.State)
}

func TestBegin_RequiresAvailability(t *testing.T) {
	svc := newBookingService(t, http.NotFoundHandler())
	flow := service.NewFlow()

	room := bookableRoom()
	room.Available = false

	err := svc.Begin(flow, sessionUser(), room)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBlocked))
	assert.Equal(t, service.StateBrowsing, flow.State)
}

func TestFlow_HappyPath(t *testing.T) {
	handler, creates := acceptBookings(t)
	svc := newBookingService(t, handler)
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))
	assert.Equal(t, service.StateDetailsEntry, flow.State)

	quote, err := svc.EnterDetails(flow, user, validDetails())
	require.NoError(t, err)
	assert.Equal(t, service.StatePaymentEntry, flow.State)
	assert.Equal(t, 2, quote.Nights)
	assert.InDelta(t, 4550.0, quote.Total, 0.001)

	require.NotNil(t, flow.Draft)
	assert.Equal(t, "user-1", flow.Draft.UserID)
	assert.Equal(t, "Priya", flow.Draft.FullName, "contact prefilled from profile")
	assert.Equal(t, "room-1", flow.Draft.Room.ID, "room snapshotted into the draft")
	assert.NotEmpty(t, flow.Draft.BookingID)

	created, err := svc.ConfirmPayment(context.Background(), flow, cardPayment())
	require.NoError(t, err)
	assert.Equal(t, service.StateConfirmed, flow.State)
	assert.Equal(t, "stored-1", created.ID)
	assert.NotEmpty(t, flow.TransactionID)
	assert.Equal(t, 1, *creates)
}

func TestEnterDetails_ZeroNightsRejected(t *testing.T) {
	svc := newBookingService(t, http.NotFoundHandler())
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))

	details := validDetails()
	details.CheckOut = details.CheckIn

	_, err := svc.EnterDetails(flow, user, details)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Equal(t, service.StateDetailsEntry, flow.State, "flow does not advance")
}

func TestEnterDetails_GuestsOverCapacity(t *testing.T) {
	svc := newBookingService(t, http.NotFoundHandler())
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))

	details := validDetails()
	details.Guests = 7

	_, err := svc.EnterDetails(flow, user, details)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConfirmPayment_StoreFailureKeepsPaymentEntry(t *testing.T) {
	svc := newBookingService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))
	_, err := svc.EnterDetails(flow, user, validDetails())
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(context.Background(), flow, cardPayment())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTransport))
	assert.Equal(t, service.StatePaymentEntry, flow.State, "attempt can be retried")
	assert.NotNil(t, flow.Draft)
}

func TestConfirmPayment_BadCardNeverReachesStore(t *testing.T) {
	handler, creates := acceptBookings(t)
	svc := newBookingService(t, handler)
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))
	_, err := svc.EnterDetails(flow, user, validDetails())
	require.NoError(t, err)

	pay := cardPayment()
	pay.CVV = "7"

	_, err = svc.ConfirmPayment(context.Background(), flow, pay)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Zero(t, *creates)
	assert.Equal(t, service.StatePaymentEntry, flow.State)
}

func TestFlow_CloseResets(t *testing.T) {
	svc := newBookingService(t, http.NotFoundHandler())
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))
	flow.Close()

	assert.Equal(t, service.StateBrowsing, flow.State)
	assert.Nil(t, flow.Room)
	assert.Nil(t, flow.Draft)
}

func TestSetContact_EditsDraftOnly(t *testing.T) {
	svc := newBookingService(t, http.NotFoundHandler())
	flow := service.NewFlow()
	user := sessionUser()

	require.NoError(t, svc.Begin(flow, user, bookableRoom()))
	_, err := svc.EnterDetails(flow, user, validDetails())
	require.NoError(t, err)

	require.NoError(t, svc.SetContact(flow, domain.Contact{
		FullName: "P. Sharma", Email: "work@example.com", Phone: "9000000000",
	}))

	assert.Equal(t, "P. Sharma", flow.Draft.FullName)
	assert.Equal(t, "Priya", user.Name, "profile is untouched")
}

func TestCancel(t *testing.T) {
	var deleted string
	svc := newBookingService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{})
	}))

	require.NoError(t, svc.Cancel(context.Background(), "stored-1"))
	assert.Equal(t, "/bookings/stored-1", deleted)
}

func TestCancel_StoreError(t *testing.T) {
	svc := newBookingService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := svc.Cancel(context.Background(), "stored-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTransport))
}
