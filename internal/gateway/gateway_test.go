package gateway_test

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL, 5*time.Second, slog.Default())
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestListRooms(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms", r.URL.Path)
		writeJSON(t, w, []map[string]any{
			{"id": "room-1", "name": "Seaside Suite", "price": 6000.0, "rating": 4.2},
			{"id": "room-2", "name": "Palm Grove", "price": 2000.0, "rating": 4.6},
		})
	}))

	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "room-1", rooms[0].ID)
	assert.InDelta(t, 6000.0, rooms[0].Price, 0.001)
}

func TestListRooms_LegacyPriceField(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]any{
			// Old records carry priceINR alongside a stale price.
			{"id": "room-1", "price": 99.0, "priceINR": 4500.0},
			{"id": "room-2", "price": 2000.0},
		})
	}))

	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 4500.0, rooms[0].Price, 0.001, "priceINR wins when present")
	assert.InDelta(t, 2000.0, rooms[1].Price, 0.001)
}

func TestListRooms_ServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.ListRooms(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTransport))
}

func TestListRooms_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := gateway.New(srv.URL, time.Second, slog.Default())

	_, err := c.ListRooms(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTransport))
}

func TestFindUsersByEmail(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "priya@example.com", r.URL.Query().Get("email"))
		writeJSON(t, w, []domain.User{{ID: "user-1", Email: "priya@example.com"}})
	}))

	users, err := c.FindUsersByEmail(context.Background(), "priya@example.com")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user-1", users[0].ID)
}

func TestDeleteBooking_SuccessIsStatus200(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookings/abc", r.URL.Path)
		writeJSON(t, w, map[string]any{})
	}))

	ok, err := c.DeleteBooking(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteFavoriteByUserAndRoom(t *testing.T) {
	var deletedPath string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
			assert.Equal(t, "room-2", r.URL.Query().Get("roomId"))
			writeJSON(t, w, []domain.Favorite{{ID: "fav-9", UserID: "user-1", RoomID: "room-2"}})
		case http.MethodDelete:
			deletedPath = r.URL.Path
			writeJSON(t, w, map[string]any{})
		}
	}))

	removed, err := c.DeleteFavoriteByUserAndRoom(context.Background(), "user-1", "room-2")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "/favorites/fav-9", deletedPath)
}

func TestDeleteFavoriteByUserAndRoom_NothingToRemove(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method, "no delete should be issued")
		writeJSON(t, w, []domain.Favorite{})
	}))

	removed, err := c.DeleteFavoriteByUserAndRoom(context.Background(), "user-1", "room-2")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteFavoriteByUserAndRoom_LostRace(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []domain.Favorite{{ID: "fav-9", UserID: "user-1", RoomID: "room-2"}})
		case http.MethodDelete:
			http.NotFound(w, r)
		}
	}))

	// A concurrent deletion between lookup and delete is not an error.
	removed, err := c.DeleteFavoriteByUserAndRoom(context.Background(), "user-1", "room-2")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestCreateBooking_RoundTripsPayload(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got domain.Booking
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "user-1", got.UserID)
		got.ID = "stored-1"
		writeJSON(t, w, got)
	}))

	created, err := c.CreateBooking(context.Background(), domain.Booking{
		BookingID: "BK1700000000000",
		UserID:    "user-1",
		Total:     4550,
	})
	require.NoError(t, err)
	assert.Equal(t, "stored-1", created.ID)
	assert.Equal(t, "BK1700000000000", created.BookingID)
}
