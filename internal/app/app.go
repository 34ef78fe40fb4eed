// Package app wires the catalog, session, booking and favorite services
// into a single view-state controller, the shape a front end renders from.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staynestapp/staynest-client/internal/catalog"
	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/errors"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/notify"
	"github.com/staynestapp/staynest-client/internal/pricing"
	"github.com/staynestapp/staynest-client/internal/service"
	"github.com/staynestapp/staynest-client/internal/store"
)

// App holds the client's view state: the loaded catalog, the visible
// slice derived from it, the session user's bookings and favorite marks,
// and the in-progress booking flow. All derived state is recomputed
// eagerly whenever an input changes.
//
// App models a single UI thread and is not safe for concurrent use.
type App struct {
	session   *service.SessionService
	bookings  *service.BookingService
	favorites *service.FavoriteService
	gateway   *gateway.Client
	store     *store.Store
	notifier  notify.Notifier
	logger    *slog.Logger

	rooms   []domain.Room
	visible []domain.Room

	query   string
	city    string
	filters catalog.Filters
	sortKey catalog.SortKey

	favoriteIDs map[string]struct{}
	bookingList []domain.Booking
	flow        *service.Flow

	darkMode bool
}

// New creates the app controller. Call Init before anything else.
func New(
	session *service.SessionService,
	bookings *service.BookingService,
	favorites *service.FavoriteService,
	gw *gateway.Client,
	st *store.Store,
	notifier notify.Notifier,
	logger *slog.Logger,
) *App {
	return &App{
		session:     session,
		bookings:    bookings,
		favorites:   favorites,
		gateway:     gw,
		store:       st,
		notifier:    notifier,
		logger:      logger,
		city:        catalog.AllCities,
		filters:     catalog.DefaultFilters(),
		sortKey:     catalog.SortRecommended,
		favoriteIDs: map[string]struct{}{},
		flow:        service.NewFlow(),
	}
}

// Init loads the catalog, adopts any persisted session, and loads the
// session user's data. A failed catalog load is fatal to the view; the
// error surfaces as a notification and the caller decides whether to
// retry.
func (a *App) Init(ctx context.Context) error {
	rooms, err := a.gateway.ListRooms(ctx)
	if err != nil {
		a.notifier.Error("Failed to load rooms. Please try again.")
		return err
	}
	a.rooms = rooms
	a.refresh()

	if dark, err := a.store.LoadDarkMode(); err == nil {
		a.darkMode = dark
	}

	if user, err := a.session.Reconcile(); err != nil {
		a.logger.Warn("session restore failed", "error", err)
	} else if user != nil {
		a.loadUserData(ctx)
	}
	return nil
}

// refresh recomputes the visible room list from the current inputs.
func (a *App) refresh() {
	a.visible = catalog.Apply(a.rooms, a.query, a.city, a.filters, a.sortKey)
}

// Rooms returns the full loaded catalog.
func (a *App) Rooms() []domain.Room { return a.rooms }

// VisibleRooms returns the catalog slice after search, filters and sort.
func (a *App) VisibleRooms() []domain.Room { return a.visible }

// SetQuery updates the free-text search term.
func (a *App) SetQuery(q string) {
	a.query = q
	a.refresh()
}

// SetCity updates the city filter.
func (a *App) SetCity(city string) {
	a.city = city
	a.refresh()
}

// SetFilters replaces the structured filter set.
func (a *App) SetFilters(f catalog.Filters) {
	a.filters = f
	a.refresh()
}

// SetSort updates the sort key.
func (a *App) SetSort(key catalog.SortKey) {
	a.sortKey = key
	a.refresh()
}

// ResetFilters restores the default search state.
func (a *App) ResetFilters() {
	a.query = ""
	a.city = catalog.AllCities
	a.filters = catalog.DefaultFilters()
	a.sortKey = catalog.SortRecommended
	a.refresh()
}

// SelectFeaturedCity applies a city chosen from the featured rail and
// records it as a trending search.
func (a *App) SelectFeaturedCity(city string) {
	a.SetCity(city)
	if err := a.store.RecordTrendingSearch(city); err != nil {
		a.logger.Warn("record trending search", "error", err)
	}
}

// TrendingSearches returns the recent featured-city picks, newest first.
func (a *App) TrendingSearches() []string {
	terms, err := a.store.TrendingSearches()
	if err != nil {
		a.logger.Warn("load trending searches", "error", err)
		return nil
	}
	return terms
}

// CurrentUser returns the session user, nil when logged out.
func (a *App) CurrentUser() *domain.User { return a.session.Current() }

// Login authenticates and loads the user's bookings and favorites.
func (a *App) Login(ctx context.Context, req service.LoginRequest) error {
	user, err := a.session.Login(ctx, req)
	if err != nil {
		a.notifyErr(err, "Login failed. Please try again.")
		return err
	}
	a.loadUserData(ctx)
	a.notifier.Success(fmt.Sprintf("Welcome back, %s!", user.Name))
	return nil
}

// Signup registers, logs in, and loads the (empty) user data.
func (a *App) Signup(ctx context.Context, req service.SignupRequest) error {
	user, err := a.session.Signup(ctx, req)
	if err != nil {
		a.notifyErr(err, "Signup failed. Please try again.")
		return err
	}
	a.loadUserData(ctx)
	a.notifier.Success(fmt.Sprintf("Welcome to StayNest, %s!", user.Name))
	return nil
}

// Logout clears the session and cascades: bookings and favorites empty
// out and any in-progress booking flow is abandoned.
func (a *App) Logout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.clearUserData()
	a.notifier.Info("Logged out successfully")
	return nil
}

// UpdateProfile writes profile edits through and confirms with a toast.
func (a *App) UpdateProfile(ctx context.Context, req service.ProfileUpdateRequest) error {
	if _, err := a.session.UpdateProfile(ctx, req); err != nil {
		a.notifyErr(err, "Failed to update profile. Please try again.")
		return err
	}
	a.notifier.Success("Profile updated successfully!")
	return nil
}

// HandleVisibilityChange re-checks identity against the persisted
// mirror, as when a suspended view regains focus. Dependent state follows
// the outcome: a dropped identity clears it, an adopted one loads it.
func (a *App) HandleVisibilityChange(ctx context.Context) {
	before := a.session.Current()
	after, err := a.session.Reconcile()
	if err != nil {
		a.logger.Warn("session reconcile failed", "error", err)
		return
	}
	switch {
	case before != nil && after == nil:
		a.clearUserData()
	case before == nil && after != nil:
		a.loadUserData(ctx)
	}
}

// loadUserData pulls the session user's bookings and favorites. Failures
// leave both empty rather than stale.
func (a *App) loadUserData(ctx context.Context) {
	user := a.session.Current()
	if user == nil {
		return
	}

	a.bookingList = nil
	a.favoriteIDs = map[string]struct{}{}

	bookings, err := a.bookings.ListForUser(ctx, user.ID)
	if err != nil {
		a.logger.Warn("load bookings", "error", err)
	} else {
		a.bookingList = bookings
	}

	ids, err := a.favorites.RoomIDs(ctx, user.ID)
	if err != nil {
		a.logger.Warn("load favorites", "error", err)
		return
	}
	for _, id := range ids {
		a.favoriteIDs[id] = struct{}{}
	}
}

func (a *App) clearUserData() {
	a.bookingList = nil
	a.favoriteIDs = map[string]struct{}{}
	a.flow.Close()
}

// notifyErr surfaces err as a toast: validation, blocked and credential
// errors carry their own user-facing message, anything else falls back.
func (a *App) notifyErr(err error, fallback string) {
	var appErr *errors.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case errors.CodeValidation, errors.CodeInvalidCredentials, errors.CodeAlreadyExists:
			a.notifier.Error(appErr.Message)
			return
		case errors.CodeBlocked:
			a.notifier.Info(appErr.Message)
			return
		}
	}
	a.notifier.Error(fallback)
}

// IsFavorite reports whether the room carries the session user's mark.
func (a *App) IsFavorite(roomID string) bool {
	_, ok := a.favoriteIDs[roomID]
	return ok
}

// FavoriteRooms resolves the favorite marks against the loaded catalog.
// Marks pointing at rooms no longer in the catalog are skipped.
func (a *App) FavoriteRooms() []domain.Room {
	var out []domain.Room
	for _, room := range a.rooms {
		if a.IsFavorite(room.ID) {
			out = append(out, room)
		}
	}
	return out
}

// ToggleFavorite flips the mark on a room. The local set changes only
// after the store confirms, so a failed call leaves the view as it was.
func (a *App) ToggleFavorite(ctx context.Context, roomID string) error {
	user := a.session.Current()
	if user == nil {
		a.notifier.Info("Please login to save favorites")
		return errors.Blocked("please login to save favorites")
	}

	if a.IsFavorite(roomID) {
		removed, err := a.favorites.Remove(ctx, user.ID, roomID)
		if err != nil {
			a.notifier.Error("Failed to update favorites. Please try again.")
			return err
		}
		delete(a.favoriteIDs, roomID)
		if removed {
			a.notifier.Info("Removed from favorites")
		}
		return nil
	}

	if err := a.favorites.Add(ctx, user.ID, roomID); err != nil {
		a.notifier.Error("Failed to update favorites. Please try again.")
		return err
	}
	a.favoriteIDs[roomID] = struct{}{}
	a.notifier.Success("Added to favorites!")
	return nil
}

// Bookings returns the session user's loaded bookings.
func (a *App) Bookings() []domain.Booking { return a.bookingList }

// Flow exposes the in-progress booking attempt for rendering.
func (a *App) Flow() *service.Flow { return a.flow }

// BeginBooking opens a booking attempt for a room.
func (a *App) BeginBooking(room domain.Room) error {
	if err := a.bookings.Begin(a.flow, a.session.Current(), room); err != nil {
		a.notifyErr(err, "Unable to start booking.")
		return err
	}
	return nil
}

// EnterBookingDetails prices the stay and advances to payment.
func (a *App) EnterBookingDetails(req service.DetailsRequest) (pricing.Quote, error) {
	quote, err := a.bookings.EnterDetails(a.flow, a.session.Current(), req)
	if err != nil {
		a.notifyErr(err, "Invalid booking details.")
		return quote, err
	}
	return quote, nil
}

// SetBookingContact replaces the draft's contact block.
func (a *App) SetBookingContact(contact domain.Contact) error {
	return a.bookings.SetContact(a.flow, contact)
}

// ConfirmPayment finishes the attempt. On success the new booking joins
// the local list; on failure the flow stays at payment entry.
func (a *App) ConfirmPayment(ctx context.Context, pay service.PaymentRequest) (*domain.Booking, error) {
	created, err := a.bookings.ConfirmPayment(ctx, a.flow, pay)
	if err != nil {
		a.notifyErr(err, "Failed to create booking. Please try again.")
		return nil, err
	}
	a.bookingList = append(a.bookingList, *created)
	a.notifier.Success("Booking confirmed! Check your dashboard for details.")
	return created, nil
}

// CloseBookingFlow abandons the in-progress attempt.
func (a *App) CloseBookingFlow() {
	a.flow.Close()
}

// CancelBooking deletes a booking. The local list drops it only once the
// store confirms; on failure the listing stays.
func (a *App) CancelBooking(ctx context.Context, bookingID string) error {
	if err := a.bookings.Cancel(ctx, bookingID); err != nil {
		a.notifier.Error("Failed to cancel booking. Please try again.")
		return err
	}
	kept := a.bookingList[:0]
	for _, b := range a.bookingList {
		if b.ID != bookingID {
			kept = append(kept, b)
		}
	}
	a.bookingList = kept
	a.notifier.Success("Booking cancelled successfully")
	return nil
}

// DarkMode reports the persisted theme preference.
func (a *App) DarkMode() bool { return a.darkMode }

// ToggleDarkMode flips and persists the theme preference.
func (a *App) ToggleDarkMode() bool {
	a.darkMode = !a.darkMode
	if err := a.store.SaveDarkMode(a.darkMode); err != nil {
		a.logger.Warn("persist dark mode", "error", err)
	}
	return a.darkMode
}
