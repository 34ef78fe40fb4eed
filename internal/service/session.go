// Package service implements the application's business operations on top
// of the remote data gateway and the local state store.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/errors"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/id"
	"github.com/staynestapp/staynest-client/internal/store"
	"github.com/staynestapp/staynest-client/internal/validation"
)

// SessionService tracks the logged-in identity for this client instance
// and mirrors it into the local store so it survives restarts.
//
// Like the rest of the client core it models a single logical thread of
// control and is not safe for concurrent use.
type SessionService struct {
	gateway  *gateway.Client
	store    *store.Store
	validate *validation.Validator
	logger   *slog.Logger

	// current is the sanitized session user, nil when logged out.
	current *domain.User
}

// NewSessionService creates a new session service.
func NewSessionService(gw *gateway.Client, st *store.Store, v *validation.Validator, logger *slog.Logger) *SessionService {
	return &SessionService{
		gateway:  gw,
		store:    st,
		validate: v,
		logger:   logger,
	}
}

// LoginRequest contains login form input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupRequest contains signup form input.
type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"required,phone10"`
}

// ProfileUpdateRequest contains profile edit form input. The address block
// is optional; pincode is validated only when present.
type ProfileUpdateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone10"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode" validate:"omitempty,pincode"`
	Country string `json:"country"`
}

// Current returns the sanitized session user, or nil when logged out.
func (s *SessionService) Current() *domain.User {
	return s.current
}

// Login authenticates against the user store. When the email lookup
// returns more than one record the first is treated as authoritative.
// Password comparison is plain equality against the stored value; this
// client is explicitly not a hardened authentication surface.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	users, err := s.gateway.FindUsersByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 || users[0].Password != req.Password {
		return nil, errors.InvalidCredentials("invalid email or password")
	}

	sanitized := users[0].Sanitized()
	if err := s.store.SaveSession(sanitized); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "persist session")
	}
	s.current = &sanitized

	s.logger.Info("user logged in", "user_id", sanitized.ID)
	return &sanitized, nil
}

// Signup creates an account and immediately logs it in. Email uniqueness
// is enforced by a pre-check query: when any record matches, signup fails
// with an already-exists error and no create call is made.
func (s *SessionService) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.gateway.FindUsersByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, errors.AlreadyExists("email already exists")
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate user id")
	}

	created, err := s.gateway.CreateUser(ctx, domain.User{
		ID:        userID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	sanitized := created.Sanitized()
	if err := s.store.SaveSession(sanitized); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "persist session")
	}
	s.current = &sanitized

	s.logger.Info("user signed up", "user_id", sanitized.ID)
	return &sanitized, nil
}

// UpdateProfile writes edited profile fields through the gateway and
// refreshes both the in-memory session and the persisted mirror. The
// stored password is preserved across the update.
func (s *SessionService) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*domain.User, error) {
	if s.current == nil {
		return nil, errors.Blocked("please login to edit your profile")
	}
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	// Re-read the stored record so the opaque password survives the
	// full-record PUT.
	stored, err := s.gateway.GetUser(ctx, s.current.ID)
	if err != nil {
		return nil, err
	}

	stored.Name = req.Name
	stored.Email = req.Email
	stored.Phone = req.Phone
	stored.Address = req.Address
	stored.City = req.City
	stored.State = req.State
	stored.Pincode = req.Pincode
	stored.Country = req.Country

	updated, err := s.gateway.UpdateUser(ctx, *stored)
	if err != nil {
		return nil, err
	}

	sanitized := updated.Sanitized()
	if err := s.store.SaveSession(sanitized); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "persist session")
	}
	s.current = &sanitized

	return &sanitized, nil
}

// Logout clears the in-memory identity and the persisted mirror. The
// caller cascades the clearing of dependent view state.
func (s *SessionService) Logout() error {
	s.current = nil
	if err := s.store.ClearSession(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "clear persisted session")
	}
	s.logger.Info("user logged out")
	return nil
}

// Reconcile re-aligns the in-memory identity with the persisted mirror,
// as when a suspended view regains focus: a missing mirror clears memory,
// a present mirror fills empty memory.
// It is idempotent and safe to call at any point. Returns the session
// user after reconciliation.
func (s *SessionService) Reconcile() (*domain.User, error) {
	persisted, err := s.store.LoadSession()
	if err != nil {
		return s.current, errors.Wrap(err, errors.CodeInternal, "load persisted session")
	}

	switch {
	case persisted == nil && s.current != nil:
		s.logger.Info("persisted session gone, dropping in-memory identity")
		s.current = nil
	case persisted != nil && s.current == nil:
		s.logger.Info("adopting persisted session", "user_id", persisted.ID)
		s.current = persisted
	}
	return s.current, nil
}
