package service_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/errors"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/service"
	"github.com/staynestapp/staynest-client/internal/store"
	"github.com/staynestapp/staynest-client/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is a minimal in-memory /users endpoint.
type fakeUserStore struct {
	users   []domain.User
	creates int
}

func (f *fakeUserStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/users" && r.Method == http.MethodGet:
		email := r.URL.Query().Get("email")
		out := []domain.User{}
		for _, u := range f.users {
			if email == "" || u.Email == email {
				out = append(out, u)
			}
		}
		json.NewEncoder(w).Encode(out)
	case r.URL.Path == "/users" && r.Method == http.MethodPost:
		f.creates++
		var u domain.User
		json.NewDecoder(r.Body).Decode(&u)
		f.users = append(f.users, u)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(u)
	case r.Method == http.MethodGet:
		id := strings.TrimPrefix(r.URL.Path, "/users/")
		for _, u := range f.users {
			if u.ID == id {
				json.NewEncoder(w).Encode(u)
				return
			}
		}
		http.NotFound(w, r)
	case r.Method == http.MethodPut:
		var u domain.User
		json.NewDecoder(r.Body).Decode(&u)
		for i := range f.users {
			if f.users[i].ID == u.ID {
				f.users[i] = u
			}
		}
		json.NewEncoder(w).Encode(u)
	default:
		http.NotFound(w, r)
	}
}

func newSessionService(t *testing.T, fake http.Handler) (*service.SessionService, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	st, err := store.NewInMemory(slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	gw := gateway.New(srv.URL, 5*time.Second, slog.Default())
	return service.NewSessionService(gw, st, validation.New(), slog.Default()), st
}

func seededUser() domain.User {
	return domain.User{
		ID:       "user-1",
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "secret1",
		Phone:    "9876543210",
	}
}

func TestLogin_Success(t *testing.T) {
	fake := &fakeUserStore{users: []domain.User{seededUser()}}
	svc, st := newSessionService(t, fake)

	user, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Empty(t, user.Password, "session user is sanitized")
	assert.Equal(t, user, svc.Current())

	// The identity is mirrored into the local store.
	persisted, err := st.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.ID)
	assert.Empty(t, persisted.Password)
}

func TestLogin_WrongPassword(t *testing.T) {
	fake := &fakeUserStore{users: []domain.User{seededUser()}}
	svc, _ := newSessionService(t, fake)

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidCredentials))
	assert.Nil(t, svc.Current())
}

func TestLogin_UnknownEmail(t *testing.T) {
	fake := &fakeUserStore{}
	svc, _ := newSessionService(t, fake)

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidCredentials))
}

func TestLogin_FirstMatchIsAuthoritative(t *testing.T) {
	dup := seededUser()
	dup.ID = "user-2"
	dup.Password = "other-password"
	fake := &fakeUserStore{users: []domain.User{seededUser(), dup}}
	svc, _ := newSessionService(t, fake)

	user, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	// The duplicate's password does not log in.
	require.NoError(t, svc.Logout())
	_, err = svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "other-password",
	})
	assert.True(t, errors.Is(err, errors.ErrInvalidCredentials))
}

func TestSignup_Success(t *testing.T) {
	fake := &fakeUserStore{}
	svc, _ := newSessionService(t, fake)

	user, err := svc.Signup(context.Background(), service.SignupRequest{
		Name:            "Arjun",
		Email:           "arjun@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "9876543210",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password)
	assert.Equal(t, 1, fake.creates)
	assert.NotNil(t, svc.Current(), "signup logs in immediately")
}

func TestSignup_EmailExists(t *testing.T) {
	fake := &fakeUserStore{users: []domain.User{seededUser()}}
	svc, _ := newSessionService(t, fake)

	_, err := svc.Signup(context.Background(), service.SignupRequest{
		Name:            "Imposter",
		Email:           "priya@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "9876543210",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyExists))
	assert.Zero(t, fake.creates, "no create call is made")
	assert.Nil(t, svc.Current())
}

func TestSignup_ValidationFailsBeforeAnyCall(t *testing.T) {
	fake := &fakeUserStore{}
	svc, _ := newSessionService(t, fake)

	_, err := svc.Signup(context.Background(), service.SignupRequest{
		Name:            "Arjun",
		Email:           "arjun@example.com",
		Password:        "secret1",
		ConfirmPassword: "different",
		Phone:           "9876543210",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Zero(t, fake.creates)
}

func TestLogout_ClearsMemoryAndMirror(t *testing.T) {
	fake := &fakeUserStore{users: []domain.User{seededUser()}}
	svc, st := newSessionService(t, fake)

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	assert.Nil(t, svc.Current())
	persisted, err := st.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestUpdateProfile_PreservesPassword(t *testing.T) {
	fake := &fakeUserStore{users: []domain.User{seededUser()}}
	svc, st := newSessionService(t, fake)

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), service.ProfileUpdateRequest{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Phone:   "9000000000",
		Pincode: "600041",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", updated.Name)
	assert.Empty(t, updated.Password)

	// The stored record keeps its password; only the session copy is
	// sanitized.
	assert.Equal(t, "secret1", fake.users[0].Password)
	assert.Equal(t, "Priya Sharma", fake.users[0].Name)

	persisted, err := st.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", persisted.Name)
}

func TestUpdateProfile_RequiresLogin(t *testing.T) {
	svc, _ := newSessionService(t, &fakeUserStore{})

	_, err := svc.UpdateProfile(context.Background(), service.ProfileUpdateRequest{
		Name: "Nobody", Email: "n@example.com", Phone: "9000000000",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBlocked))
}

func TestReconcile_AdoptsPersistedSession(t *testing.T) {
	fake := &fakeUserStore{}
	svc, st := newSessionService(t, fake)

	require.NoError(t, st.SaveSession(domain.User{ID: "user-1", Name: "Priya"}))

	user, err := svc.Reconcile()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, user, svc.Current())
}

func TestReconcile_DropsVanishedSession(t *testing.T) {
	fake := &fakeUserStore{users: []domain.User{seededUser()}}
	svc, st := newSessionService(t, fake)

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	// Another instance logged out underneath us.
	require.NoError(t, st.ClearSession())

	user, err := svc.Reconcile()
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, svc.Current())
}
