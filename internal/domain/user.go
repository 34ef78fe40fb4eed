package domain

import "time"

// User is an account record as held by the remote store. The Password field
// is opaque and compared by equality; it never leaves the login/signup path
// and is stripped before the record enters session state.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone"`

	// Optional address block, filled in via profile edit.
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`

	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy of the user with the password stripped. Session
// state and the persisted session mirror only ever hold sanitized users.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
