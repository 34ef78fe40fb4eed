package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// ListUsers fetches every account record in the store.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	resp, err := c.http.R().SetContext(ctx).SetResult(&users).Get("/users")
	if err := c.wrapErr("list users", resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single account by identifier.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	resp, err := c.http.R().SetContext(ctx).SetResult(&user).
		Get(fmt.Sprintf("/users/%s", id))
	if err := c.wrapErr("get user", resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUsersByEmail queries accounts by exact email. The store enforces no
// uniqueness, so the result is a slice; callers treat the first record as
// authoritative when more than one comes back.
func (c *Client) FindUsersByEmail(ctx context.Context, email string) ([]domain.User, error) {
	var users []domain.User
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&users).
		Get("/users")
	if err := c.wrapErr("find users by email", resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser inserts an account record and returns the stored record with
// its assigned identifier.
func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	resp, err := c.http.R().SetContext(ctx).SetBody(user).SetResult(&created).
		Post("/users")
	if err := c.wrapErr("create user", resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces an account record and returns the stored result.
func (c *Client) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var updated domain.User
	resp, err := c.http.R().SetContext(ctx).SetBody(user).SetResult(&updated).
		Put(fmt.Sprintf("/users/%s", user.ID))
	if err := c.wrapErr("update user", resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes an account record.
func (c *Client) DeleteUser(ctx context.Context, id string) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("/users/%s", id))
	if err := c.wrapErr("delete user", resp, err); err != nil {
		return false, err
	}
	return resp.StatusCode() == http.StatusOK, nil
}
