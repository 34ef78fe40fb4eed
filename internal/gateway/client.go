// Package gateway translates domain operations into requests against the
// remote REST resource store.
//
// The store exposes conventional collection endpoints (/rooms, /users,
// /bookings, /favorites) returning JSON arrays for lists and JSON objects
// for items. The gateway performs no retries and no caching: every call is
// a fresh round trip, and every failure (network, non-2xx status, malformed
// payload) maps to the transport error code.
package gateway

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/staynestapp/staynest-client/internal/errors"
)

// Client is the remote data gateway. All methods take a context and either
// resolve with the requested payload or fail with a transport error.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New creates a gateway client against the store at baseURL. Timeout bounds
// each round trip; retries stay disabled so callers see failures as they
// happen.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   http,
		logger: logger,
	}
}

// wrapErr maps a failed round trip to a transport error. resty surfaces
// network failures and payload decode failures through err; non-2xx
// responses come back with resp.IsError().
func (c *Client) wrapErr(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("store call failed", "op", op, "error", err)
		return errors.Wrapf(err, errors.CodeTransport, "%s", op)
	}
	if resp.IsError() {
		c.logger.Error("store call rejected", "op", op, "status", resp.Status())
		return errors.Transportf("%s: store returned %s", op, resp.Status())
	}
	return nil
}
