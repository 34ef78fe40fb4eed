package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// roomRecord is the wire shape of a room. Older seed data carries the
// priceINR field; when present it is authoritative and is folded into the
// canonical Price here, once, so nothing past the gateway ever sees it.
type roomRecord struct {
	domain.Room
	PriceINR float64 `json:"priceINR,omitempty"`
}

func (r roomRecord) migrated() domain.Room {
	room := r.Room
	if r.PriceINR != 0 {
		room.Price = r.PriceINR
	}
	return room
}

// ListRooms fetches the full catalog in store insertion order.
func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var records []roomRecord
	resp, err := c.http.R().SetContext(ctx).SetResult(&records).Get("/rooms")
	if err := c.wrapErr("list rooms", resp, err); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, len(records))
	for i, rec := range records {
		rooms[i] = rec.migrated()
	}
	return rooms, nil
}

// GetRoom fetches a single room by identifier.
func (c *Client) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	var record roomRecord
	resp, err := c.http.R().SetContext(ctx).SetResult(&record).
		Get(fmt.Sprintf("/rooms/%s", id))
	if err := c.wrapErr("get room", resp, err); err != nil {
		return nil, err
	}

	room := record.migrated()
	return &room, nil
}

// CreateRoom inserts a room and returns the stored record.
func (c *Client) CreateRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	var created domain.Room
	resp, err := c.http.R().SetContext(ctx).SetBody(room).SetResult(&created).
		Post("/rooms")
	if err := c.wrapErr("create room", resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRoom replaces a room record and returns the stored result.
func (c *Client) UpdateRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	var updated domain.Room
	resp, err := c.http.R().SetContext(ctx).SetBody(room).SetResult(&updated).
		Put(fmt.Sprintf("/rooms/%s", room.ID))
	if err := c.wrapErr("update room", resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRoom removes a room. Success is derived from the response status,
// not from payload content.
func (c *Client) DeleteRoom(ctx context.Context, id string) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("/rooms/%s", id))
	if err := c.wrapErr("delete room", resp, err); err != nil {
		return false, err
	}
	return resp.StatusCode() == http.StatusOK, nil
}
