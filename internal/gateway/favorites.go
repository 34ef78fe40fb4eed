package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// ListFavorites fetches every favorite row in the store.
func (c *Client) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	resp, err := c.http.R().SetContext(ctx).SetResult(&favorites).Get("/favorites")
	if err := c.wrapErr("list favorites", resp, err); err != nil {
		return nil, err
	}
	return favorites, nil
}

// ListFavoritesByUser fetches the favorite rows belonging to one user.
func (c *Client) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&favorites).
		Get("/favorites")
	if err := c.wrapErr("list favorites by user", resp, err); err != nil {
		return nil, err
	}
	return favorites, nil
}

// FindFavoritesByUserAndRoom queries favorite rows for one (user, room)
// pair. Under normal operation there is at most one.
func (c *Client) FindFavoritesByUserAndRoom(ctx context.Context, userID, roomID string) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetQueryParam("roomId", roomID).
		SetResult(&favorites).
		Get("/favorites")
	if err := c.wrapErr("find favorite", resp, err); err != nil {
		return nil, err
	}
	return favorites, nil
}

// CreateFavorite inserts a favorite row and returns the stored record.
func (c *Client) CreateFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	var created domain.Favorite
	resp, err := c.http.R().SetContext(ctx).SetBody(favorite).SetResult(&created).
		Post("/favorites")
	if err := c.wrapErr("create favorite", resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteFavorite removes a favorite row by its surrogate identifier.
func (c *Client) DeleteFavorite(ctx context.Context, id string) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("/favorites/%s", id))
	if err := c.wrapErr("delete favorite", resp, err); err != nil {
		return false, err
	}
	return resp.StatusCode() == http.StatusOK, nil
}

// DeleteFavoriteByUserAndRoom removes the favorite row for a (user, room)
// pair. The store offers no delete-by-query, so this is a lookup followed
// by a delete on the surrogate id, and the two steps are not atomic: if a
// concurrent caller removes the row between them, the second call's 404 is
// treated as the row already being gone, not as an error.
//
// Returns true when a row was removed (or was already gone by the second
// step), false when the lookup found nothing to remove.
func (c *Client) DeleteFavoriteByUserAndRoom(ctx context.Context, userID, roomID string) (bool, error) {
	favorites, err := c.FindFavoritesByUserAndRoom(ctx, userID, roomID)
	if err != nil {
		return false, err
	}
	if len(favorites) == 0 {
		return false, nil
	}

	resp, err := c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("/favorites/%s", favorites[0].ID))
	if err != nil {
		return false, c.wrapErr("delete favorite", resp, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		// Lost the race to another deletion; the row is gone either way.
		return true, nil
	}
	if err := c.wrapErr("delete favorite", resp, nil); err != nil {
		return false, err
	}
	return resp.StatusCode() == http.StatusOK, nil
}
