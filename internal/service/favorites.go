package service

import (
	"context"
	"log/slog"

	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/gateway"
)

// FavoriteService manages the per-user favorite marks. Every mutation
// goes through the gateway first; callers update their view of the
// membership set only after the store confirms.
type FavoriteService struct {
	gateway *gateway.Client
	logger  *slog.Logger
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(gw *gateway.Client, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{gateway: gw, logger: logger}
}

// RoomIDs returns the ids of all rooms the user has marked.
func (s *FavoriteService) RoomIDs(ctx context.Context, userID string) ([]string, error) {
	favorites, err := s.gateway.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.RoomID)
	}
	return ids, nil
}

// Add marks a room as a favorite for the user. The store assigns the
// mark's surrogate id; the (user, room) pair is what identifies it.
func (s *FavoriteService) Add(ctx context.Context, userID, roomID string) error {
	_, err := s.gateway.CreateFavorite(ctx, domain.Favorite{UserID: userID, RoomID: roomID})
	if err != nil {
		return err
	}
	s.logger.Debug("favorite added", "user_id", userID, "room_id", roomID)
	return nil
}

// Remove clears the user's favorite mark on a room. It reports whether a
// mark existed; removing an absent mark is not an error.
func (s *FavoriteService) Remove(ctx context.Context, userID, roomID string) (bool, error) {
	removed, err := s.gateway.DeleteFavoriteByUserAndRoom(ctx, userID, roomID)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Debug("favorite removed", "user_id", userID, "room_id", roomID)
	}
	return removed, nil
}
