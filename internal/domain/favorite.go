package domain

// Favorite is the join row between a user and a room. The store enforces no
// uniqueness on the pair; the client checks membership before inserting, so
// at most one row per (user, room) exists under normal operation.
type Favorite struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId"`
	RoomID string `json:"roomId"`
}
