package entity

import "time"

// Playlist is an owner-named set of videos; adding the same video
// twice is suppressed at the storage layer.
type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Videos      []*Video  `json:"videos,omitempty"`
	Owner       *Owner    `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
