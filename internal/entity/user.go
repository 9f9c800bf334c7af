package entity

import "time"

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	FullName      string    `json:"full_name"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	RefreshToken  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Sanitized strips credential material before the user leaves the
// service. The json tags already hide these fields; clearing them as
// well keeps copies handed to other layers safe.
func (u *User) Sanitized() *User {
	clone := *u
	clone.Password = ""
	clone.RefreshToken = ""
	return &clone
}

// ChannelProfile is the public view of a user's channel.
type ChannelProfile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatar_url"`
	CoverImageURL     string `json:"cover_image_url,omitempty"`
	SubscriberCount   int64  `json:"subscriber_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
}
