package entity

import "time"

// LikeTarget names the kind of resource a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

func (t LikeTarget) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Like struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	TargetID   string     `json:"target_id"`
	TargetKind LikeTarget `json:"target_kind"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToggleAction reports which side of a toggle actually happened.
type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleRemoved ToggleAction = "removed"
)

type ToggleResult struct {
	Message string       `json:"message"`
	Action  ToggleAction `json:"action"`
}
