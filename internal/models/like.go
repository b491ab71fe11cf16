package models

import (
	"time"

	"github.com/google/uuid"
)

// Like — отметка «нравится»; пара (ProfileID, ChirpID) уникальна.
type Like struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	ChirpID   uuid.UUID
	CreatedAt time.Time
}

// LikeWithProfile — лайк вместе с кратким профилем поставившего.
type LikeWithProfile struct {
	Like
	Username    string
	DisplayName string
	AvatarURL   string
}

// LikeStats — число лайков записи и признак лайка текущего зрителя.
type LikeStats struct {
	ChirpID   uuid.UUID
	LikeCount int64
	IsLiked   bool
}
