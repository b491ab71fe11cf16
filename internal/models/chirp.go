package models

import (
	"time"

	"github.com/google/uuid"
)

// Chirp — короткая запись (1–141 символ), принадлежащая одному профилю.
type Chirp struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChirpAuthor — краткие сведения об авторе для ленты.
type ChirpAuthor struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   string
}

// ChirpView — запись с автором и состоянием лайков относительно зрителя.
// IsLiked всегда false для анонимного зрителя.
type ChirpView struct {
	Chirp
	Author    ChirpAuthor
	LikeCount int64
	IsLiked   bool
}
