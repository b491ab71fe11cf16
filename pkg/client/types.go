package client

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Author struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}

// Chirp — запись ленты вместе с автором и состоянием лайка для текущего зрителя.
type Chirp struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Profile   Author    `json:"profile"`
	LikeCount int64     `json:"like_count"`
	IsLiked   bool      `json:"is_liked"`
}

type Like struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	ChirpID     uuid.UUID `json:"chirp_id"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

type LikeStats struct {
	ChirpID   uuid.UUID `json:"chirp_id"`
	LikeCount int64     `json:"like_count"`
	IsLiked   bool      `json:"is_liked"`
}

// Page — параметры пагинации; нулевые значения не передаются и берутся сервером по умолчанию.
type Page struct {
	Limit  int
	Offset int
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

type ChirpList struct {
	Chirps     []Chirp    `json:"chirps"`
	Pagination Pagination `json:"pagination"`
}

type LikeList struct {
	Likes      []Like     `json:"likes"`
	Pagination Pagination `json:"pagination"`
}

// LikeToggle — результат переключения лайка.
type LikeToggle struct {
	Message   string `json:"message"`
	LikeCount int64  `json:"like_count"`
	IsLiked   bool   `json:"is_liked"`
}

type RegisterParams struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Bio         string `json:"bio,omitempty"`
}

// ProfileUpdate — частичное обновление профиля; nil-поля не меняются.
type ProfileUpdate struct {
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

type AuthResult struct {
	Message      string  `json:"message"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Profile      Profile `json:"profile"`
}

type AvatarUpload struct {
	UploadURL       string            `json:"upload_url"`
	AvatarKey       string            `json:"avatar_key"`
	ExpiresSeconds  int64             `json:"expires_seconds"`
	RequiredHeaders map[string]string `json:"required_headers"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

type profileEnvelope struct {
	Message string  `json:"message,omitempty"`
	Profile Profile `json:"profile"`
}

type chirpEnvelope struct {
	Message string `json:"message,omitempty"`
	Chirp   Chirp  `json:"chirp"`
}

type likeRequest struct {
	ChirpID uuid.UUID `json:"chirp_id"`
}
