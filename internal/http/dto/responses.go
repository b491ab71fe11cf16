package dto

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

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

type AuthResponse struct {
	Message      string  `json:"message"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Profile      Profile `json:"profile"`
}

type RefreshResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	Message string  `json:"message,omitempty"`
	Profile Profile `json:"profile"`
}

type ChirpResponse struct {
	Message string `json:"message,omitempty"`
	Chirp   Chirp  `json:"chirp"`
}

type ChirpListResponse struct {
	Chirps     []Chirp    `json:"chirps"`
	Pagination Pagination `json:"pagination"`
}

type LikeToggleResponse struct {
	Message   string `json:"message"`
	LikeCount int64  `json:"like_count"`
	IsLiked   bool   `json:"is_liked"`
}

type LikeListResponse struct {
	Likes      []Like     `json:"likes"`
	Pagination Pagination `json:"pagination"`
}

type AvatarPresignResponse struct {
	UploadURL       string            `json:"upload_url"`
	AvatarKey       string            `json:"avatar_key"`
	ExpiresSeconds  int64             `json:"expires_seconds"`
	RequiredHeaders map[string]string `json:"required_headers"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
