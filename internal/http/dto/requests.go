// dto описывает JSON-контракт REST API chirper: тела запросов с правилами
// валидации и тела ответов, а также конвертацию из доменных моделей.
package dto

import (
	"strings"

	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
)

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50,username"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=100"`
	Bio         string `json:"bio" validate:"max=500"`
}

func (r RegisterRequest) ToInput() models.RegisterInput {
	return models.RegisterInput{
		Username:    r.Username,
		DisplayName: strings.TrimSpace(r.DisplayName),
		Email:       r.Email,
		Password:    r.Password,
		Bio:         r.Bio,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChirpRequest struct {
	Content string `json:"content" validate:"required,min=1,max=141"`
}

type LikeRequest struct {
	ChirpID string `json:"chirp_id" validate:"required,uuid"`
}

// UpdateProfileRequest — частичное обновление; отсутствующие поля не меняются.
// Пустая строка в avatar_url сбрасывает аватар.
type UpdateProfileRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=50,username"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url_or_empty"`
}

func (r UpdateProfileRequest) ToUpdate() storage.ProfileUpdate {
	return storage.ProfileUpdate{
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Bio:         r.Bio,
		AvatarURL:   r.AvatarURL,
	}
}

type AvatarPresignRequest struct {
	ContentType   string `json:"content_type" validate:"required"`
	ContentLength int64  `json:"content_length" validate:"required,gt=0"`
}

type AvatarConfirmRequest struct {
	AvatarKey string `json:"avatar_key" validate:"required"`
}
