// models содержит доменные сущности chirper.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile — внутренняя доменная модель профиля.
// PasswordHash заполняется только при чтении по email (вход).
type Profile struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	Bio          string
	AvatarURL    string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile — профиль без email и хеша пароля.
type PublicProfile struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Public возвращает публичное представление профиля.
func (p *Profile) Public() *PublicProfile {
	if p == nil {
		return nil
	}

	return &PublicProfile{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
