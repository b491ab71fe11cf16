package models

import "github.com/google/uuid"

// AccessClaims — полезная нагрузка access-токена.
type AccessClaims struct {
	ProfileID uuid.UUID
	Username  string
	Email     string
}

// RefreshClaims — полезная нагрузка refresh-токена.
type RefreshClaims struct {
	ProfileID uuid.UUID
}

// TokenPair — пара токенов, выдаваемая при регистрации и входе.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session — результат регистрации или входа.
type Session struct {
	Tokens  TokenPair
	Profile *Profile
}

// RegisterInput — данные регистрации. Формат полей проверяется транспортом.
type RegisterInput struct {
	Username    string
	DisplayName string
	Email       string
	Password    string
	Bio         string
}
