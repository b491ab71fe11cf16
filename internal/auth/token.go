package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/config"
	"github.com/pribylovaa/chirper/internal/models"
)

// ErrInvalidToken — единственная ошибка проверки токена: подпись, срок,
// issuer и audience намеренно не различаются.
var ErrInvalidToken = errors.New("invalid token")

const leeway = 5 * time.Second

type accessClaims struct {
	ProfileID string `json:"profileId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	ProfileID string `json:"profileId"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет JWT. Безопасен для конкурентного использования.
type Manager struct {
	cfg config.AuthConfig
	now func() time.Time
}

// NewManager создаёт Manager с настройками из cfg.
func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{cfg: cfg, now: time.Now}
}

// GenerateAccessToken подписывает {profileId, username, email} access-секретом.
func (m *Manager) GenerateAccessToken(c models.AccessClaims) (string, error) {
	const op = "auth.token.GenerateAccessToken"

	now := m.now().UTC()
	claims := accessClaims{
		ProfileID:        c.ProfileID.String(),
		Username:         c.Username,
		Email:            c.Email,
		RegisteredClaims: m.registered(c.ProfileID, m.cfg.AccessAudience, now, m.cfg.AccessTTL),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// GenerateRefreshToken подписывает {profileId} отдельным refresh-секретом.
func (m *Manager) GenerateRefreshToken(c models.RefreshClaims) (string, error) {
	const op = "auth.token.GenerateRefreshToken"

	now := m.now().UTC()
	claims := refreshClaims{
		ProfileID:        c.ProfileID.String(),
		RegisteredClaims: m.registered(c.ProfileID, m.cfg.RefreshAudience, now, m.cfg.RefreshTTL),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.RefreshSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// VerifyAccessToken проверяет подпись, issuer, audience и срок access-токена.
func (m *Manager) VerifyAccessToken(token string) (*models.AccessClaims, error) {
	const op = "auth.token.VerifyAccessToken"

	var claims accessClaims
	if err := m.parse(token, &claims, m.cfg.AccessSecret, m.cfg.AccessAudience); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	id, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &models.AccessClaims{
		ProfileID: id,
		Username:  claims.Username,
		Email:     claims.Email,
	}, nil
}

// VerifyRefreshToken проверяет refresh-токен.
func (m *Manager) VerifyRefreshToken(token string) (*models.RefreshClaims, error) {
	const op = "auth.token.VerifyRefreshToken"

	var claims refreshClaims
	if err := m.parse(token, &claims, m.cfg.RefreshSecret, m.cfg.RefreshAudience); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	id, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &models.RefreshClaims{ProfileID: id}, nil
}

func (m *Manager) registered(id uuid.UUID, audience string, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    m.cfg.Issuer,
		Subject:   id.String(),
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
}

func (m *Manager) parse(token string, claims jwt.Claims, secret, audience string) error {
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return err
	}

	if !parsed.Valid {
		return ErrInvalidToken
	}

	return nil
}
