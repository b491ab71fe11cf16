package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/chirper/internal/events"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/pkg/log"
	"github.com/pribylovaa/chirper/pkg/redact"
)

// Register создаёт профиль и выдаёт пару токенов.
//
// Порядок: проверка username, затем email, хеширование, вставка.
// Гонка двух регистраций решается ограничением уникальности в БД:
// проигравшая получает ErrUsernameTaken/ErrEmailTaken.
func (s *Service) Register(ctx context.Context, in models.RegisterInput) (*models.Session, error) {
	const op = "service.auth.Register"

	in.Email = normalizeEmail(in.Email)
	lg := log.From(ctx).With("op", op, "username", in.Username, "email", redact.Email(in.Email))

	if in.Username == "" || in.DisplayName == "" || in.Email == "" || in.Password == "" {
		lg.Warn("invalid argument: empty required field")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	taken, err := s.storage.UsernameExists(ctx, in.Username)
	if err != nil {
		lg.Error("username_check_failed", "err", err)

		return nil, internalError(op, err)
	}

	if taken {
		lg.Warn("username taken")

		return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	}

	taken, err = s.storage.EmailExists(ctx, in.Email)
	if err != nil {
		lg.Error("email_check_failed", "err", err)

		return nil, internalError(op, err)
	}

	if taken {
		lg.Warn("email taken")

		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		lg.Error("password_hash_failed", "err", err)

		return nil, internalError(op, err)
	}

	id, err := newID()
	if err != nil {
		return nil, internalError(op, err)
	}

	created, err := s.storage.CreateProfile(ctx, &models.Profile{
		ID:           id,
		Username:     in.Username,
		DisplayName:  in.DisplayName,
		Bio:          in.Bio,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("profile already exists", "field", storage.ConflictField(err))

			if storage.ConflictField(err) == storage.FieldEmail {
				return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
			}

			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}

		lg.Error("profile_create_failed", "err", err)

		return nil, internalError(op, err)
	}

	session, err := s.issueSession(created)
	if err != nil {
		lg.Error("token_issue_failed", "err", err)

		return nil, internalError(op, err)
	}

	s.publish(ctx, events.Event{Type: events.ProfileRegistered, ProfileID: created.ID})
	lg.Info("profile registered", "profile_id", created.ID.String())

	return session, nil
}

// Login проверяет email и пароль и выдаёт пару токенов.
// Неизвестный email и неверный пароль неразличимы: ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "service.auth.Login"

	email = normalizeEmail(email)
	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	profile, err := s.storage.ProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login: unknown email")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("profile_lookup_failed", "err", err)

		return nil, internalError(op, err)
	}

	if !s.hasher.Verify(profile.PasswordHash, password) {
		lg.Warn("login: wrong password", "profile_id", profile.ID.String())

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	session, err := s.issueSession(profile)
	if err != nil {
		lg.Error("token_issue_failed", "err", err)

		return nil, internalError(op, err)
	}

	return session, nil
}

// Refresh выдаёт новый access-токен по refresh-токену.
// Refresh-токен не ротируется.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "service.auth.Refresh"

	lg := log.From(ctx).With("op", op)

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		lg.Warn("refresh token rejected")

		return "", fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	profile, err := s.storage.ProfileByID(ctx, claims.ProfileID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh: profile gone", "profile_id", claims.ProfileID.String())

			return "", fmt.Errorf("%s: %w", op, ErrProfileGone)
		}

		lg.Error("profile_lookup_failed", "err", err)

		return "", internalError(op, err)
	}

	access, err := s.tokens.GenerateAccessToken(accessClaims(profile))
	if err != nil {
		lg.Error("token_issue_failed", "err", err)

		return "", internalError(op, err)
	}

	return access, nil
}

func (s *Service) issueSession(p *models.Profile) (*models.Session, error) {
	access, err := s.tokens.GenerateAccessToken(accessClaims(p))
	if err != nil {
		return nil, err
	}

	refresh, err := s.tokens.GenerateRefreshToken(models.RefreshClaims{ProfileID: p.ID})
	if err != nil {
		return nil, err
	}

	out := *p
	out.PasswordHash = ""

	return &models.Session{
		Tokens:  models.TokenPair{AccessToken: access, RefreshToken: refresh},
		Profile: &out,
	}, nil
}

func accessClaims(p *models.Profile) models.AccessClaims {
	return models.AccessClaims{ProfileID: p.ID, Username: p.Username, Email: p.Email}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
