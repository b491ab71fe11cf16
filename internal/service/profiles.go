package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/pkg/log"
)

// Profile возвращает публичный профиль по id (read-through через кэш).
func (s *Service) Profile(ctx context.Context, id uuid.UUID) (*models.PublicProfile, error) {
	const op = "service.profiles.Profile"

	lg := log.From(ctx).With("op", op, "profile_id", id.String())

	if cached, ok, err := s.cache.Get(ctx, id); err != nil {
		lg.Warn("profile_cache_get_failed", "err", err)
	} else if ok {
		return cached, nil
	}

	p, err := s.storage.ProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}

		lg.Error("profile_lookup_failed", "err", err)

		return nil, internalError(op, err)
	}

	public := p.Public()
	if err := s.cache.Set(ctx, public); err != nil {
		lg.Warn("profile_cache_set_failed", "err", err)
	}

	return public, nil
}

// ProfileByUsername возвращает публичный профиль по username.
func (s *Service) ProfileByUsername(ctx context.Context, username string) (*models.PublicProfile, error) {
	const op = "service.profiles.ProfileByUsername"

	p, err := s.storage.ProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}

		log.From(ctx).Error("profile_lookup_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return p.Public(), nil
}

// MyProfile возвращает полный профиль (с email) владельца токена.
func (s *Service) MyProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	const op = "service.profiles.MyProfile"

	p, err := s.storage.ProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}

		log.From(ctx).Error("profile_lookup_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return p, nil
}

// UpdateProfile частично обновляет профиль владельца и сбрасывает кэш.
// Пустой апдейт возвращает текущий профиль.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, update storage.ProfileUpdate) (*models.Profile, error) {
	const op = "service.profiles.UpdateProfile"

	lg := log.From(ctx).With("op", op, "profile_id", id.String())

	p, err := s.storage.UpdateProfile(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("profile not found")

			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("username taken")

			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		default:
			lg.Error("profile_update_failed", "err", err)

			return nil, internalError(op, err)
		}
	}

	s.dropCachedProfile(ctx, id)

	return p, nil
}

func (s *Service) dropCachedProfile(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, id); err != nil {
		log.From(ctx).Warn("profile_cache_delete_failed", "profile_id", id.String(), "err", err)
	}
}
