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

// AvatarUploadURL выдаёт presigned PUT для нового аватара.
func (s *Service) AvatarUploadURL(ctx context.Context, profileID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.avatars.AvatarUploadURL"

	lg := log.From(ctx).With("op", op, "profile_id", profileID.String())

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	info, err := s.avatars.AvatarUploadURL(ctx, profileID, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			lg.Warn("invalid avatar parameters", "content_type", contentType, "content_length", contentLength)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("avatar_presign_failed", "err", err)

		return nil, internalError(op, err)
	}

	return info, nil
}

// ConfirmAvatar проверяет загруженный объект и записывает его URL в профиль.
func (s *Service) ConfirmAvatar(ctx context.Context, profileID uuid.UUID, key string) (*models.Profile, error) {
	const op = "service.avatars.ConfirmAvatar"

	lg := log.From(ctx).With("op", op, "profile_id", profileID.String())

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	url, err := s.avatars.CheckAvatarUpload(ctx, profileID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid avatar object", "key", key)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFoundAvatar):
			lg.Warn("avatar object not found", "key", key)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("avatar_check_failed", "err", err)

			return nil, internalError(op, err)
		}
	}

	p, err := s.UpdateProfile(ctx, profileID, storage.ProfileUpdate{AvatarURL: &url})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
