package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/events"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/pkg/log"
)

// ToggleLike переключает лайк profileID на записи chirpID безусловно
// и возвращает итоговое состояние.
func (s *Service) ToggleLike(ctx context.Context, profileID, chirpID uuid.UUID) (*models.LikeStats, error) {
	const op = "service.likes.ToggleLike"

	lg := log.From(ctx).With("op", op, "profile_id", profileID.String(), "chirp_id", chirpID.String())

	stats, err := s.storage.ToggleLike(ctx, profileID, chirpID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("chirp not found")

			return nil, fmt.Errorf("%s: %w", op, ErrChirpNotFound)
		}

		lg.Error("like_toggle_failed", "err", err)

		return nil, internalError(op, err)
	}

	s.publish(ctx, events.Event{
		Type:      events.LikeToggled,
		ProfileID: profileID,
		ChirpID:   &chirpID,
		LikeCount: &stats.LikeCount,
		IsLiked:   &stats.IsLiked,
	})

	return stats, nil
}

// LikeStats возвращает число лайков записи и признак лайка viewer.
func (s *Service) LikeStats(ctx context.Context, chirpID, viewer uuid.UUID) (*models.LikeStats, error) {
	const op = "service.likes.LikeStats"

	stats, err := s.storage.LikeStats(ctx, chirpID, viewer)
	if err != nil {
		log.From(ctx).Error("like_stats_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return stats, nil
}

// ChirpLikers возвращает лайки записи с профилями поставивших.
func (s *Service) ChirpLikers(ctx context.Context, chirpID uuid.UUID, page storage.Page) ([]models.LikeWithProfile, error) {
	const op = "service.likes.ChirpLikers"

	out, err := s.storage.LikesByChirp(ctx, chirpID, s.Page(page.Limit, page.Offset))
	if err != nil {
		log.From(ctx).Error("chirp_likers_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return out, nil
}

// ProfileLikes возвращает лайки, поставленные профилем.
func (s *Service) ProfileLikes(ctx context.Context, profileID uuid.UUID, page storage.Page) ([]models.Like, error) {
	const op = "service.likes.ProfileLikes"

	out, err := s.storage.LikesByProfile(ctx, profileID, s.Page(page.Limit, page.Offset))
	if err != nil {
		log.From(ctx).Error("profile_likes_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return out, nil
}
