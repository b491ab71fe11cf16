package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/events"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/pkg/log"
)

// MaxChirpLength — максимальная длина записи в символах.
const MaxChirpLength = 141

// Feed возвращает ленту для viewer (uuid.Nil — аноним).
func (s *Service) Feed(ctx context.Context, viewer uuid.UUID, page storage.Page) ([]models.ChirpView, error) {
	const op = "service.chirps.Feed"

	out, err := s.storage.Feed(ctx, viewer, s.Page(page.Limit, page.Offset))
	if err != nil {
		log.From(ctx).Error("feed_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return out, nil
}

// Chirp возвращает одну запись.
func (s *Service) Chirp(ctx context.Context, id, viewer uuid.UUID) (*models.ChirpView, error) {
	const op = "service.chirps.Chirp"

	v, err := s.storage.ChirpByID(ctx, id, viewer)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrChirpNotFound)
		}

		log.From(ctx).Error("chirp_lookup_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return v, nil
}

// ChirpsByProfile возвращает записи профиля.
func (s *Service) ChirpsByProfile(ctx context.Context, profileID, viewer uuid.UUID, page storage.Page) ([]models.ChirpView, error) {
	const op = "service.chirps.ChirpsByProfile"

	out, err := s.storage.ChirpsByProfile(ctx, profileID, viewer, s.Page(page.Limit, page.Offset))
	if err != nil {
		log.From(ctx).Error("profile_chirps_failed", "op", op, "err", err)

		return nil, internalError(op, err)
	}

	return out, nil
}

// CreateChirp публикует запись от имени owner.
func (s *Service) CreateChirp(ctx context.Context, owner uuid.UUID, content string) (*models.ChirpView, error) {
	const op = "service.chirps.CreateChirp"

	lg := log.From(ctx).With("op", op, "profile_id", owner.String())

	if !validContent(content) {
		lg.Warn("invalid argument: content length")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	id, err := newID()
	if err != nil {
		return nil, internalError(op, err)
	}

	created, err := s.storage.CreateChirp(ctx, &models.Chirp{ID: id, ProfileID: owner, Content: content})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			lg.Warn("owner profile missing")

			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}

		lg.Error("chirp_create_failed", "err", err)

		return nil, internalError(op, err)
	}

	v, err := s.storage.ChirpByID(ctx, created.ID, owner)
	if err != nil {
		lg.Error("chirp_lookup_failed", "err", err)

		return nil, internalError(op, err)
	}

	s.publish(ctx, events.Event{Type: events.ChirpCreated, ProfileID: owner, ChirpID: &created.ID})

	return v, nil
}

// UpdateChirp меняет текст записи. Чужая и отсутствующая запись — ErrChirpNotFound.
func (s *Service) UpdateChirp(ctx context.Context, id, owner uuid.UUID, content string) (*models.ChirpView, error) {
	const op = "service.chirps.UpdateChirp"

	lg := log.From(ctx).With("op", op, "profile_id", owner.String(), "chirp_id", id.String())

	if !validContent(content) {
		lg.Warn("invalid argument: content length")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.UpdateChirp(ctx, id, owner, content); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("chirp not found or not owned")

			return nil, fmt.Errorf("%s: %w", op, ErrChirpNotFound)
		}

		lg.Error("chirp_update_failed", "err", err)

		return nil, internalError(op, err)
	}

	v, err := s.storage.ChirpByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrChirpNotFound)
		}

		lg.Error("chirp_lookup_failed", "err", err)

		return nil, internalError(op, err)
	}

	s.publish(ctx, events.Event{Type: events.ChirpUpdated, ProfileID: owner, ChirpID: &id})

	return v, nil
}

// DeleteChirp удаляет запись. Чужая и отсутствующая запись — ErrChirpNotFound.
func (s *Service) DeleteChirp(ctx context.Context, id, owner uuid.UUID) error {
	const op = "service.chirps.DeleteChirp"

	lg := log.From(ctx).With("op", op, "profile_id", owner.String(), "chirp_id", id.String())

	if err := s.storage.DeleteChirp(ctx, id, owner); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("chirp not found or not owned")

			return fmt.Errorf("%s: %w", op, ErrChirpNotFound)
		}

		lg.Error("chirp_delete_failed", "err", err)

		return internalError(op, err)
	}

	s.publish(ctx, events.Event{Type: events.ChirpDeleted, ProfileID: owner, ChirpID: &id})

	return nil
}

func validContent(content string) bool {
	n := utf8.RuneCountInString(content)
	return n >= 1 && n <= MaxChirpLength
}
