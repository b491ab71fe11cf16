package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
)

// ToggleLike в одной транзакции снимает лайк, если он есть, иначе ставит.
// Одновременные переключения одной пары решаются на уровне строки.
// Ошибки: storage.ErrNotFound, если записи нет.
func (s *Storage) ToggleLike(ctx context.Context, profileID, chirpID uuid.UUID) (*models.LikeStats, error) {
	const op = "storage.postgres.likes.ToggleLike"

	var stats *models.LikeStats
	err := s.WithTx(ctx, func(ctx context.Context, tx storage.Storage) error {
		t := tx.(*Storage)

		tag, err := t.db.Exec(ctx, `DELETE FROM likes WHERE profile_id = $1 AND chirp_id = $2`, profileID, chirpID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			_, err = t.db.Exec(ctx, `
			INSERT INTO likes (id, profile_id, chirp_id) VALUES ($1, $2, $3)
			ON CONFLICT (profile_id, chirp_id) DO NOTHING`,
				uuid.Must(uuid.NewV7()), profileID, chirpID)
			if err != nil {
				if mapped := mapError(err); mapped == storage.ErrInvalidReference {
					return storage.ErrNotFound
				}

				return err
			}
		}

		stats, err = t.LikeStats(ctx, chirpID, profileID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// LikeStats возвращает число лайков записи и признак лайка viewer.
// Статистика отсутствующей записи: 0/false.
func (s *Storage) LikeStats(ctx context.Context, chirpID, viewer uuid.UUID) (*models.LikeStats, error) {
	const op = "storage.postgres.likes.LikeStats"

	q := `
	SELECT COUNT(*) AS like_count,
	       COALESCE(bool_or(profile_id = $2), false) AS is_liked
	FROM likes
	WHERE chirp_id = $1`

	stats := models.LikeStats{ChirpID: chirpID}
	if err := s.db.QueryRow(ctx, q, chirpID, viewer).Scan(&stats.LikeCount, &stats.IsLiked); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}

// LikesByChirp возвращает лайки записи вместе с профилями, новые первыми.
func (s *Storage) LikesByChirp(ctx context.Context, chirpID uuid.UUID, page storage.Page) ([]models.LikeWithProfile, error) {
	const op = "storage.postgres.likes.LikesByChirp"

	q := `
	SELECT l.id, l.profile_id, l.chirp_id, l.created_at, p.username, p.display_name, p.avatar_url
	FROM likes l
	JOIN profiles p ON p.id = l.profile_id
	WHERE l.chirp_id = $1
	ORDER BY l.created_at DESC, l.id DESC
	LIMIT $2 OFFSET $3`

	rows, err := s.db.Query(ctx, q, chirpID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]models.LikeWithProfile, 0)
	for rows.Next() {
		var l models.LikeWithProfile
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.ChirpID, &l.CreatedAt, &l.Username, &l.DisplayName, &l.AvatarURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// LikesByProfile возвращает лайки профиля, новые первыми.
func (s *Storage) LikesByProfile(ctx context.Context, profileID uuid.UUID, page storage.Page) ([]models.Like, error) {
	const op = "storage.postgres.likes.LikesByProfile"

	q := `
	SELECT id, profile_id, chirp_id, created_at
	FROM likes
	WHERE profile_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2 OFFSET $3`

	rows, err := s.db.Query(ctx, q, profileID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]models.Like, 0)
	for rows.Next() {
		var l models.Like
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.ChirpID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
