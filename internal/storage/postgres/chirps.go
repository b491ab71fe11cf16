package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
)

const chirpColumns = `id, profile_id, content, created_at, updated_at`

// chirpViewSelect — запись с автором, числом лайков и признаком лайка зрителя ($1).
const chirpViewSelect = `
SELECT c.id, c.profile_id, c.content, c.created_at, c.updated_at,
       p.id, p.username, p.display_name, p.avatar_url,
       (SELECT COUNT(*) FROM likes l WHERE l.chirp_id = c.id) AS like_count,
       EXISTS (SELECT 1 FROM likes l WHERE l.chirp_id = c.id AND l.profile_id = $1) AS is_liked
FROM chirps c
JOIN profiles p ON p.id = c.profile_id
`

func scanChirp(row pgx.Row) (*models.Chirp, error) {
	var c models.Chirp

	if err := row.Scan(&c.ID, &c.ProfileID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

func scanChirpView(row pgx.Row) (*models.ChirpView, error) {
	var v models.ChirpView

	if err := row.Scan(
		&v.ID,
		&v.ProfileID,
		&v.Content,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.Author.ID,
		&v.Author.Username,
		&v.Author.DisplayName,
		&v.Author.AvatarURL,
		&v.LikeCount,
		&v.IsLiked,
	); err != nil {
		return nil, err
	}

	return &v, nil
}

func (s *Storage) listChirpViews(ctx context.Context, q string, args ...any) ([]models.ChirpView, error) {
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ChirpView, 0)
	for rows.Next() {
		v, err := scanChirpView(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, *v)
	}

	return out, rows.Err()
}

// CreateChirp вставляет запись. Ошибки: storage.ErrInvalidReference, если профиля нет.
func (s *Storage) CreateChirp(ctx context.Context, chirp *models.Chirp) (*models.Chirp, error) {
	const op = "storage.postgres.chirps.CreateChirp"

	q := `INSERT INTO chirps (id, profile_id, content) VALUES ($1, $2, $3) RETURNING ` + chirpColumns

	result, err := scanChirp(s.db.QueryRow(ctx, q, chirp.ID, chirp.ProfileID, chirp.Content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// ChirpByID возвращает запись с состоянием лайков для viewer. Ошибки: storage.ErrNotFound.
func (s *Storage) ChirpByID(ctx context.Context, id, viewer uuid.UUID) (*models.ChirpView, error) {
	const op = "storage.postgres.chirps.ChirpByID"

	q := chirpViewSelect + `WHERE c.id = $2`

	result, err := scanChirpView(s.db.QueryRow(ctx, q, viewer, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// Feed возвращает общую ленту: created_at DESC, id DESC.
func (s *Storage) Feed(ctx context.Context, viewer uuid.UUID, page storage.Page) ([]models.ChirpView, error) {
	const op = "storage.postgres.chirps.Feed"

	q := chirpViewSelect + `ORDER BY c.created_at DESC, c.id DESC LIMIT $2 OFFSET $3`

	out, err := s.listChirpViews(ctx, q, viewer, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ChirpsByProfile возвращает записи одного профиля, новые первыми.
func (s *Storage) ChirpsByProfile(ctx context.Context, profileID, viewer uuid.UUID, page storage.Page) ([]models.ChirpView, error) {
	const op = "storage.postgres.chirps.ChirpsByProfile"

	q := chirpViewSelect + `WHERE c.profile_id = $2 ORDER BY c.created_at DESC, c.id DESC LIMIT $3 OFFSET $4`

	out, err := s.listChirpViews(ctx, q, viewer, profileID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateChirp меняет текст записи владельца. Ошибки: storage.ErrNotFound.
func (s *Storage) UpdateChirp(ctx context.Context, id, owner uuid.UUID, content string) (*models.Chirp, error) {
	const op = "storage.postgres.chirps.UpdateChirp"

	q := `
	UPDATE chirps SET content = $3, updated_at = now()
	WHERE id = $1 AND profile_id = $2
	RETURNING ` + chirpColumns

	result, err := scanChirp(s.db.QueryRow(ctx, q, id, owner, content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// DeleteChirp удаляет запись владельца. Ошибки: storage.ErrNotFound.
func (s *Storage) DeleteChirp(ctx context.Context, id, owner uuid.UUID) error {
	const op = "storage.postgres.chirps.DeleteChirp"

	tag, err := s.db.Exec(ctx, `DELETE FROM chirps WHERE id = $1 AND profile_id = $2`, id, owner)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
