package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
)

// profileColumns — общий порядок колонок для SELECT/RETURNING.
const profileColumns = `id, username, display_name, bio, avatar_url, email, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile

	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.DisplayName,
		&p.Bio,
		&p.AvatarURL,
		&p.Email,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

// CreateProfile вставляет профиль.
// Ошибки: *storage.ConflictError (username/email заняты).
func (s *Storage) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	const op = "storage.postgres.profiles.CreateProfile"

	q := `
	INSERT INTO profiles (id, username, display_name, bio, avatar_url, email, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + profileColumns

	row := s.db.QueryRow(ctx, q,
		profile.ID,
		profile.Username,
		profile.DisplayName,
		profile.Bio,
		profile.AvatarURL,
		profile.Email,
		profile.PasswordHash,
	)

	result, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	result.PasswordHash = profile.PasswordHash

	return result, nil
}

// ProfileByID возвращает профиль по id. Ошибки: storage.ErrNotFound.
func (s *Storage) ProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	const op = "storage.postgres.profiles.ProfileByID"

	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	result, err := scanProfile(s.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// ProfileByUsername возвращает профиль по username. Ошибки: storage.ErrNotFound.
func (s *Storage) ProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	const op = "storage.postgres.profiles.ProfileByUsername"

	q := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`

	result, err := scanProfile(s.db.QueryRow(ctx, q, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// ProfileByEmail возвращает профиль вместе с password_hash.
func (s *Storage) ProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	const op = "storage.postgres.profiles.ProfileByEmail"

	q := `SELECT ` + profileColumns + `, password_hash FROM profiles WHERE email = $1`

	var p models.Profile
	err := s.db.QueryRow(ctx, q, email).Scan(
		&p.ID,
		&p.Username,
		&p.DisplayName,
		&p.Bio,
		&p.AvatarURL,
		&p.Email,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return &p, nil
}

func (s *Storage) UsernameExists(ctx context.Context, username string) (bool, error) {
	const op = "storage.postgres.profiles.UsernameExists"

	return s.exists(ctx, op, `SELECT EXISTS (SELECT 1 FROM profiles WHERE username = $1)`, username)
}

func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "storage.postgres.profiles.EmailExists"

	return s.exists(ctx, op, `SELECT EXISTS (SELECT 1 FROM profiles WHERE email = $1)`, email)
}

func (s *Storage) exists(ctx context.Context, op, q string, arg any) (bool, error) {
	var ok bool
	if err := s.db.QueryRow(ctx, q, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// UpdateProfile выполняет частичный апдейт по непустым указателям и сдвигает updated_at.
// Пустой апдейт ничего не пишет и возвращает текущую запись.
// Ошибки: storage.ErrNotFound, *storage.ConflictError при занятом username.
func (s *Storage) UpdateProfile(ctx context.Context, id uuid.UUID, update storage.ProfileUpdate) (*models.Profile, error) {
	const op = "storage.postgres.profiles.UpdateProfile"

	if update.Empty() {
		p, err := s.ProfileByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return p, nil
	}

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 5)
	count := 0

	add := func(column string, value *string) {
		if value == nil {
			return
		}

		count++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, count))
		args = append(args, *value)
	}

	add("username", update.Username)
	add("display_name", update.DisplayName)
	add("bio", update.Bio)
	add("avatar_url", update.AvatarURL)

	count++
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), count, profileColumns)

	result, err := scanProfile(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}
