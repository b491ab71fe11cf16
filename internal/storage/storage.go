// storage содержит контракты слоя хранилищ chirper.
//
// Реализация на PostgreSQL — пакет storage/postgres, загрузка аватаров в
// S3/MinIO — пакет storage/minio (контракт в avatars.go).
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/models"
)

var (
	// ErrNotFound — запись не найдена, либо не принадлежит владельцу.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidReference — ссылка на несуществующую запись (FK).
	ErrInvalidReference = errors.New("invalid reference")
)

// Поля профиля с ограничением уникальности.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// ConflictError уточняет ErrAlreadyExists: какое уникальное поле занято.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return ErrAlreadyExists.Error()
	}

	return e.Field + " " + ErrAlreadyExists.Error()
}

// Is позволяет проверять errors.Is(err, ErrAlreadyExists).
func (e *ConflictError) Is(target error) bool { return target == ErrAlreadyExists }

// ConflictField возвращает занятое поле, если err — ConflictError.
func ConflictField(err error) string {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Field
	}

	return ""
}

// Page — окно выборки.
type Page struct {
	Limit  int
	Offset int
}

// ProfileUpdate — частичный апдейт профиля.
// Обновляются только непустые указатели.
type ProfileUpdate struct {
	Username    *string
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// Empty сообщает, что апдейт ничего не меняет.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.DisplayName == nil && u.Bio == nil && u.AvatarURL == nil
}

// Profiles — репозиторий профилей.
type Profiles interface {
	// CreateProfile создаёт профиль. Конфликт username/email — *ConflictError.
	CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
	// ProfileByEmail возвращает профиль вместе с хешем пароля.
	ProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// UpdateProfile обновляет поля из update. Пустой апдейт возвращает текущую запись.
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*models.Profile, error)
}

// Chirps — репозиторий записей. viewer == uuid.Nil означает анонимного зрителя.
type Chirps interface {
	CreateChirp(ctx context.Context, chirp *models.Chirp) (*models.Chirp, error)
	ChirpByID(ctx context.Context, id, viewer uuid.UUID) (*models.ChirpView, error)
	// Feed возвращает ленту, новые первыми.
	Feed(ctx context.Context, viewer uuid.UUID, page Page) ([]models.ChirpView, error)
	ChirpsByProfile(ctx context.Context, profileID, viewer uuid.UUID, page Page) ([]models.ChirpView, error)
	// UpdateChirp и DeleteChirp фильтруют по id и владельцу;
	// чужая и отсутствующая запись одинаково дают ErrNotFound.
	UpdateChirp(ctx context.Context, id, owner uuid.UUID, content string) (*models.Chirp, error)
	DeleteChirp(ctx context.Context, id, owner uuid.UUID) error
}

// Likes — репозиторий лайков.
type Likes interface {
	// ToggleLike снимает лайк, если он есть, иначе ставит. Возвращает итоговую статистику.
	ToggleLike(ctx context.Context, profileID, chirpID uuid.UUID) (*models.LikeStats, error)
	LikeStats(ctx context.Context, chirpID, viewer uuid.UUID) (*models.LikeStats, error)
	LikesByChirp(ctx context.Context, chirpID uuid.UUID, page Page) ([]models.LikeWithProfile, error)
	LikesByProfile(ctx context.Context, profileID uuid.UUID, page Page) ([]models.Like, error)
}

// Storage — верхнеуровневый контракт хранилища.
type Storage interface {
	Profiles
	Chirps
	Likes
	// WithTx выполняет fn в транзакции; tx привязан к ней.
	// Ошибка fn откатывает транзакцию.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error
	Ping(ctx context.Context) error
	Close()
}
