// service содержит бизнес-логику chirper:
//   - auth.go — регистрация, вход, обновление access-токена;
//   - profiles.go — чтение и частичное обновление профилей (с кэшем);
//   - chirps.go — лента и записи с проверкой владельца;
//   - likes.go — переключение лайков и статистика;
//   - avatars.go — загрузка аватара через presigned URL.
//
// Service не хранит состояние запроса и безопасен для конкурентного
// использования при потокобезопасных зависимостях. Ошибки слоя storage
// переводятся в ошибки этого пакета; транспорт маппит их на HTTP-статусы.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/cache"
	"github.com/pribylovaa/chirper/internal/config"
	"github.com/pribylovaa/chirper/internal/events"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/pkg/log"
)

var (
	// ErrInvalidArgument — входные данные нарушают ограничения (HTTP 400).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCredentials — неверный email или пароль (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken — refresh-токен некорректен или истёк (HTTP 401).
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrProfileGone — профиль из валидного токена больше не существует (HTTP 401).
	ErrProfileGone = errors.New("profile no longer exists")
	// ErrUsernameTaken — username занят (HTTP 409).
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken — email занят (HTTP 409).
	ErrEmailTaken = errors.New("email already exists")
	// ErrChirpNotFound — записи нет или она чужая (HTTP 404).
	ErrChirpNotFound = errors.New("chirp not found")
	// ErrProfileNotFound — профиль не найден (HTTP 404).
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNotFound — прочие отсутствующие сущности (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrUnavailable — функциональность отключена конфигурацией (HTTP 503).
	ErrUnavailable = errors.New("unavailable")
	// ErrInternal — внутренняя ошибка (HTTP 500).
	ErrInternal = errors.New("internal")
)

// TokenManager — выпуск и проверка JWT.
type TokenManager interface {
	GenerateAccessToken(c models.AccessClaims) (string, error)
	GenerateRefreshToken(c models.RefreshClaims) (string, error)
	VerifyRefreshToken(token string) (*models.RefreshClaims, error)
}

// PasswordHasher — хеширование паролей.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// Service описывает бизнес-логику chirper.
type Service struct {
	storage storage.Storage
	tokens  TokenManager
	hasher  PasswordHasher
	limits  config.LimitsConfig

	cache   cache.ProfileCache
	events  events.Publisher
	avatars storage.Avatars // nil, если S3 не сконфигурирован
}

// New создаёт Service. Кэш и публикация событий по умолчанию отключены.
func New(st storage.Storage, tokens TokenManager, hasher PasswordHasher, limits config.LimitsConfig) *Service {
	if limits.Default <= 0 {
		limits.Default = 20
	}

	if limits.Max <= 0 {
		limits.Max = 100
	}

	return &Service{
		storage: st,
		tokens:  tokens,
		hasher:  hasher,
		limits:  limits,
		cache:   cache.Noop{},
		events:  events.Noop{},
	}
}

// SetProfileCache подключает кэш публичных профилей.
func (s *Service) SetProfileCache(c cache.ProfileCache) {
	if c != nil {
		s.cache = c
	}
}

// SetPublisher подключает публикацию доменных событий.
func (s *Service) SetPublisher(p events.Publisher) {
	if p != nil {
		s.events = p
	}
}

// SetAvatars подключает хранилище аватаров.
func (s *Service) SetAvatars(a storage.Avatars) {
	s.avatars = a
}

// Ping проверяет готовность хранилища.
func (s *Service) Ping(ctx context.Context) error {
	const op = "service.Ping"

	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}

	return nil
}

// Page нормализует окно выборки по лимитам конфигурации.
func (s *Service) Page(limit, offset int) storage.Page {
	if limit <= 0 {
		limit = s.limits.Default
	}

	if limit > s.limits.Max {
		limit = s.limits.Max
	}

	if offset < 0 {
		offset = 0
	}

	return storage.Page{Limit: limit, Offset: offset}
}

// internalError оборачивает неожиданную ошибку хранилища в ErrInternal.
// Отмена и дедлайн контекста пробрасываются как есть.
func internalError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
}

// publish отправляет событие; сбой публикации только логируется.
func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		log.From(ctx).Warn("event_publish_failed",
			slog.String("type", e.Type),
			slog.String("err", err.Error()),
		)
	}
}

func newID() (uuid.UUID, error) {
	return uuid.NewV7()
}
