package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFoundAvatar — объект отсутствует в бакете.
	ErrNotFoundAvatar = errors.New("avatar not found")
	// ErrInvalidArgument — нарушены ограничения загрузки (тип, размер, ключ).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UploadInfo — данные для presigned PUT.
// RequiredHeaders клиент обязан передать при загрузке.
type UploadInfo struct {
	UploadURL       string
	AvatarKey       string
	Expires         time.Duration
	RequiredHeaders map[string]string
}

// Avatars — выдача presigned URL и подтверждение загрузки.
type Avatars interface {
	AvatarUploadURL(ctx context.Context, profileID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckAvatarUpload проверяет объект по key и возвращает его публичный URL.
	CheckAvatarUpload(ctx context.Context, profileID uuid.UUID, key string) (string, error)
}
