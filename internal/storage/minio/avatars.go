package minio

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/chirper/internal/storage"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// AvatarUploadURL выдаёт presigned PUT для ключа avatars/<profileID>/<uuid>.<ext>.
// Тип и размер проверяются по конфигу. Ошибки: storage.ErrInvalidArgument.
func (s *AvatarsStorage) AvatarUploadURL(ctx context.Context, profileID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage.minio.avatars.AvatarUploadURL"

	if contentLength <= 0 || contentLength > s.avatar.MaxSizeBytes {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if !slices.Contains(s.avatar.AllowedContentTypes, contentType) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	key := path.Join(keyPrefix(profileID), uuid.NewString()+extensions[contentType])

	u, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		AvatarKey: key,
		Expires:   s.s3.PresignTTL,
		RequiredHeaders: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// CheckAvatarUpload подтверждает, что объект key загружен этим профилем
// и укладывается в ограничения, и возвращает его публичный URL.
// Ошибки: storage.ErrInvalidArgument, storage.ErrNotFoundAvatar.
func (s *AvatarsStorage) CheckAvatarUpload(ctx context.Context, profileID uuid.UUID, key string) (string, error) {
	const op = "storage.minio.avatars.CheckAvatarUpload"

	if !strings.HasPrefix(key, keyPrefix(profileID)+"/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	info, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFoundAvatar)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.avatar.MaxSizeBytes {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if ct := info.ContentType; ct != "" && !slices.Contains(s.avatar.AllowedContentTypes, ct) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	return s.baseURL + "/" + key, nil
}

func keyPrefix(profileID uuid.UUID) string {
	return "avatars/" + profileID.String()
}
