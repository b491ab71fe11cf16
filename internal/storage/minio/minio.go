// minio реализует storage.Avatars поверх MinIO/S3:
//   - minio.go — конструктор клиента (нормализация endpoint, проверка бакета);
//   - avatars.go — presigned PUT и подтверждение загрузки.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/chirper/internal/config"
	"github.com/pribylovaa/chirper/internal/storage"
)

// AvatarsStorage — адаптер MinIO для аватаров профилей.
type AvatarsStorage struct {
	s3      config.S3Config
	avatar  config.AvatarConfig
	client  *mclient.Client
	baseURL string // публичный префикс объектов бакета
}

// New создаёт клиент MinIO и проверяет, что бакет существует.
// Endpoint принимается как со схемой (http/https), так и без неё.
func New(ctx context.Context, s3 config.S3Config, avatar config.AvatarConfig) (*AvatarsStorage, error) {
	const op = "storage.minio.New"

	endpoint := s3.Endpoint
	secure := false

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.AccessKey, s3.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	base := strings.TrimRight(s3.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		base = scheme + "://" + endpoint + "/" + s3.Bucket
	}

	return &AvatarsStorage{s3: s3, avatar: avatar, client: client, baseURL: base}, nil
}

var _ storage.Avatars = (*AvatarsStorage)(nil)
