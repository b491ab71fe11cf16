package service

// Тесты сервисного слоя chirper (internal/service).
//
//  Проверяем:
//  - маппинг ошибок storage -> service;
//  - выдачу и проверку токенов при регистрации/входе/refresh;
//  - проверку владельца при изменении записей;
//  - read-through кэш профилей и его сброс;
//  - публикацию событий и то, что её сбой не ломает операцию.
//
// Запуск:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/auth"
	"github.com/pribylovaa/chirper/internal/config"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/mocks"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	st     *mocks.MockStorage
	cache  *mocks.MockProfileCache
	pub    *mocks.MockPublisher
	av     *mocks.MockAvatars
	tokens *auth.Manager
}

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:    "svc-access-secret",
		RefreshSecret:   "svc-refresh-secret",
		AccessTTL:       time.Hour,
		RefreshTTL:      24 * time.Hour,
		Issuer:          "chirper",
		AccessAudience:  "chirper-users",
		RefreshAudience: "chirper-refresh",
	}
}

func newServiceWithMocks(t *testing.T) (*Service, *testDeps, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		st:     mocks.NewMockStorage(ctrl),
		cache:  mocks.NewMockProfileCache(ctrl),
		pub:    mocks.NewMockPublisher(ctrl),
		av:     mocks.NewMockAvatars(ctrl),
		tokens: auth.NewManager(testAuthCfg()),
	}

	hasher := auth.NewHasher(auth.PasswordParams{MemoryKiB: 1024, Iterations: 1, Parallelism: 1})
	s := New(d.st, d.tokens, hasher, config.LimitsConfig{Default: 20, Max: 100})
	s.SetProfileCache(d.cache)
	s.SetPublisher(d.pub)
	s.SetAvatars(d.av)

	return s, d, ctrl
}

func mustProfile(name string) *models.Profile {
	now := time.Now().UTC()
	return &models.Profile{
		ID:          uuid.Must(uuid.NewV7()),
		Username:    name,
		DisplayName: "Display " + name,
		Email:       name + "@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestService_Page_Clamp(t *testing.T) {
	s := New(nil, nil, nil, config.LimitsConfig{})

	require.Equal(t, storage.Page{Limit: 20, Offset: 0}, s.Page(0, -5))
	require.Equal(t, storage.Page{Limit: 100, Offset: 40}, s.Page(1000, 40))
	require.Equal(t, storage.Page{Limit: 7, Offset: 3}, s.Page(7, 3))
}

func TestService_Ping_Unavailable(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	d.st.EXPECT().Ping(gomock.Any()).Return(errors.New("conn refused"))

	err := s.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestService_Ping_OK(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	d.st.EXPECT().Ping(gomock.Any()).Return(nil)

	require.NoError(t, s.Ping(context.Background()))
}

func TestInternalError_PassesContextErrors(t *testing.T) {
	err := internalError("op", context.DeadlineExceeded)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, ErrInternal)

	err = internalError("op", errors.New("boom"))
	require.ErrorIs(t, err, ErrInternal)
}
