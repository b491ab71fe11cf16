package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/stretchr/testify/require"
)

// Попадание в кэш: хранилище не вызывается.
func TestService_Profile_CacheHit(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := mustProfile("dave")
	d.cache.EXPECT().Get(gomock.Any(), p.ID).Return(p.Public(), true, nil)

	got, err := s.Profile(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, "dave", got.Username)
}

// Промах: чтение из БД и запись в кэш; ошибки кэша не фатальны.
func TestService_Profile_CacheMiss(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := mustProfile("erin")
	gomock.InOrder(
		d.cache.EXPECT().Get(gomock.Any(), p.ID).Return(nil, false, errors.New("redis down")),
		d.st.EXPECT().ProfileByID(gomock.Any(), p.ID).Return(p, nil),
		d.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down")),
	)

	got, err := s.Profile(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
}

func TestService_Profile_NotFound(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := uuid.New()
	d.cache.EXPECT().Get(gomock.Any(), id).Return(nil, false, nil)
	d.st.EXPECT().ProfileByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := s.Profile(context.Background(), id)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_ProfileByUsername(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := mustProfile("frank")
	d.st.EXPECT().ProfileByUsername(gomock.Any(), "frank").Return(p, nil)
	d.st.EXPECT().ProfileByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	got, err := s.ProfileByUsername(context.Background(), "frank")
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = s.ProfileByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

// Успешное обновление сбрасывает запись кэша.
func TestService_UpdateProfile_DropsCache(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := mustProfile("grace")
	bio := "hello there"
	up := storage.ProfileUpdate{Bio: &bio}

	updated := *p
	updated.Bio = bio
	d.st.EXPECT().UpdateProfile(gomock.Any(), p.ID, up).Return(&updated, nil)
	d.cache.EXPECT().Delete(gomock.Any(), p.ID).Return(nil)

	got, err := s.UpdateProfile(context.Background(), p.ID, up)
	require.NoError(t, err)
	require.Equal(t, bio, got.Bio)
}

func TestService_UpdateProfile_Errors(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := uuid.New()
	name := "taken"
	up := storage.ProfileUpdate{Username: &name}

	d.st.EXPECT().UpdateProfile(gomock.Any(), id, up).Return(nil, &storage.ConflictError{Field: storage.FieldUsername})
	_, err := s.UpdateProfile(context.Background(), id, up)
	require.ErrorIs(t, err, ErrUsernameTaken)

	d.st.EXPECT().UpdateProfile(gomock.Any(), id, up).Return(nil, storage.ErrNotFound)
	_, err = s.UpdateProfile(context.Background(), id, up)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_Avatars_Unavailable(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	s.SetAvatars(nil)

	_, err := s.AvatarUploadURL(context.Background(), uuid.New(), "image/png", 10)
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = s.ConfirmAvatar(context.Background(), uuid.New(), "avatars/x")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestService_AvatarUploadURL(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := uuid.New()
	d.av.EXPECT().AvatarUploadURL(gomock.Any(), id, "image/gif", int64(10)).Return(nil, storage.ErrInvalidArgument)
	d.av.EXPECT().AvatarUploadURL(gomock.Any(), id, "image/png", int64(10)).
		Return(&storage.UploadInfo{UploadURL: "http://s3/put", AvatarKey: "avatars/k.png"}, nil)

	_, err := s.AvatarUploadURL(context.Background(), id, "image/gif", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	info, err := s.AvatarUploadURL(context.Background(), id, "image/png", 10)
	require.NoError(t, err)
	require.Equal(t, "avatars/k.png", info.AvatarKey)
}

func TestService_ConfirmAvatar(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := mustProfile("heidi")
	key := "avatars/" + p.ID.String() + "/a.png"
	url := "http://cdn.local/" + key

	d.av.EXPECT().CheckAvatarUpload(gomock.Any(), p.ID, key).Return(url, nil)
	updated := *p
	updated.AvatarURL = url
	d.st.EXPECT().UpdateProfile(gomock.Any(), p.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, up storage.ProfileUpdate) (*models.Profile, error) {
			require.NotNil(t, up.AvatarURL)
			require.Equal(t, url, *up.AvatarURL)
			return &updated, nil
		})
	d.cache.EXPECT().Delete(gomock.Any(), p.ID).Return(nil)

	got, err := s.ConfirmAvatar(context.Background(), p.ID, key)
	require.NoError(t, err)
	require.Equal(t, url, got.AvatarURL)

	d.av.EXPECT().CheckAvatarUpload(gomock.Any(), p.ID, "avatars/missing").Return("", storage.ErrNotFoundAvatar)
	_, err = s.ConfirmAvatar(context.Background(), p.ID, "avatars/missing")
	require.ErrorIs(t, err, ErrNotFound)
}
