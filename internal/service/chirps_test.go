package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/events"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/stretchr/testify/require"
)

func chirpView(id, owner uuid.UUID, content string) *models.ChirpView {
	return &models.ChirpView{
		Chirp: models.Chirp{
			ID:        id,
			ProfileID: owner,
			Content:   content,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
		Author: models.ChirpAuthor{ID: owner, Username: "owner"},
	}
}

// Лимит и смещение нормализуются до обращения к хранилищу.
func TestService_Feed_ClampsPage(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	viewer := uuid.New()
	d.st.EXPECT().Feed(gomock.Any(), viewer, storage.Page{Limit: 100, Offset: 0}).
		Return([]models.ChirpView{}, nil)

	out, err := s.Feed(context.Background(), viewer, storage.Page{Limit: 500, Offset: -1})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestService_Chirp_NotFound(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := uuid.New()
	d.st.EXPECT().ChirpByID(gomock.Any(), id, uuid.Nil).Return(nil, storage.ErrNotFound)

	_, err := s.Chirp(context.Background(), id, uuid.Nil)
	require.ErrorIs(t, err, ErrChirpNotFound)
}

func TestService_CreateChirp_OK(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	owner := uuid.New()
	var createdID uuid.UUID

	d.st.EXPECT().CreateChirp(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Chirp) (*models.Chirp, error) {
			require.Equal(t, owner, c.ProfileID)
			require.Equal(t, "hello", c.Content)
			createdID = c.ID
			out := *c
			return &out, nil
		})
	d.st.EXPECT().ChirpByID(gomock.Any(), gomock.Any(), owner).DoAndReturn(
		func(_ context.Context, id, viewer uuid.UUID) (*models.ChirpView, error) {
			require.Equal(t, createdID, id)
			return chirpView(id, owner, "hello"), nil
		})
	d.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e events.Event) error {
			require.Equal(t, events.ChirpCreated, e.Type)
			require.Equal(t, createdID, *e.ChirpID)
			return nil
		})

	v, err := s.CreateChirp(context.Background(), owner, "hello")
	require.NoError(t, err)
	require.Equal(t, createdID, v.ID)
	require.Zero(t, v.LikeCount)
	require.False(t, v.IsLiked)
}

// Длина считается в символах, а не в байтах.
func TestService_CreateChirp_ContentLength(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.CreateChirp(context.Background(), uuid.New(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateChirp(context.Background(), uuid.New(), strings.Repeat("a", MaxChirpLength+1))
	require.ErrorIs(t, err, ErrInvalidArgument)

	owner := uuid.New()
	content := strings.Repeat("ж", MaxChirpLength)
	d.st.EXPECT().CreateChirp(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Chirp) (*models.Chirp, error) { return c, nil })
	d.st.EXPECT().ChirpByID(gomock.Any(), gomock.Any(), owner).DoAndReturn(
		func(_ context.Context, id, _ uuid.UUID) (*models.ChirpView, error) {
			return chirpView(id, owner, content), nil
		})
	d.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err = s.CreateChirp(context.Background(), owner, content)
	require.NoError(t, err)
}

// Сбой публикации события не ломает операцию.
func TestService_CreateChirp_PublishFailureIgnored(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	owner := uuid.New()
	d.st.EXPECT().CreateChirp(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Chirp) (*models.Chirp, error) { return c, nil })
	d.st.EXPECT().ChirpByID(gomock.Any(), gomock.Any(), owner).DoAndReturn(
		func(_ context.Context, id, _ uuid.UUID) (*models.ChirpView, error) {
			return chirpView(id, owner, "x"), nil
		})
	d.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	_, err := s.CreateChirp(context.Background(), owner, "x")
	require.NoError(t, err)
}

func TestService_CreateChirp_OwnerMissing(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	d.st.EXPECT().CreateChirp(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidReference)

	_, err := s.CreateChirp(context.Background(), uuid.New(), "hi")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

// Чужая запись неотличима от отсутствующей.
func TestService_UpdateChirp_NotOwner(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id, intruder := uuid.New(), uuid.New()
	d.st.EXPECT().UpdateChirp(gomock.Any(), id, intruder, "mine now").Return(nil, storage.ErrNotFound)

	_, err := s.UpdateChirp(context.Background(), id, intruder, "mine now")
	require.ErrorIs(t, err, ErrChirpNotFound)
}

func TestService_UpdateChirp_OK(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id, owner := uuid.New(), uuid.New()
	d.st.EXPECT().UpdateChirp(gomock.Any(), id, owner, "edited").
		Return(&models.Chirp{ID: id, ProfileID: owner, Content: "edited"}, nil)
	d.st.EXPECT().ChirpByID(gomock.Any(), id, owner).Return(chirpView(id, owner, "edited"), nil)
	d.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	v, err := s.UpdateChirp(context.Background(), id, owner, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", v.Content)
}

func TestService_DeleteChirp(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id, owner := uuid.New(), uuid.New()
	d.st.EXPECT().DeleteChirp(gomock.Any(), id, owner).Return(nil)
	d.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, s.DeleteChirp(context.Background(), id, owner))

	d.st.EXPECT().DeleteChirp(gomock.Any(), id, owner).Return(storage.ErrNotFound)
	require.ErrorIs(t, s.DeleteChirp(context.Background(), id, owner), ErrChirpNotFound)

	d.st.EXPECT().DeleteChirp(gomock.Any(), id, owner).Return(errors.New("db down"))
	require.ErrorIs(t, s.DeleteChirp(context.Background(), id, owner), ErrInternal)
}

func TestService_ToggleLike(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	profileID, chirpID := uuid.New(), uuid.New()

	gomock.InOrder(
		d.st.EXPECT().ToggleLike(gomock.Any(), profileID, chirpID).
			Return(&models.LikeStats{ChirpID: chirpID, LikeCount: 6, IsLiked: true}, nil),
		d.st.EXPECT().ToggleLike(gomock.Any(), profileID, chirpID).
			Return(&models.LikeStats{ChirpID: chirpID, LikeCount: 5, IsLiked: false}, nil),
	)
	d.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e events.Event) error {
			require.Equal(t, events.LikeToggled, e.Type)
			require.NotNil(t, e.LikeCount)
			require.NotNil(t, e.IsLiked)
			return nil
		}).Times(2)

	stats, err := s.ToggleLike(context.Background(), profileID, chirpID)
	require.NoError(t, err)
	require.EqualValues(t, 6, stats.LikeCount)
	require.True(t, stats.IsLiked)

	stats, err = s.ToggleLike(context.Background(), profileID, chirpID)
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.LikeCount)
	require.False(t, stats.IsLiked)
}

func TestService_ToggleLike_ChirpNotFound(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	d.st.EXPECT().ToggleLike(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	_, err := s.ToggleLike(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrChirpNotFound)
}

func TestService_LikeLists(t *testing.T) {
	s, d, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	chirpID, profileID := uuid.New(), uuid.New()
	d.st.EXPECT().LikesByChirp(gomock.Any(), chirpID, storage.Page{Limit: 20, Offset: 0}).
		Return([]models.LikeWithProfile{{Username: "alice"}}, nil)
	d.st.EXPECT().LikesByProfile(gomock.Any(), profileID, storage.Page{Limit: 5, Offset: 10}).
		Return(nil, context.Canceled)

	likers, err := s.ChirpLikers(context.Background(), chirpID, storage.Page{})
	require.NoError(t, err)
	require.Len(t, likers, 1)

	_, err = s.ProfileLikes(context.Background(), profileID, storage.Page{Limit: 5, Offset: 10})
	require.ErrorIs(t, err, context.Canceled)
}
