package http

// Тесты HTTP-слоя chirper: роутер + мидлвары + обработчики поверх MockService.
//
//  Проверяем:
//  - форму успешных ответов и коды статусов по таблице маршрутов;
//  - строгий JSON, валидацию и 415 для не-JSON тел;
//  - RequireAuth/OptionalAuth на реальных JWT;
//  - единый конверт ошибок и маппинг сервисных ошибок.
//
// Запуск:
//   go test ./internal/http -v -race -count=1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/auth"
	"github.com/pribylovaa/chirper/internal/config"
	"github.com/pribylovaa/chirper/internal/http/dto"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/service"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/mocks"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	srv    http.Handler
	svc    *mocks.MockService
	tokens *auth.Manager
}

type errBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Details   []struct {
			Path string `json:"path"`
			Code string `json:"code"`
		} `json:"details"`
	} `json:"error"`
}

func newTestEnv(t *testing.T) (*testEnv, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	tokens := auth.NewManager(config.AuthConfig{
		AccessSecret:    "router-access",
		RefreshSecret:   "router-refresh",
		AccessTTL:       time.Hour,
		RefreshTTL:      24 * time.Hour,
		Issuer:          "chirper",
		AccessAudience:  "chirper-users",
		RefreshAudience: "chirper-refresh",
	})
	svc := mocks.NewMockService(ctrl)

	srv := NewRouter(svc, Options{
		BasePath:       "/api",
		Timeout:        5 * time.Second,
		Verifier:       tokens,
		Limits:         config.LimitsConfig{Default: 20, Max: 100},
		AllowedOrigins: []string{"https://chirper.example"},
		AllowLocalhost: true,
		AuthRateLimit:  1000,
		AuthRateWindow: time.Minute,
	})

	return &testEnv{srv: srv, svc: svc, tokens: tokens}, ctrl
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr *bytes.Reader
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(b)
			require.NoError(t, err)
		}
		rdr = bytes.NewReader(raw)
	}

	var req *http.Request
	if rdr != nil {
		req = httptest.NewRequest(method, path, rdr)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.srv.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) login(t *testing.T, p *models.Profile) string {
	t.Helper()
	tok, err := e.tokens.GenerateAccessToken(models.AccessClaims{ProfileID: p.ID, Username: p.Username, Email: p.Email})
	require.NoError(t, err)
	return tok
}

func decodeErr(t *testing.T, rr *httptest.ResponseRecorder) errBody {
	t.Helper()
	var b errBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b), rr.Body.String())
	return b
}

func testProfile(name string) *models.Profile {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Profile{
		ID:          uuid.Must(uuid.NewV7()),
		Username:    name,
		DisplayName: strings.ToUpper(name[:1]) + name[1:],
		Email:       name + "@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testChirp(owner *models.Profile, content string) *models.ChirpView {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.ChirpView{
		Chirp:  models.Chirp{ID: uuid.Must(uuid.NewV7()), ProfileID: owner.ID, Content: content, CreatedAt: now, UpdatedAt: now},
		Author: models.ChirpAuthor{ID: owner.ID, Username: owner.Username, DisplayName: owner.DisplayName},
	}
}

func validRegister() map[string]any {
	return map[string]any{
		"username":     "alice",
		"display_name": "Alice",
		"email":        "alice@example.com",
		"password":     "correct-horse",
	}
}

// Регистрация: 201, access-токен проверяется и несёт id созданного профиля.
func TestRouter_Register_Created(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	p := testProfile("alice")
	env.svc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, in models.RegisterInput) (*models.Session, error) {
			require.Equal(t, "alice", in.Username)
			require.Equal(t, "correct-horse", in.Password)
			access := env.login(t, p)
			refresh, err := env.tokens.GenerateRefreshToken(models.RefreshClaims{ProfileID: p.ID})
			require.NoError(t, err)
			return &models.Session{Tokens: models.TokenPair{AccessToken: access, RefreshToken: refresh}, Profile: p}, nil
		})

	rr := env.do(t, http.MethodPost, "/api/auth/register", "", validRegister())
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "Account created successfully", out.Message)
	require.Equal(t, p.ID, out.Profile.ID)
	require.Equal(t, "alice@example.com", out.Profile.Email)

	claims, err := env.tokens.VerifyAccessToken(out.AccessToken)
	require.NoError(t, err)
	require.Equal(t, out.Profile.ID, claims.ProfileID)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestRouter_Register_ValidationFailed(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	body := validRegister()
	body["username"] = "no spaces allowed"
	body["password"] = "short"

	rr := env.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	b := decodeErr(t, rr)
	require.Equal(t, "validation_failed", b.Error.Code)
	paths := []string{}
	for _, d := range b.Error.Details {
		paths = append(paths, d.Path)
	}
	require.ElementsMatch(t, []string{"username", "password"}, paths)
	require.NotEmpty(t, b.Error.RequestID)
}

func TestRouter_Register_StrictJSON(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	body := validRegister()
	body["is_admin"] = true

	rr := env.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_json", decodeErr(t, rr).Error.Code)

	rr = env.do(t, http.MethodPost, "/api/auth/register", "", `{"username":`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_json", decodeErr(t, rr).Error.Code)
}

func TestRouter_UnsupportedMediaType(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("email=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	env.srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	require.Equal(t, "unsupported_media_type", decodeErr(t, rr).Error.Code)
}

func TestRouter_Register_Conflict(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	env.svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrEmailTaken)

	rr := env.do(t, http.MethodPost, "/api/auth/register", "", validRegister())
	require.Equal(t, http.StatusConflict, rr.Code)

	b := decodeErr(t, rr)
	require.Equal(t, "email_taken", b.Error.Code)
	require.Equal(t, "Email already exists", b.Error.Message)
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	env.svc.EXPECT().Login(gomock.Any(), "bob@example.com", "wrong-password").Return(nil, service.ErrInvalidCredentials)

	rr := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "bob@example.com", "password": "wrong-password"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	b := decodeErr(t, rr)
	require.Equal(t, "invalid_credentials", b.Error.Code)
	require.Equal(t, "Email or password is incorrect", b.Error.Message)
}

func TestRouter_Refresh(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	gomock.InOrder(
		env.svc.EXPECT().Refresh(gomock.Any(), "r1").Return("new-access", nil),
		env.svc.EXPECT().Refresh(gomock.Any(), "r2").Return("", service.ErrProfileGone),
		env.svc.EXPECT().Refresh(gomock.Any(), "r3").Return("", service.ErrInvalidRefreshToken),
	)

	rr := env.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh_token": "r1"})
	require.Equal(t, http.StatusOK, rr.Code)
	var out dto.RefreshResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "new-access", out.AccessToken)

	rr = env.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh_token": "r2"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	b := decodeErr(t, rr)
	require.Equal(t, "profile_not_found", b.Error.Code)
	require.Equal(t, "Associated profile no longer exists", b.Error.Message)

	rr = env.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh_token": "r3"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_refresh_token", decodeErr(t, rr).Error.Code)
}

// Анонимная лента: viewer = uuid.Nil, пагинация по умолчанию.
func TestRouter_Feed_AnonymousAndAuthenticated(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("carol")
	c := testChirp(me, "hello")

	env.svc.EXPECT().Feed(gomock.Any(), uuid.Nil, storage.Page{Limit: 20, Offset: 0}).
		Return([]models.ChirpView{*c}, nil)
	env.svc.EXPECT().Feed(gomock.Any(), me.ID, storage.Page{Limit: 5, Offset: 10}).
		Return([]models.ChirpView{}, nil)

	rr := env.do(t, http.MethodGet, "/api/chirps", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var out dto.ChirpListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Chirps, 1)
	require.Equal(t, "carol", out.Chirps[0].Profile.Username)
	require.Equal(t, dto.Pagination{Limit: 20, Offset: 0, Count: 1}, out.Pagination)

	// С токеном viewer берётся из claims.
	rr = env.do(t, http.MethodGet, "/api/chirps?limit=5&offset=10", env.login(t, me), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.NotNil(t, out.Chirps)
	require.Empty(t, out.Chirps)
}

func TestRouter_Feed_InvalidPagination(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	for _, q := range []string{"limit=0", "limit=101", "limit=abc", "offset=-1"} {
		rr := env.do(t, http.MethodGet, "/api/chirps?"+q, "", nil)
		require.Equal(t, http.StatusBadRequest, rr.Code, q)
		require.Equal(t, "validation_failed", decodeErr(t, rr).Error.Code, q)
	}
}

func TestRouter_CreateChirp(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("dave")
	c := testChirp(me, "first!")

	// Без токена.
	rr := env.do(t, http.MethodPost, "/api/chirps", "", map[string]string{"content": "first!"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	b := decodeErr(t, rr)
	require.Equal(t, "authentication_required", b.Error.Code)
	require.Equal(t, "No token provided", b.Error.Message)

	// Испорченный токен.
	rr = env.do(t, http.MethodPost, "/api/chirps", "not-a-jwt", map[string]string{"content": "first!"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_token", decodeErr(t, rr).Error.Code)

	// Слишком длинный текст отсекается до сервиса.
	rr = env.do(t, http.MethodPost, "/api/chirps", env.login(t, me), map[string]string{"content": strings.Repeat("x", 142)})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "validation_failed", decodeErr(t, rr).Error.Code)

	env.svc.EXPECT().CreateChirp(gomock.Any(), me.ID, "first!").Return(c, nil)
	rr = env.do(t, http.MethodPost, "/api/chirps", env.login(t, me), map[string]string{"content": "first!"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var out dto.ChirpResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "Chirp created successfully", out.Message)
	require.Equal(t, c.ID, out.Chirp.ID)
	require.Zero(t, out.Chirp.LikeCount)
	require.False(t, out.Chirp.IsLiked)
}

// Изменение чужой записи неотличимо от отсутствующей.
func TestRouter_UpdateDeleteChirp_NotOwner(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	intruder := testProfile("eve")
	id := uuid.New()

	env.svc.EXPECT().UpdateChirp(gomock.Any(), id, intruder.ID, "pwned").Return(nil, service.ErrChirpNotFound)
	env.svc.EXPECT().DeleteChirp(gomock.Any(), id, intruder.ID).Return(service.ErrChirpNotFound)

	rr := env.do(t, http.MethodPut, "/api/chirps/"+id.String(), env.login(t, intruder), map[string]string{"content": "pwned"})
	require.Equal(t, http.StatusNotFound, rr.Code)
	b := decodeErr(t, rr)
	require.Equal(t, "chirp_not_found", b.Error.Code)
	require.Equal(t, "The chirp does not exist or you do not have permission to modify it", b.Error.Message)

	rr = env.do(t, http.MethodDelete, "/api/chirps/"+id.String(), env.login(t, intruder), nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "chirp_not_found", decodeErr(t, rr).Error.Code)
}

func TestRouter_DeleteChirp_OK(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("frank")
	id := uuid.New()
	env.svc.EXPECT().DeleteChirp(gomock.Any(), id, me.ID).Return(nil)

	rr := env.do(t, http.MethodDelete, "/api/chirps/"+id.String(), env.login(t, me), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Chirp deleted successfully"}`, rr.Body.String())
}

func TestRouter_GetChirp_BadID(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	rr := env.do(t, http.MethodGet, "/api/chirps/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	b := decodeErr(t, rr)
	require.Equal(t, "validation_failed", b.Error.Code)
	require.Equal(t, "id", b.Error.Details[0].Path)
}

func TestRouter_ToggleLike(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("grace")
	chirpID := uuid.New()

	gomock.InOrder(
		env.svc.EXPECT().ToggleLike(gomock.Any(), me.ID, chirpID).
			Return(&models.LikeStats{ChirpID: chirpID, LikeCount: 6, IsLiked: true}, nil),
		env.svc.EXPECT().ToggleLike(gomock.Any(), me.ID, chirpID).
			Return(&models.LikeStats{ChirpID: chirpID, LikeCount: 5, IsLiked: false}, nil),
	)

	rr := env.do(t, http.MethodPost, "/api/likes", env.login(t, me), map[string]string{"chirp_id": chirpID.String()})
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Chirp liked successfully","like_count":6,"is_liked":true}`, rr.Body.String())

	rr = env.do(t, http.MethodDelete, "/api/likes", env.login(t, me), map[string]string{"chirp_id": chirpID.String()})
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Like removed successfully","like_count":5,"is_liked":false}`, rr.Body.String())
}

func TestRouter_ToggleLike_UnknownChirp(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("heidi")
	env.svc.EXPECT().ToggleLike(gomock.Any(), me.ID, gomock.Any()).Return(nil, service.ErrChirpNotFound)

	rr := env.do(t, http.MethodPost, "/api/likes", env.login(t, me), map[string]string{"chirp_id": uuid.NewString()})
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/likes", env.login(t, me), map[string]string{"chirp_id": "nope"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_LikeStats_BothPaths(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("ivan")
	chirpID := uuid.New()

	env.svc.EXPECT().LikeStats(gomock.Any(), chirpID, me.ID).
		Return(&models.LikeStats{ChirpID: chirpID, LikeCount: 3, IsLiked: true}, nil)
	env.svc.EXPECT().LikeStats(gomock.Any(), chirpID, uuid.Nil).
		Return(&models.LikeStats{ChirpID: chirpID, LikeCount: 3}, nil)

	rr := env.do(t, http.MethodGet, "/api/chirps/"+chirpID.String()+"/likes", env.login(t, me), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"chirp_id":"`+chirpID.String()+`","like_count":3,"is_liked":true}`, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/api/likes/chirp/"+chirpID.String(), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"chirp_id":"`+chirpID.String()+`","like_count":3,"is_liked":false}`, rr.Body.String())
}

func TestRouter_Likers(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	chirpID := uuid.New()
	env.svc.EXPECT().ChirpLikers(gomock.Any(), chirpID, storage.Page{Limit: 2, Offset: 0}).
		Return([]models.LikeWithProfile{{Like: models.Like{ID: uuid.New(), ChirpID: chirpID}, Username: "judy"}}, nil)

	rr := env.do(t, http.MethodGet, "/api/likes/chirp/"+chirpID.String()+"/users?limit=2", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var out dto.LikeListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Likes, 1)
	require.Equal(t, "judy", out.Likes[0].Username)
	require.Equal(t, 1, out.Pagination.Count)
}

func TestRouter_Profiles(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("kate")

	env.svc.EXPECT().MyProfile(gomock.Any(), me.ID).Return(me, nil)
	env.svc.EXPECT().Profile(gomock.Any(), me.ID).Return(me.Public(), nil)
	env.svc.EXPECT().ProfileByUsername(gomock.Any(), "ghost").Return(nil, service.ErrProfileNotFound)

	rr := env.do(t, http.MethodGet, "/api/profiles/me", env.login(t, me), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var mine dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mine))
	require.Equal(t, "kate@example.com", mine.Profile.Email)

	// Публичный профиль не раскрывает email.
	rr = env.do(t, http.MethodGet, "/api/profiles/"+me.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "email")

	rr = env.do(t, http.MethodGet, "/api/profiles/username/ghost", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "profile_not_found", decodeErr(t, rr).Error.Code)
}

func TestRouter_UpdateProfile(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("leo")
	updated := *me
	updated.Bio = "new bio"

	env.svc.EXPECT().UpdateProfile(gomock.Any(), me.ID, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ uuid.UUID, up storage.ProfileUpdate) (*models.Profile, error) {
			require.NotNil(t, up.Bio)
			require.Nil(t, up.Username)
			require.Nil(t, up.DisplayName)
			return &updated, nil
		})

	rr := env.do(t, http.MethodPut, "/api/profiles/me", env.login(t, me), map[string]string{"bio": "new bio"})
	require.Equal(t, http.StatusOK, rr.Code)

	var out dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "Profile updated successfully", out.Message)
	require.Equal(t, "new bio", out.Profile.Bio)

	rr = env.do(t, http.MethodPut, "/api/profiles/me", env.login(t, me), map[string]string{"display_name": ""})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_AvatarPresign_Unavailable(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	me := testProfile("mia")
	env.svc.EXPECT().AvatarUploadURL(gomock.Any(), me.ID, "image/png", int64(1024)).Return(nil, service.ErrUnavailable)

	rr := env.do(t, http.MethodPost, "/api/profiles/me/avatar/presign", env.login(t, me),
		map[string]any{"content_type": "image/png", "content_length": 1024})
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Equal(t, "unavailable", decodeErr(t, rr).Error.Code)
}

func TestRouter_HealthAndNotFound(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	rr := env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var h dto.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h))
	require.Equal(t, "ok", h.Status)
	require.False(t, h.Timestamp.IsZero())

	rr = env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h))
	require.Equal(t, "ok", h.Status)

	rr = env.do(t, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not_found", decodeErr(t, rr).Error.Code)
}

func TestRouter_CORS(t *testing.T) {
	env, ctrl := newTestEnv(t)
	defer ctrl.Finish()

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/chirps", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		env.srv.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, "http://localhost:5173", preflight("http://localhost:5173").Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "https://chirper.example", preflight("https://chirper.example").Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, preflight("https://evil.example").Header().Get("Access-Control-Allow-Origin"))
}
