package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Register создаёт аккаунт и сохраняет выданные токены.
func (c *Client) Register(ctx context.Context, in RegisterParams) (*AuthResult, error) {
	const op = "client.api.Register"

	var out AuthResult
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: in, out: &out}); err != nil {
		return nil, err
	}

	if err := c.setTokens(ctx, Tokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Login входит по email/паролю и сохраняет выданные токены.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "client.api.Login"

	body := map[string]string{"email": email, "password": password}

	var out AuthResult
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: body, out: &out}); err != nil {
		return nil, err
	}

	if err := c.setTokens(ctx, Tokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Logout забывает токены локально; отзыва токенов на сервере нет.
func (c *Client) Logout(ctx context.Context) error {
	return c.clearTokens(ctx)
}

// Refresh принудительно обновляет access-токен.
func (c *Client) Refresh(ctx context.Context) error {
	if c.Tokens().RefreshToken == "" {
		return ErrNotAuthenticated
	}

	_, err := c.refresh(ctx, c.Tokens().AccessToken)
	return err
}

func (c *Client) MyProfile(ctx context.Context) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/profiles/me", out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Profile, nil
}

func (c *Client) Profile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/profiles/" + id.String(), out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Profile, nil
}

func (c *Client) ProfileByUsername(ctx context.Context, username string) (*Profile, error) {
	var out profileEnvelope
	path := "/profiles/username/" + url.PathEscape(username)
	if err := c.do(ctx, request{method: http.MethodGet, path: path, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, request{method: http.MethodPut, path: "/profiles/me", body: in, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Profile, nil
}

// AvatarUploadURL запрашивает presigned PUT для загрузки аватара.
func (c *Client) AvatarUploadURL(ctx context.Context, contentType string, contentLength int64) (*AvatarUpload, error) {
	body := map[string]any{"content_type": contentType, "content_length": contentLength}

	var out AvatarUpload
	if err := c.do(ctx, request{method: http.MethodPost, path: "/profiles/me/avatar/presign", body: body, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

// ConfirmAvatar подтверждает загруженный объект и возвращает обновлённый профиль.
func (c *Client) ConfirmAvatar(ctx context.Context, key string) (*Profile, error) {
	body := map[string]string{"avatar_key": key}

	var out profileEnvelope
	if err := c.do(ctx, request{method: http.MethodPost, path: "/profiles/me/avatar/confirm", body: body, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Profile, nil
}

func (c *Client) Feed(ctx context.Context, page Page) (*ChirpList, error) {
	var out ChirpList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/chirps", query: page.values(), out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Chirp(ctx context.Context, id uuid.UUID) (*Chirp, error) {
	var out chirpEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/chirps/" + id.String(), out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Chirp, nil
}

func (c *Client) ChirpsByProfile(ctx context.Context, profileID uuid.UUID, page Page) (*ChirpList, error) {
	var out ChirpList
	path := "/chirps/profile/" + profileID.String()
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: page.values(), out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateChirp(ctx context.Context, content string) (*Chirp, error) {
	body := map[string]string{"content": content}

	var out chirpEnvelope
	if err := c.do(ctx, request{method: http.MethodPost, path: "/chirps", body: body, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Chirp, nil
}

func (c *Client) UpdateChirp(ctx context.Context, id uuid.UUID, content string) (*Chirp, error) {
	body := map[string]string{"content": content}

	var out chirpEnvelope
	if err := c.do(ctx, request{method: http.MethodPut, path: "/chirps/" + id.String(), body: body, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out.Chirp, nil
}

func (c *Client) DeleteChirp(ctx context.Context, id uuid.UUID) error {
	var out messageResponse
	return c.do(ctx, request{method: http.MethodDelete, path: "/chirps/" + id.String(), out: &out, auth: true})
}

// ToggleLike переключает лайк (POST /likes). Сервер не знает о желаемом
// состоянии: повторный вызов снимает лайк.
func (c *Client) ToggleLike(ctx context.Context, chirpID uuid.UUID) (*LikeToggle, error) {
	var out LikeToggle
	if err := c.do(ctx, request{method: http.MethodPost, path: "/likes", body: likeRequest{ChirpID: chirpID}, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

// Unlike — DELETE /likes; на сервере это тот же toggle.
func (c *Client) Unlike(ctx context.Context, chirpID uuid.UUID) (*LikeToggle, error) {
	var out LikeToggle
	if err := c.do(ctx, request{method: http.MethodDelete, path: "/likes", body: likeRequest{ChirpID: chirpID}, out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) LikeStats(ctx context.Context, chirpID uuid.UUID) (*LikeStats, error) {
	var out LikeStats
	if err := c.do(ctx, request{method: http.MethodGet, path: "/chirps/" + chirpID.String() + "/likes", out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ChirpLikers(ctx context.Context, chirpID uuid.UUID, page Page) (*LikeList, error) {
	var out LikeList
	path := "/likes/chirp/" + chirpID.String() + "/users"
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: page.values(), out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ProfileLikes(ctx context.Context, profileID uuid.UUID, page Page) (*LikeList, error) {
	var out LikeList
	path := "/likes/profile/" + profileID.String()
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: page.values(), out: &out, auth: true}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, request{method: http.MethodGet, path: "/health", out: &out}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (p Page) values() url.Values {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}

	return q
}
