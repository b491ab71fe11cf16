// client — Go-клиент REST API chirper.
//
// Клиент держит пару токенов (access/refresh) в TokenStore и прикладывает
// access-токен к каждому запросу. Получив 401 при наличии refresh-токена,
// клиент один раз обновляет access-токен и один раз повторяет запрос.
// Параллельные 401 разделяют одно обновление (singleflight); неудачное
// обновление очищает оба токена, и вызывающий получает исходный 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pribylovaa/chirper/pkg/log"
	"golang.org/x/sync/singleflight"
)

const (
	refreshPath     = "/auth/refresh"
	maxResponseBody = 1 << 20
)

// Client безопасен для конкурентного использования.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore

	mu     sync.RWMutex
	tokens Tokens

	refreshes singleflight.Group
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient задаёт HTTP-клиент (таймауты, транспорт).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenStore задаёт хранилище токенов (по умолчанию MemoryStore).
func WithTokenStore(s TokenStore) Option {
	return func(c *Client) {
		if s != nil {
			c.store = s
		}
	}
}

// New создаёт клиент для baseURL вида "http://localhost:3001/api"
// и поднимает сохранённые токены из хранилища.
func New(ctx context.Context, baseURL string, opts ...Option) (*Client, error) {
	const op = "client.New"

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: invalid base url %q", op, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   NewMemoryStore(),
	}

	for _, opt := range opts {
		opt(c)
	}

	tokens, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.tokens = tokens

	return c, nil
}

// IsAuthenticated сообщает, держит ли клиент access-токен.
func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tokens.AccessToken != ""
}

// Tokens возвращает текущую пару токенов.
func (c *Client) Tokens() Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tokens
}

func (c *Client) setTokens(ctx context.Context, t Tokens) error {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()

	return c.store.Save(ctx, t)
}

func (c *Client) clearTokens(ctx context.Context) error {
	c.mu.Lock()
	c.tokens = Tokens{}
	c.mu.Unlock()

	return c.store.Clear(ctx)
}

// request — один логический вызов API.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	// auth=false для /auth/*: 401 там означает неверные данные, а не протухший токен.
	auth bool
}

// do выполняет запрос с протоколом обновления токена.
func (c *Client) do(ctx context.Context, req request) error {
	const op = "client.do"

	var payload []byte
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode: %w", op, err)
		}
		payload = raw
	}

	access := ""
	if req.auth {
		access = c.Tokens().AccessToken
	}

	resp, err := c.send(ctx, req, payload, access)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && req.auth && req.path != refreshPath && c.Tokens().RefreshToken != "" {
		original := readAPIError(resp)

		fresh, rerr := c.refresh(ctx, access)
		if rerr != nil {
			return original
		}

		resp, err = c.send(ctx, req, payload, fresh)
		if err != nil {
			return err
		}
	}

	return decodeResponse(resp, req.out)
}

func (c *Client) send(ctx context.Context, req request, payload []byte, access string) (*http.Response, error) {
	const op = "client.send"

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if access != "" {
		httpReq.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.From(ctx).Warn("http_error",
			slog.String("op", op),
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}

	return resp, nil
}

// refresh обновляет access-токен. stale — токен, с которым запрос получил 401:
// если к моменту входа в singleflight токен уже заменён, обновление не повторяется.
func (c *Client) refresh(ctx context.Context, stale string) (string, error) {
	const op = "client.refresh"

	ch := c.refreshes.DoChan("refresh", func() (any, error) {
		// Общий вызов не должен зависеть от отмены первого ожидающего.
		fctx := context.WithoutCancel(ctx)

		current := c.Tokens()
		if current.AccessToken != "" && current.AccessToken != stale {
			return current.AccessToken, nil
		}

		if current.RefreshToken == "" {
			return "", ErrNotAuthenticated
		}

		var out refreshResponse
		err := c.do(fctx, request{
			method: http.MethodPost,
			path:   refreshPath,
			body:   refreshRequest{RefreshToken: current.RefreshToken},
			out:    &out,
		})
		if err == nil && out.AccessToken == "" {
			err = fmt.Errorf("%s: empty access token", op)
		}

		if err != nil {
			log.From(ctx).Warn("token_refresh_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			if cerr := c.clearTokens(fctx); cerr != nil {
				return "", errors.Join(err, cerr)
			}

			return "", err
		}

		current.AccessToken = out.AccessToken
		if err := c.setTokens(fctx, current); err != nil {
			return "", fmt.Errorf("%s: save: %w", op, err)
		}

		log.From(ctx).Debug("token_refreshed", slog.String("op", op))

		return out.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}

		return res.Val.(string), nil
	}
}

// readAPIError читает тело ответа с ошибкой и закрывает его.
func readAPIError(resp *http.Response) *APIError {
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	apiErr := &APIError{
		Status:    resp.StatusCode,
		Message:   http.StatusText(resp.StatusCode),
		RequestID: resp.Header.Get("X-Request-Id"),
		Body:      raw,
	}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Code != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
		if env.Error.RequestID != "" {
			apiErr.RequestID = env.Error.RequestID
		}
	}

	return apiErr
}

// decodeResponse разбирает успешный ответ в out или возвращает *APIError.
func decodeResponse(resp *http.Response, out any) error {
	const op = "client.decodeResponse"

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}

	return nil
}
