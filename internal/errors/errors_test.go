package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/chirper/internal/auth"
	"github.com/pribylovaa/chirper/internal/service"
	"github.com/pribylovaa/chirper/internal/validate"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("service.op: %w", err) }

	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_json", ErrInvalidJSON, http.StatusBadRequest, "invalid_json"},
		{"invalid_argument", wrap(service.ErrInvalidArgument), http.StatusBadRequest, "validation_failed"},
		{"auth_required", ErrAuthRequired, http.StatusUnauthorized, "authentication_required"},
		{"invalid_token", ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"invalid_token_auth", wrap(auth.ErrInvalidToken), http.StatusUnauthorized, "invalid_token"},
		{"invalid_credentials", wrap(service.ErrInvalidCredentials), http.StatusUnauthorized, "invalid_credentials"},
		{"invalid_refresh", wrap(service.ErrInvalidRefreshToken), http.StatusUnauthorized, "invalid_refresh_token"},
		{"profile_gone", wrap(service.ErrProfileGone), http.StatusUnauthorized, "profile_not_found"},
		{"chirp_not_found", wrap(service.ErrChirpNotFound), http.StatusNotFound, "chirp_not_found"},
		{"profile_not_found", wrap(service.ErrProfileNotFound), http.StatusNotFound, "profile_not_found"},
		{"not_found", wrap(service.ErrNotFound), http.StatusNotFound, "not_found"},
		{"username_taken", wrap(service.ErrUsernameTaken), http.StatusConflict, "username_taken"},
		{"email_taken", wrap(service.ErrEmailTaken), http.StatusConflict, "email_taken"},
		{"media_type", ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"rate_limited", ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unavailable", wrap(service.ErrUnavailable), http.StatusServiceUnavailable, "unavailable"},
		{"internal", wrap(service.ErrInternal), http.StatusInternalServerError, "internal"},
		{"unknown", stderrors.New("x"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestToHTTP_ValidationDetails(t *testing.T) {
	err := validate.NewError(validate.FieldError{Path: "limit", Message: "must be an integer", Code: "integer"})

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusBadRequest, gotStatus)
	require.Equal(t, "validation_failed", resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	require.Equal(t, "limit", resp.Error.Details[0].Path)
}

func TestToHTTP_InternalMessageExposure(t *testing.T) {
	t.Cleanup(func() { SetExposeInternal(false) })
	err := stderrors.New("pq: relation missing")

	SetExposeInternal(false)
	_, resp := ToHTTP(err)
	require.Equal(t, "internal error", resp.Error.Message)

	SetExposeInternal(true)
	_, resp = ToHTTP(err)
	require.Equal(t, "pq: relation missing", resp.Error.Message)
}

func TestWriteError_EnvelopeWithRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	WriteError(rr, req, service.ErrChirpNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "chirp_not_found", body.Error.Code)
	require.Equal(t, "The chirp does not exist or you do not have permission to modify it", body.Error.Message)
	require.Equal(t, "rid-1", body.Error.RequestID)
}
