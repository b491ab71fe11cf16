// errors стандартизирует ответы об ошибках HTTP-слоя chirper.
// На вход принимает ошибку сервисного слоя или транспорта, на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный машиночитаемый code;
//   - безопасное message без утечки деталей.
//
// Все ответы с ошибкой имеют форму {"error":{code,message,details?,request_id?}}.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sync/atomic"

	"github.com/pribylovaa/chirper/internal/auth"
	"github.com/pribylovaa/chirper/internal/service"
	"github.com/pribylovaa/chirper/internal/validate"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// Ошибки транспорта, которые не проходят через сервисный слой.
var (
	ErrInvalidJSON          = stderrors.New("invalid json")
	ErrAuthRequired         = stderrors.New("authentication required")
	ErrInvalidToken         = stderrors.New("invalid token")
	ErrUnsupportedMediaType = stderrors.New("unsupported media type")
	ErrRateLimited          = stderrors.New("rate limited")
	ErrRouteNotFound        = stderrors.New("route not found")
	ErrMethodNotAllowed     = stderrors.New("method not allowed")
)

// APIError — единый формат для клиента.
type APIError struct {
	Code      string                `json:"code"`
	Message   string                `json:"message"`
	Details   []validate.FieldError `json:"details,omitempty"`
	RequestID string                `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

var exposeInternal atomic.Bool

// SetExposeInternal включает текст внутренних ошибок в ответах 500 (local/dev).
func SetExposeInternal(v bool) {
	exposeInternal.Store(v)
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - ошибка валидации — 400/validation_failed с details;
//   - известные sentinel-ошибки — по таблице ниже;
//   - прочее — 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, resp("internal", "internal error")
	}

	if details, ok := validate.Details(err); ok {
		out := resp("validation_failed", "Validation failed")
		out.Error.Details = details

		return http.StatusBadRequest, out
	}

	switch {
	case stderrors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, resp("invalid_json", "Request body is not valid JSON")
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, resp("validation_failed", "Invalid argument")

	case stderrors.Is(err, ErrAuthRequired):
		return http.StatusUnauthorized, resp("authentication_required", "No token provided")
	case stderrors.Is(err, ErrInvalidToken), stderrors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, resp("invalid_token", "Token is invalid or expired")
	case stderrors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, resp("invalid_credentials", "Email or password is incorrect")
	case stderrors.Is(err, service.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, resp("invalid_refresh_token", "Refresh token is invalid or expired")
	case stderrors.Is(err, service.ErrProfileGone):
		return http.StatusUnauthorized, resp("profile_not_found", "Associated profile no longer exists")

	case stderrors.Is(err, service.ErrChirpNotFound):
		return http.StatusNotFound, resp("chirp_not_found", "The chirp does not exist or you do not have permission to modify it")
	case stderrors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound, resp("profile_not_found", "Profile not found")
	case stderrors.Is(err, service.ErrNotFound), stderrors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound, resp("not_found", "Resource not found")
	case stderrors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, resp("method_not_allowed", "Method not allowed")

	case stderrors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, resp("username_taken", "Username already exists")
	case stderrors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, resp("email_taken", "Email already exists")

	case stderrors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, resp("unsupported_media_type", "Content-Type must be application/json")
	case stderrors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, resp("rate_limited", "Too many requests, please try again later")

	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, resp("canceled", "request canceled")
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, resp("deadline_exceeded", "deadline exceeded")
	case stderrors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, resp("unavailable", "service unavailable")
	}

	msg := "internal error"
	if exposeInternal.Load() {
		msg = err.Error()
	}

	return http.StatusInternalServerError, resp("internal", msg)
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, out := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		out.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(out)
}

func resp(code, msg string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: msg}}
}
