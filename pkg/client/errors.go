package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated — операция требует токенов, а клиент анонимен.
var ErrNotAuthenticated = errors.New("client: not authenticated")

// FieldError — ошибка валидации одного поля.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// APIError — ответ сервера со статусом вне 2xx.
// Body хранит сырое тело ответа, даже если оно не разобралось как конверт ошибки.
type APIError struct {
	Status    int
	Code      string
	Message   string
	Details   []FieldError
	RequestID string
	Body      []byte
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("chirper api: %d %s", e.Status, e.Message)
	}

	return fmt.Sprintf("chirper api: %d %s: %s", e.Status, e.Code, e.Message)
}

// AsAPIError достаёт *APIError из цепочки ошибок.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsStatus проверяет HTTP-статус ошибки API.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

// IsNotFound — удобный частный случай IsStatus.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

type errorEnvelope struct {
	Error struct {
		Code      string       `json:"code"`
		Message   string       `json:"message"`
		Details   []FieldError `json:"details"`
		RequestID string       `json:"request_id"`
	} `json:"error"`
}
