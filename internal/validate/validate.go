// validate проверяет входные DTO до обращения к сервисному слою.
// Теги validator/v10 описываются прямо в структурах запросов; имена полей
// в ошибках берутся из json-тегов, чтобы клиент видел те же ключи, что отправил.
package validate

import (
	"errors"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// FieldError — описание одного нарушения.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error — набор нарушений; транспорт отдаёт его как 400 validation_failed.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError собирает Error из готовых нарушений (например, для query-параметров).
func NewError(fields ...FieldError) *Error {
	return &Error{Fields: fields}
}

// Details возвращает нарушения, если err — ошибка валидации.
func Details(err error) ([]FieldError, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields, true
	}

	return nil, false
}

// Validator оборачивает validator.Validate с правилами chirper.
type Validator struct {
	v *validator.Validate
}

// New создаёт Validator: имена полей из json-тегов, правила "username" и "url_or_empty".
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return f.Name
		}

		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})

	// Пустая строка допустима: так клиент сбрасывает ссылку.
	_ = v.RegisterValidation("url_or_empty", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if raw == "" {
			return true
		}

		u, err := url.ParseRequestURI(raw)
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})

	return &Validator{v: v}
}

// Struct проверяет s и возвращает *Error со всеми нарушениями либо nil.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Path:    fieldPath(fe),
			Message: message(fe),
			Code:    fe.Tag(),
		})
	}

	return out
}

var (
	defaultOnce sync.Once
	defaultV    *Validator
)

// Struct проверяет s валидатором по умолчанию.
func Struct(s any) error {
	defaultOnce.Do(func() { defaultV = New() })
	return defaultV.Struct(s)
}

// fieldPath отбрасывает имя корневой структуры: "RegisterRequest.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url", "url_or_empty":
		return "must be a valid URL"
	case "uuid", "uuid4", "uuid7":
		return "must be a valid UUID"
	case "username":
		return "must contain only letters, digits and underscores"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + param + " characters"
		}

		return "must be at least " + param
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters"
		}

		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + param
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// Int разбирает необязательный целочисленный query-параметр в пределах [lo, hi].
// Пустое значение даёт def.
func Int(name, raw string, def, lo, hi int) (int, *FieldError) {
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Path: name, Message: "must be an integer", Code: "integer"}
	}

	if n < lo {
		return 0, &FieldError{Path: name, Message: "must be greater than or equal to " + strconv.Itoa(lo), Code: "gte"}
	}

	if hi > 0 && n > hi {
		return 0, &FieldError{Path: name, Message: "must be less than or equal to " + strconv.Itoa(hi), Code: "lte"}
	}

	return n, nil
}
