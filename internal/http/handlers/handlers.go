// handlers содержит REST-обработчики chirper. Каждый обработчик:
//   - строго декодирует JSON (неизвестные поля запрещены);
//   - валидирует вход до обращения к сервису;
//   - маппит ошибки через apierrors.WriteError.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/config"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/http/middleware"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
	"github.com/pribylovaa/chirper/internal/validate"
)

const maxBodyBytes = 1 << 20

// Service — бизнес-операции, которые вызывают обработчики.
type Service interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)

	Profile(ctx context.Context, id uuid.UUID) (*models.PublicProfile, error)
	ProfileByUsername(ctx context.Context, username string) (*models.PublicProfile, error)
	MyProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update storage.ProfileUpdate) (*models.Profile, error)
	AvatarUploadURL(ctx context.Context, profileID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error)
	ConfirmAvatar(ctx context.Context, profileID uuid.UUID, key string) (*models.Profile, error)

	Feed(ctx context.Context, viewer uuid.UUID, page storage.Page) ([]models.ChirpView, error)
	Chirp(ctx context.Context, id, viewer uuid.UUID) (*models.ChirpView, error)
	ChirpsByProfile(ctx context.Context, profileID, viewer uuid.UUID, page storage.Page) ([]models.ChirpView, error)
	CreateChirp(ctx context.Context, owner uuid.UUID, content string) (*models.ChirpView, error)
	UpdateChirp(ctx context.Context, id, owner uuid.UUID, content string) (*models.ChirpView, error)
	DeleteChirp(ctx context.Context, id, owner uuid.UUID) error

	ToggleLike(ctx context.Context, profileID, chirpID uuid.UUID) (*models.LikeStats, error)
	LikeStats(ctx context.Context, chirpID, viewer uuid.UUID) (*models.LikeStats, error)
	ChirpLikers(ctx context.Context, chirpID uuid.UUID, page storage.Page) ([]models.LikeWithProfile, error)
	ProfileLikes(ctx context.Context, profileID uuid.UUID, page storage.Page) ([]models.Like, error)
}

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	svc    Service
	limits config.LimitsConfig
}

func New(svc Service, limits config.LimitsConfig) *Handlers {
	if limits.Default <= 0 {
		limits.Default = 20
	}

	if limits.Max <= 0 {
		limits.Max = 100
	}

	return &Handlers{svc: svc, limits: limits}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля и хвост после объекта.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("%w: %v", apierrors.ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", apierrors.ErrInvalidJSON)
	}

	return nil
}

// decodeValid декодирует тело и проверяет его правилами validate.
func decodeValid(w http.ResponseWriter, r *http.Request, value any) error {
	if err := decodeStrict(w, r, value); err != nil {
		return err
	}

	return validate.Struct(value)
}

// pathUUID разбирает UUID из параметра маршрута.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, validate.NewError(validate.FieldError{
			Path:    name,
			Message: "must be a valid UUID",
			Code:    "uuid",
		})
	}

	return id, nil
}

// page разбирает limit/offset: limit 1..Max (по умолчанию Default), offset >= 0.
func (h *Handlers) page(r *http.Request) (storage.Page, error) {
	q := r.URL.Query()
	var fields []validate.FieldError

	limit, fe := validate.Int("limit", q.Get("limit"), h.limits.Default, 1, h.limits.Max)
	if fe != nil {
		fields = append(fields, *fe)
	}

	offset, fe := validate.Int("offset", q.Get("offset"), 0, 0, 0)
	if fe != nil {
		fields = append(fields, *fe)
	}

	if len(fields) > 0 {
		return storage.Page{}, validate.NewError(fields...)
	}

	return storage.Page{Limit: limit, Offset: offset}, nil
}

// owner возвращает id аутентифицированного профиля.
// Вызывается только за RequireAuth, поэтому отсутствие claims — 401.
func owner(r *http.Request) (uuid.UUID, error) {
	c, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		return uuid.Nil, apierrors.ErrAuthRequired
	}

	return c.ProfileID, nil
}
