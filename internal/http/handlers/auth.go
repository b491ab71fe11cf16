package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/http/dto"
	"github.com/pribylovaa/chirper/internal/models"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in dto.RegisterRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sess, err := h.svc.Register(r.Context(), in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse("Account created successfully", sess))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in dto.LoginRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sess, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse("Login successful", sess))
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in dto.RefreshRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	access, err := h.svc.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RefreshResponse{
		Message:     "Token refreshed successfully",
		AccessToken: access,
	})
}

func authResponse(msg string, s *models.Session) dto.AuthResponse {
	return dto.AuthResponse{
		Message:      msg,
		AccessToken:  s.Tokens.AccessToken,
		RefreshToken: s.Tokens.RefreshToken,
		Profile:      dto.FromProfile(s.Profile),
	}
}
