package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/http/dto"
	"github.com/pribylovaa/chirper/internal/validate"
)

func (h *Handlers) MyProfile(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.MyProfile(r.Context(), me)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{Profile: dto.FromProfile(p)})
}

func (h *Handlers) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.UpdateProfileRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), me, in.ToUpdate())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{
		Message: "Profile updated successfully",
		Profile: dto.FromProfile(p),
	})
}

func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.AvatarPresignRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	info, err := h.svc.AvatarUploadURL(r.Context(), me, in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FromUploadInfo(info))
}

func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.AvatarConfirmRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.ConfirmAvatar(r.Context(), me, in.AvatarKey)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{
		Message: "Avatar updated successfully",
		Profile: dto.FromProfile(p),
	})
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Profile(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{Profile: dto.FromPublicProfile(p)})
}

func (h *Handlers) GetProfileByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if len(username) < 3 {
		apierrors.WriteError(w, r, validate.NewError(validate.FieldError{
			Path:    "username",
			Message: "must be at least 3 characters",
			Code:    "min",
		}))
		return
	}

	p, err := h.svc.ProfileByUsername(r.Context(), username)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{Profile: dto.FromPublicProfile(p)})
}
