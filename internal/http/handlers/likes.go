package handlers

import (
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/http/dto"
	"github.com/pribylovaa/chirper/internal/http/middleware"
	"github.com/pribylovaa/chirper/internal/validate"
)

// ToggleLike переключает лайк (POST /likes). Повторный вызов снимает лайк.
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "Chirp liked successfully", "Chirp unliked successfully")
}

// RemoveLike — DELETE /likes; семантика та же, что у ToggleLike.
func (h *Handlers) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "Chirp liked successfully", "Like removed successfully")
}

func (h *Handlers) toggle(w http.ResponseWriter, r *http.Request, likedMsg, unlikedMsg string) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.LikeRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	chirpID, err := uuid.Parse(in.ChirpID)
	if err != nil {
		apierrors.WriteError(w, r, validate.NewError(validate.FieldError{
			Path: "chirp_id", Message: "must be a valid UUID", Code: "uuid",
		}))
		return
	}

	stats, err := h.svc.ToggleLike(r.Context(), me, chirpID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	msg := unlikedMsg
	if stats.IsLiked {
		msg = likedMsg
	}

	writeJSON(w, http.StatusOK, dto.LikeToggleResponse{
		Message:   msg,
		LikeCount: stats.LikeCount,
		IsLiked:   stats.IsLiked,
	})
}

// LikeStats обслуживает GET /likes/chirp/{chirpId} и GET /chirps/{id}/likes.
func (h *Handlers) LikeStats(param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chirpID, err := pathUUID(r, param)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		stats, err := h.svc.LikeStats(r.Context(), chirpID, middleware.ViewerID(r.Context()))
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, dto.FromLikeStats(stats))
	}
}

func (h *Handlers) ChirpLikers(w http.ResponseWriter, r *http.Request) {
	chirpID, err := pathUUID(r, "chirpId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.page(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	likes, err := h.svc.ChirpLikers(r.Context(), chirpID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LikeListResponse{
		Likes:      dto.FromLikesWithProfile(likes),
		Pagination: dto.NewPagination(p, len(likes)),
	})
}

func (h *Handlers) ProfileLikes(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.page(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	likes, err := h.svc.ProfileLikes(r.Context(), profileID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LikeListResponse{
		Likes:      dto.FromLikes(likes),
		Pagination: dto.NewPagination(p, len(likes)),
	})
}
