package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/http/dto"
	"github.com/pribylovaa/chirper/internal/http/middleware"
)

func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	p, err := h.page(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	chirps, err := h.svc.Feed(r.Context(), middleware.ViewerID(r.Context()), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChirpListResponse{
		Chirps:     dto.FromChirpViews(chirps),
		Pagination: dto.NewPagination(p, len(chirps)),
	})
}

func (h *Handlers) ChirpsByProfile(w http.ResponseWriter, r *http.Request) {
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

	chirps, err := h.svc.ChirpsByProfile(r.Context(), profileID, middleware.ViewerID(r.Context()), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChirpListResponse{
		Chirps:     dto.FromChirpViews(chirps),
		Pagination: dto.NewPagination(p, len(chirps)),
	})
}

func (h *Handlers) GetChirp(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	v, err := h.svc.Chirp(r.Context(), id, middleware.ViewerID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChirpResponse{Chirp: dto.FromChirpView(v)})
}

func (h *Handlers) CreateChirp(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.ChirpRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	v, err := h.svc.CreateChirp(r.Context(), me, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ChirpResponse{
		Message: "Chirp created successfully",
		Chirp:   dto.FromChirpView(v),
	})
}

func (h *Handlers) UpdateChirp(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.ChirpRequest
	if err := decodeValid(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	v, err := h.svc.UpdateChirp(r.Context(), id, me, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChirpResponse{
		Message: "Chirp updated successfully",
		Chirp:   dto.FromChirpView(v),
	})
}

func (h *Handlers) DeleteChirp(w http.ResponseWriter, r *http.Request) {
	me, err := owner(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteChirp(r.Context(), id, me); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Chirp deleted successfully"})
}
