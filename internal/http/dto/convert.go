package dto

import (
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/pribylovaa/chirper/internal/storage"
)

// FromProfile — профиль владельца, с email.
func FromProfile(p *models.Profile) Profile {
	return Profile{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromPublicProfile — публичный профиль, без email.
func FromPublicProfile(p *models.PublicProfile) Profile {
	return Profile{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromChirpView(v *models.ChirpView) Chirp {
	return Chirp{
		ID:        v.ID,
		ProfileID: v.ProfileID,
		Content:   v.Content,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		Profile: Author{
			ID:          v.Author.ID,
			Username:    v.Author.Username,
			DisplayName: v.Author.DisplayName,
			AvatarURL:   v.Author.AvatarURL,
		},
		LikeCount: v.LikeCount,
		IsLiked:   v.IsLiked,
	}
}

func FromChirpViews(in []models.ChirpView) []Chirp {
	out := make([]Chirp, 0, len(in))
	for i := range in {
		out = append(out, FromChirpView(&in[i]))
	}

	return out
}

func FromLikeStats(s *models.LikeStats) LikeStats {
	return LikeStats{ChirpID: s.ChirpID, LikeCount: s.LikeCount, IsLiked: s.IsLiked}
}

func FromLikes(in []models.Like) []Like {
	out := make([]Like, 0, len(in))
	for _, l := range in {
		out = append(out, Like{ID: l.ID, ProfileID: l.ProfileID, ChirpID: l.ChirpID, CreatedAt: l.CreatedAt})
	}

	return out
}

func FromLikesWithProfile(in []models.LikeWithProfile) []Like {
	out := make([]Like, 0, len(in))
	for _, l := range in {
		out = append(out, Like{
			ID:          l.ID,
			ProfileID:   l.ProfileID,
			ChirpID:     l.ChirpID,
			CreatedAt:   l.CreatedAt,
			Username:    l.Username,
			DisplayName: l.DisplayName,
			AvatarURL:   l.AvatarURL,
		})
	}

	return out
}

func FromUploadInfo(u *storage.UploadInfo) AvatarPresignResponse {
	return AvatarPresignResponse{
		UploadURL:       u.UploadURL,
		AvatarKey:       u.AvatarKey,
		ExpiresSeconds:  int64(u.Expires.Seconds()),
		RequiredHeaders: u.RequiredHeaders,
	}
}

func NewPagination(p storage.Page, count int) Pagination {
	return Pagination{Limit: p.Limit, Offset: p.Offset, Count: count}
}
