// events публикует доменные события chirper в NATS.
//
// Subject события: <prefix>.<type>, например chirper.chirp.created.
// Тело — JSON Event. Публикация best-effort: сбой не отменяет операцию.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Типы событий.
const (
	ChirpCreated      = "chirp.created"
	ChirpUpdated      = "chirp.updated"
	ChirpDeleted      = "chirp.deleted"
	LikeToggled       = "like.toggled"
	ProfileRegistered = "profile.registered"
)

// Event — полезная нагрузка события.
type Event struct {
	Type       string     `json:"type"`
	ProfileID  uuid.UUID  `json:"profile_id"`
	ChirpID    *uuid.UUID `json:"chirp_id,omitempty"`
	LikeCount  *int64     `json:"like_count,omitempty"`
	IsLiked    *bool      `json:"is_liked,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Publisher — контракт публикации событий.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

// Noop — публикатор, который ничего не отправляет.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

func (Noop) Close() {}
