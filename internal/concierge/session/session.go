package session

import (
	"context"
	"time"

	"luxestay/internal/concierge/dialog"
	"luxestay/pkg/model"
)

// Results is the hotel set produced by the last completed dialog, together
// with the criteria that produced it.
type Results struct {
	Criteria      dialog.SearchRequest `json:"criteria"`
	Hotels        []model.Hotel        `json:"hotels"`
	NextPageToken string               `json:"next_page_token,omitempty"`
	SearchedAt    time.Time            `json:"searched_at"`
}

type Session struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id,omitempty"`
	Dialog    dialog.Session      `json:"dialog"`
	History   []model.ChatMessage `json:"history"`
	Results   *Results            `json:"results,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Store persists sessions with a sliding TTL; every Save extends it. Get and
// Delete return ErrSessionNotFound for unknown or expired IDs. Lock is shared
// by every process that uses the same backing store.
type Store interface {
	Locker
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// Cap keeps the newest limit turns of history.
func (s *Session) Cap(limit int) {
	if limit > 0 && len(s.History) > limit {
		s.History = append([]model.ChatMessage(nil), s.History[len(s.History)-limit:]...)
	}
}

func (s *Session) Append(role, content string) {
	s.History = append(s.History, model.ChatMessage{Role: role, Content: content})
}
