package domain

import "context"

// SessionStore persists completed debate sessions. The list is capped:
// Save keeps only the most recent cap sessions, most-recent-first.
// Writes are single-writer per session; there is no concurrent update of
// a stored session.
type SessionStore interface {
	Save(ctx context.Context, s *DebateSession) error
	Latest(ctx context.Context) (*DebateSession, error)
	List(ctx context.Context, limit int) ([]DebateSession, error)
}
