package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/the-axmc/conclave/internal/domain"
)

var ErrNotFound = errors.New("not found")

// SessionStore persists debate sessions as opaque jsonb payloads. The
// write path keeps the table capped to the most recent sessions in the
// same transaction as the insert, so readers never observe more than cap
// rows.
type SessionStore struct {
	db  *pgxpool.Pool
	cap int
}

func NewSessionStore(db *pgxpool.Pool, cap int) *SessionStore {
	if cap <= 0 {
		cap = 25
	}
	return &SessionStore{db: db, cap: cap}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.DebateSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin session save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO debate_sessions (id, scenario, category, payload, started_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.Scenario, string(session.Category), payload, session.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM debate_sessions
		 WHERE id NOT IN (
		   SELECT id FROM debate_sessions
		   ORDER BY started_at DESC
		   LIMIT $1
		 )`,
		s.cap,
	)
	if err != nil {
		return fmt.Errorf("trim sessions: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *SessionStore) Latest(ctx context.Context) (*domain.DebateSession, error) {
	var payload []byte
	err := s.db.QueryRow(ctx,
		`SELECT payload FROM debate_sessions
		 ORDER BY started_at DESC
		 LIMIT 1`,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var session domain.DebateSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) List(ctx context.Context, limit int) ([]domain.DebateSession, error) {
	if limit <= 0 || limit > s.cap {
		limit = s.cap
	}

	rows, err := s.db.Query(ctx,
		`SELECT payload FROM debate_sessions
		 ORDER BY started_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.DebateSession
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var session domain.DebateSession
		if err := json.Unmarshal(payload, &session); err != nil {
			return nil, fmt.Errorf("unmarshal session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
