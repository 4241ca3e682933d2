package commands

import (
	"context"
	"log/slog"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/usecase/shared"
)

// CascadeManager keeps reservations consistent with their parent session.
// It never opens a transaction itself: callers pass the unit of work that
// already holds the session row lock, so parent and children commit together.
type CascadeManager interface {
	// OnSessionDelete removes every reservation of s and then s itself.
	OnSessionDelete(ctx context.Context, tx shared.Tx, s *session.Session) (int64, error)
	// OnSessionDateChange copies s.ExpiresAt onto every reservation of s.
	OnSessionDateChange(ctx context.Context, tx shared.Tx, s *session.Session, now time.Time) (int64, error)
}

type cascadeManager struct{}

func NewCascadeManager() CascadeManager {
	return &cascadeManager{}
}

func (m *cascadeManager) OnSessionDelete(ctx context.Context, tx shared.Tx, s *session.Session) (int64, error) {
	removed, err := tx.Reservations().DeleteBySession(ctx, tx.DB(), s.ID())
	if err != nil {
		return 0, err
	}
	if err := tx.Sessions().Delete(ctx, tx.DB(), s.ID()); err != nil {
		return 0, notFound(err)
	}

	slog.Debug("session cascade delete", "session_id", s.ID(), "reservations", removed)
	return removed, nil
}

func (m *cascadeManager) OnSessionDateChange(ctx context.Context, tx shared.Tx, s *session.Session, now time.Time) (int64, error) {
	updated, err := tx.Reservations().UpdateExpiryBySession(ctx, tx.DB(), s.ID(), s.ExpiresAt(), now)
	if err != nil {
		return 0, err
	}

	slog.Debug("session expiry propagated",
		"session_id", s.ID(),
		"expires_at", s.ExpiresAt(),
		"reservations", updated)
	return updated, nil
}
