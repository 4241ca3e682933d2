package session

import (
	"time"

	"signup-engine/internal/domain/capacity"

	"github.com/google/uuid"
)

type Session struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	activityDate time.Time
	details      Details
	capacity     capacity.Pools
	consumed     capacity.Pools
	expiresAt    time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSession(
	cal *Calendar,
	ownerID uuid.UUID,
	activityDate time.Time,
	details Details,
	declared capacity.Pools,
	now time.Time,
) (*Session, error) {
	if activityDate.IsZero() {
		return nil, ErrInvalidActivityDate
	}
	details = details.normalized()
	if err := details.validate(); err != nil {
		return nil, err
	}
	if err := capacity.ValidateCapacity(declared); err != nil {
		return nil, err
	}

	day := cal.Day(activityDate)
	return &Session{
		id:           uuid.New(),
		ownerID:      ownerID,
		activityDate: day,
		details:      details,
		capacity:     declared,
		expiresAt:    cal.ExpiresAt(day),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructSession(
	id, ownerID uuid.UUID,
	activityDate time.Time,
	details Details,
	declared, consumed capacity.Pools,
	expiresAt, createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:           id,
		ownerID:      ownerID,
		activityDate: activityDate,
		details:      details,
		capacity:     declared,
		consumed:     consumed,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Session) OwnedBy(userID uuid.UUID) bool {
	return s.ownerID == userID
}

// IsExpired treats the session as gone once expiresAt is reached, even
// before the reaper has removed it.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

func (s *Session) Available() capacity.Pools {
	return capacity.Available(s.capacity, s.consumed)
}

func (s *Session) Reserve(req capacity.Pools, now time.Time) error {
	next, err := capacity.Reserve(s.capacity, s.consumed, req)
	if err != nil {
		return err
	}
	s.consumed = next
	s.updatedAt = now
	return nil
}

func (s *Session) Amend(prior, next capacity.Pools, now time.Time) error {
	consumed, err := capacity.Amend(s.capacity, s.consumed, prior, next)
	if err != nil {
		return err
	}
	s.consumed = consumed
	s.updatedAt = now
	return nil
}

func (s *Session) Release(claim capacity.Pools, now time.Time) {
	s.consumed = capacity.Release(s.consumed, claim)
	s.updatedAt = now
}

// Reschedule moves the session to another day and reports whether the
// expiry moved with it.
func (s *Session) Reschedule(cal *Calendar, activityDate time.Time, now time.Time) bool {
	day := cal.Day(activityDate)
	expiresAt := cal.ExpiresAt(day)
	changed := !expiresAt.Equal(s.expiresAt)
	s.activityDate = day
	s.expiresAt = expiresAt
	s.updatedAt = now
	return changed
}

func (s *Session) Resize(declared capacity.Pools, now time.Time) error {
	if err := capacity.Resize(s.consumed, declared); err != nil {
		return err
	}
	s.capacity = declared
	s.updatedAt = now
	return nil
}

func (s *Session) UpdateDetails(details Details, now time.Time) error {
	details = details.normalized()
	if err := details.validate(); err != nil {
		return err
	}
	s.details = details
	s.updatedAt = now
	return nil
}

func (s *Session) ID() uuid.UUID            { return s.id }
func (s *Session) OwnerID() uuid.UUID       { return s.ownerID }
func (s *Session) ActivityDate() time.Time  { return s.activityDate }
func (s *Session) Details() Details         { return s.details }
func (s *Session) Capacity() capacity.Pools { return s.capacity }
func (s *Session) Consumed() capacity.Pools { return s.consumed }
func (s *Session) ExpiresAt() time.Time     { return s.expiresAt }
func (s *Session) CreatedAt() time.Time     { return s.createdAt }
func (s *Session) UpdatedAt() time.Time     { return s.updatedAt }
