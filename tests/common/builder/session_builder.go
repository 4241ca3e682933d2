//go:build unit || e2e

package builder

import (
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	reqdto "signup-engine/internal/handler/dto/request"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// TestZone stands in for the booking reference zone without needing tzdata.
var TestZone = time.FixedZone("Asia/Taipei", 8*60*60)

// TestNow is the wall clock every builder assumes unless overridden.
var TestNow = time.Date(2026, 5, 1, 10, 0, 0, 0, TestZone)

type SessionBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	VenueID      uuid.UUID
	ActivityDate time.Time
	TimeSlot     string
	NetHeight    string
	Level        string
	Fee          int
	Note         *string
	Capacity     capacity.Pools
	Consumed     capacity.Pools
	Calendar     *session.Calendar
	Now          time.Time
}

func NewSessionBuilder() *SessionBuilder {
	note := "Bring indoor shoes"
	return &SessionBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		VenueID:      uuid.New(),
		ActivityDate: time.Date(2026, 5, 10, 0, 0, 0, 0, TestZone),
		TimeSlot:     "19:00-21:00",
		NetHeight:    "2.24m",
		Level:        "intermediate",
		Fee:          200,
		Note:         &note,
		Capacity:     capacity.Pools{A: 6, B: 6, Unrestricted: 4},
		Calendar:     session.NewCalendar(TestZone),
		Now:          TestNow,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) Details() session.Details {
	return session.Details{
		VenueID:   b.VenueID,
		TimeSlot:  b.TimeSlot,
		NetHeight: b.NetHeight,
		Level:     b.Level,
		Fee:       b.Fee,
		Note:      b.Note,
	}
}

// BuildDomain goes through the validating constructor.
func (b *SessionBuilder) BuildDomain() (*session.Session, error) {
	return session.NewSession(b.Calendar, b.OwnerID, b.ActivityDate, b.Details(), b.Capacity, b.Now)
}

// BuildReconstructed skips validation and carries Consumed, as a row loaded from storage would.
func (b *SessionBuilder) BuildReconstructed() *session.Session {
	day := b.Calendar.Day(b.ActivityDate)
	return session.ReconstructSession(
		b.ID, b.OwnerID, day, b.Details(), b.Capacity, b.Consumed,
		b.Calendar.ExpiresAt(day), b.Now, b.Now,
	)
}

func (b *SessionBuilder) BuildView() *queries.SessionView {
	day := b.Calendar.Day(b.ActivityDate)
	return &queries.SessionView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		VenueID:      b.VenueID,
		ActivityDate: day,
		TimeSlot:     b.TimeSlot,
		NetHeight:    b.NetHeight,
		Level:        b.Level,
		Fee:          b.Fee,
		Note:         b.Note,
		Capacity:     queries.NewPoolsView(b.Capacity),
		Consumed:     queries.NewPoolsView(b.Consumed),
		Available:    queries.NewPoolsView(b.Capacity.Sub(b.Consumed)),
		ExpiresAt:    b.Calendar.ExpiresAt(day),
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *SessionBuilder) BuildSnapshot() commands.SessionSnapshot {
	day := b.Calendar.Day(b.ActivityDate)
	return commands.SessionSnapshot{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		VenueID:      b.VenueID,
		ActivityDate: day,
		TimeSlot:     b.TimeSlot,
		NetHeight:    b.NetHeight,
		Level:        b.Level,
		Fee:          b.Fee,
		Note:         b.Note,
		Capacity:     b.Capacity,
		Consumed:     b.Consumed,
		Available:    b.Capacity.Sub(b.Consumed),
		ExpiresAt:    b.Calendar.ExpiresAt(day),
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *SessionBuilder) BuildCreateRequestDTO() reqdto.CreateSessionRequest {
	return reqdto.CreateSessionRequest{
		VenueID:      b.VenueID.String(),
		ActivityDate: b.ActivityDate.Format(session.DateLayout),
		TimeSlot:     b.TimeSlot,
		NetHeight:    b.NetHeight,
		Level:        b.Level,
		Fee:          b.Fee,
		Note:         b.Note,
		Capacity: reqdto.PoolsRequest{
			A:            b.Capacity.A,
			B:            b.Capacity.B,
			Unrestricted: b.Capacity.Unrestricted,
		},
	}
}

// Fluent builder methods
func (b *SessionBuilder) WithOwnerID(id uuid.UUID) *SessionBuilder {
	b.OwnerID = id
	return b
}

func (b *SessionBuilder) WithCapacity(p capacity.Pools) *SessionBuilder {
	b.Capacity = p
	return b
}

func (b *SessionBuilder) WithConsumed(p capacity.Pools) *SessionBuilder {
	b.Consumed = p
	return b
}

func (b *SessionBuilder) WithActivityDate(t time.Time) *SessionBuilder {
	b.ActivityDate = t
	return b
}

func (b *SessionBuilder) WithLevel(level string) *SessionBuilder {
	b.Level = level
	return b
}

func (b *SessionBuilder) WithFee(fee int) *SessionBuilder {
	b.Fee = fee
	return b
}
