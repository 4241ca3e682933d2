package converter

import (
	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/pkg/pgconv"
)

func SessionToCreateParams(s *session.Session) pgquery.CreateSessionParams {
	d := s.Details()
	c := s.Capacity()
	return pgquery.CreateSessionParams{
		ID:                   s.ID(),
		OwnerID:              s.OwnerID(),
		VenueID:              d.VenueID,
		ActivityDate:         pgconv.DateToPgtype(s.ActivityDate()),
		TimeSlot:             d.TimeSlot,
		NetHeight:            d.NetHeight,
		Level:                d.Level,
		Fee:                  pgconv.IntToInt32(d.Fee),
		Note:                 pgconv.StringPtrToPgtype(d.Note),
		CapacityA:            pgconv.IntToInt32(c.A),
		CapacityB:            pgconv.IntToInt32(c.B),
		CapacityUnrestricted: pgconv.IntToInt32(c.Unrestricted),
		ExpiresAt:            pgconv.TimeToPgtype(s.ExpiresAt()),
		CreatedAt:            pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SessionToUpdateParams(s *session.Session) pgquery.UpdateSessionParams {
	d := s.Details()
	c := s.Capacity()
	u := s.Consumed()
	return pgquery.UpdateSessionParams{
		ID:                   s.ID(),
		VenueID:              d.VenueID,
		ActivityDate:         pgconv.DateToPgtype(s.ActivityDate()),
		TimeSlot:             d.TimeSlot,
		NetHeight:            d.NetHeight,
		Level:                d.Level,
		Fee:                  pgconv.IntToInt32(d.Fee),
		Note:                 pgconv.StringPtrToPgtype(d.Note),
		CapacityA:            pgconv.IntToInt32(c.A),
		CapacityB:            pgconv.IntToInt32(c.B),
		CapacityUnrestricted: pgconv.IntToInt32(c.Unrestricted),
		ConsumedA:            pgconv.IntToInt32(u.A),
		ConsumedB:            pgconv.IntToInt32(u.B),
		ConsumedUnrestricted: pgconv.IntToInt32(u.Unrestricted),
		ExpiresAt:            pgconv.TimeToPgtype(s.ExpiresAt()),
		UpdatedAt:            pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

// SessionFromRow rebuilds the aggregate; activity_date is read back as
// midnight in the calendar's zone.
func SessionFromRow(row pgquery.Sessions, cal *session.Calendar) *session.Session {
	return session.ReconstructSession(
		row.ID,
		row.OwnerID,
		pgconv.DateFromPgtype(row.ActivityDate, cal.Location()),
		session.Details{
			VenueID:   row.VenueID,
			TimeSlot:  row.TimeSlot,
			NetHeight: row.NetHeight,
			Level:     row.Level,
			Fee:       int(row.Fee),
			Note:      pgconv.StringPtrFromPgtype(row.Note),
		},
		CapacityFromRow(row),
		ConsumedFromRow(row),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CapacityFromRow(row pgquery.Sessions) capacity.Pools {
	return capacity.Pools{A: int(row.CapacityA), B: int(row.CapacityB), Unrestricted: int(row.CapacityUnrestricted)}
}

func ConsumedFromRow(row pgquery.Sessions) capacity.Pools {
	return capacity.Pools{A: int(row.ConsumedA), B: int(row.ConsumedB), Unrestricted: int(row.ConsumedUnrestricted)}
}
