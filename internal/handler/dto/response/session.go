package response

import (
	"fmt"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PoolsResponse struct {
	A            int `json:"a"`
	B            int `json:"b"`
	Unrestricted int `json:"unrestricted"`
}

type SessionResponse struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	VenueID      uuid.UUID     `json:"venue_id"`
	ActivityDate string        `json:"activity_date" copier:"-"`
	TimeSlot     string        `json:"time_slot"`
	NetHeight    string        `json:"net_height"`
	Level        string        `json:"level"`
	Fee          int           `json:"fee"`
	Note         *string       `json:"note,omitempty"`
	Capacity     PoolsResponse `json:"capacity"`
	Consumed     PoolsResponse `json:"consumed"`
	Available    PoolsResponse `json:"available"`
	ExpiresAt    time.Time     `json:"expires_at"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type SessionEditResponse struct {
	Session             SessionResponse `json:"session"`
	UpdatedReservations int64           `json:"updated_reservations"`
}

type DeleteSessionResponse struct {
	SessionID           uuid.UUID `json:"session_id"`
	RemovedReservations int64     `json:"removed_reservations"`
}

func FromSessionView(v *queries.SessionView) SessionResponse {
	var out SessionResponse
	mustCopy(&out, v)
	out.ActivityDate = v.ActivityDate.Format(session.DateLayout)
	return out
}

func FromSessionViews(vs []*queries.SessionView) []SessionResponse {
	out := make([]SessionResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromSessionView(v))
	}
	return out
}

func FromSessionSnapshot(s *commands.SessionSnapshot) SessionResponse {
	var out SessionResponse
	mustCopy(&out, s)
	out.ActivityDate = s.ActivityDate.Format(session.DateLayout)
	return out
}

func FromSessionResult(r *commands.SessionResult) SessionEditResponse {
	return SessionEditResponse{
		Session:             FromSessionSnapshot(&r.Session),
		UpdatedReservations: r.UpdatedReservations,
	}
}

func FromDeleteSessionResult(r *commands.DeleteSessionResult) DeleteSessionResponse {
	return DeleteSessionResponse{
		SessionID:           r.SessionID,
		RemovedReservations: r.RemovedReservations,
	}
}

// mustCopy maps between structs whose shapes are fixed at compile time, so a
// copier failure is a programming error.
func mustCopy(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", from, to, err))
	}
}
