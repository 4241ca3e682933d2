package response

import (
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID     `json:"id"`
	SessionID uuid.UUID     `json:"session_id"`
	UserID    uuid.UUID     `json:"user_id"`
	Request   PoolsResponse `json:"request"`
	ExpiresAt time.Time     `json:"expires_at"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type SessionSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	VenueID      uuid.UUID `json:"venue_id"`
	ActivityDate string    `json:"activity_date" copier:"-"`
	TimeSlot     string    `json:"time_slot"`
	Level        string    `json:"level"`
	Fee          int       `json:"fee"`
}

type MyReservationResponse struct {
	ReservationResponse
	Session SessionSummaryResponse `json:"session"`
}

type ReservationResultResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Session     SessionResponse     `json:"session"`
}

type CancelReservationResponse struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	Session       SessionResponse `json:"session"`
}

type CheckReservationResponse struct {
	SessionID     uuid.UUID  `json:"session_id"`
	Reserved      bool       `json:"reserved"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
}

func FromReservationView(v *queries.ReservationView) ReservationResponse {
	var out ReservationResponse
	mustCopy(&out, v)
	return out
}

func FromReservationViews(vs []*queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v))
	}
	return out
}

func FromMyReservationViews(vs []*queries.MyReservationView) []MyReservationResponse {
	out := make([]MyReservationResponse, 0, len(vs))
	for _, v := range vs {
		var summary SessionSummaryResponse
		mustCopy(&summary, &v.Session)
		summary.ActivityDate = v.Session.ActivityDate.Format(session.DateLayout)
		out = append(out, MyReservationResponse{
			ReservationResponse: FromReservationView(&v.ReservationView),
			Session:             summary,
		})
	}
	return out
}

func FromReservationResult(r *commands.ReservationResult) ReservationResultResponse {
	var reservation ReservationResponse
	mustCopy(&reservation, &r.Reservation)
	return ReservationResultResponse{
		Reservation: reservation,
		Session:     FromSessionSnapshot(&r.Session),
	}
}

func FromCancelResult(r *commands.CancelResult) CancelReservationResponse {
	return CancelReservationResponse{
		ReservationID: r.ReservationID,
		Session:       FromSessionSnapshot(&r.Session),
	}
}

func FromCheckView(v *queries.CheckView) CheckReservationResponse {
	return CheckReservationResponse{
		SessionID:     v.SessionID,
		Reserved:      v.Reserved,
		ReservationID: v.ReservationID,
	}
}
