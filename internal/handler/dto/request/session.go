package request

import (
	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/usecase/commands"
)

type PoolsRequest struct {
	A            int `json:"a" binding:"min=0,max=10000"`
	B            int `json:"b" binding:"min=0,max=10000"`
	Unrestricted int `json:"unrestricted" binding:"min=0,max=10000"`
}

type PoolsPatchRequest struct {
	A            *int `json:"a" binding:"omitempty,min=0,max=10000"`
	B            *int `json:"b" binding:"omitempty,min=0,max=10000"`
	Unrestricted *int `json:"unrestricted" binding:"omitempty,min=0,max=10000"`
}

type CreateSessionRequest struct {
	VenueID      string       `json:"venue_id" binding:"required"`
	ActivityDate string       `json:"activity_date" binding:"required"`
	TimeSlot     string       `json:"time_slot" binding:"required,max=50"`
	NetHeight    string       `json:"net_height" binding:"required"`
	Level        string       `json:"level" binding:"required,max=50"`
	Fee          int          `json:"fee" binding:"min=0,max=1000000"`
	Note         *string      `json:"note,omitempty" binding:"omitempty,max=500"`
	Capacity     PoolsRequest `json:"capacity"`
}

func (r CreateSessionRequest) ToInput() commands.CreateSessionInput {
	return commands.CreateSessionInput{
		VenueID:      r.VenueID,
		ActivityDate: r.ActivityDate,
		TimeSlot:     r.TimeSlot,
		NetHeight:    r.NetHeight,
		Level:        r.Level,
		Fee:          r.Fee,
		Note:         r.Note,
		Capacity:     capacity.Pools{A: r.Capacity.A, B: r.Capacity.B, Unrestricted: r.Capacity.Unrestricted},
	}
}

type EditSessionRequest struct {
	VenueID      *string            `json:"venue_id,omitempty"`
	ActivityDate *string            `json:"activity_date,omitempty"`
	TimeSlot     *string            `json:"time_slot,omitempty" binding:"omitempty,max=50"`
	NetHeight    *string            `json:"net_height,omitempty"`
	Level        *string            `json:"level,omitempty" binding:"omitempty,max=50"`
	Fee          *int               `json:"fee,omitempty" binding:"omitempty,min=0,max=1000000"`
	Note         *string            `json:"note,omitempty" binding:"omitempty,max=500"`
	Capacity     *PoolsPatchRequest `json:"capacity,omitempty"`
}

func (r EditSessionRequest) ToInput(sessionID string) commands.EditSessionInput {
	in := commands.EditSessionInput{
		SessionID:    sessionID,
		VenueID:      r.VenueID,
		ActivityDate: r.ActivityDate,
		TimeSlot:     r.TimeSlot,
		NetHeight:    r.NetHeight,
		Level:        r.Level,
		Fee:          r.Fee,
		Note:         r.Note,
	}
	if r.Capacity != nil {
		in.Capacity = capacity.Patch{A: r.Capacity.A, B: r.Capacity.B, Unrestricted: r.Capacity.Unrestricted}
	}
	return in
}
