package request

import (
	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/usecase/commands"
)

type CreateReservationRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	A            int    `json:"a"`
	B            int    `json:"b"`
	Unrestricted int    `json:"unrestricted"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		SessionID: r.SessionID,
		Request:   capacity.Pools{A: r.A, B: r.B, Unrestricted: r.Unrestricted},
	}
}

// EditReservationRequest fields left out keep their current value.
type EditReservationRequest struct {
	A            *int `json:"a"`
	B            *int `json:"b"`
	Unrestricted *int `json:"unrestricted"`
}

func (r EditReservationRequest) ToInput(reservationID string) commands.EditReservationInput {
	return commands.EditReservationInput{
		ReservationID: reservationID,
		Request:       capacity.Patch{A: r.A, B: r.B, Unrestricted: r.Unrestricted},
	}
}
