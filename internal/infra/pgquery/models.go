package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxEvents struct {
	ID          uuid.UUID          `json:"id"`
	Topic       string             `json:"topic"`
	Payload     []byte             `json:"payload"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
}

type Reservations struct {
	ID           uuid.UUID          `json:"id"`
	SessionID    uuid.UUID          `json:"session_id"`
	UserID       uuid.UUID          `json:"user_id"`
	A            int32              `json:"a"`
	B            int32              `json:"b"`
	Unrestricted int32              `json:"unrestricted"`
	ExpiresAt    pgtype.Timestamptz `json:"expires_at"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Sessions struct {
	ID                   uuid.UUID          `json:"id"`
	OwnerID              uuid.UUID          `json:"owner_id"`
	VenueID              uuid.UUID          `json:"venue_id"`
	ActivityDate         pgtype.Date        `json:"activity_date"`
	TimeSlot             string             `json:"time_slot"`
	NetHeight            string             `json:"net_height"`
	Level                string             `json:"level"`
	Fee                  int32              `json:"fee"`
	Note                 pgtype.Text        `json:"note"`
	CapacityA            int32              `json:"capacity_a"`
	CapacityB            int32              `json:"capacity_b"`
	CapacityUnrestricted int32              `json:"capacity_unrestricted"`
	ConsumedA            int32              `json:"consumed_a"`
	ConsumedB            int32              `json:"consumed_b"`
	ConsumedUnrestricted int32              `json:"consumed_unrestricted"`
	ExpiresAt            pgtype.Timestamptz `json:"expires_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
}
