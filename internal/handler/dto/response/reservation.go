package response

import (
	"time"

	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	PoolID          uuid.UUID `json:"poolId"`
	SlotNumbers     []int     `json:"slotNumbers"`
	ClaimantName    string    `json:"claimantName"`
	ClaimantContact *string   `json:"claimantContact,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              view.ID,
		PoolID:          view.PoolID,
		SlotNumbers:     view.SlotNumbers,
		ClaimantName:    view.ClaimantName,
		ClaimantContact: view.ClaimantContact,
		CreatedAt:       view.CreatedAt,
	}
}
