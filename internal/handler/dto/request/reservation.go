package request

import (
	"rifas-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SlotNumbers     []int   `json:"slotNumbers" binding:"required,min=1"`
	ClaimantName    string  `json:"claimantName" binding:"required"`
	ClaimantContact *string `json:"claimantContact,omitempty"`
}

func (r *CreateReservationRequest) ToInput(poolID uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		PoolID:          poolID,
		SlotNumbers:     r.SlotNumbers,
		ClaimantName:    r.ClaimantName,
		ClaimantContact: r.ClaimantContact,
	}
}
