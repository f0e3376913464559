package response

import (
	"time"

	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type InviteResponse struct {
	ID             uuid.UUID `json:"id"`
	PoolID         uuid.UUID `json:"poolId"`
	RequesteeID    uuid.UUID `json:"requesteeId"`
	RequesteeName  string    `json:"requesteeName"`
	RequesteeEmail string    `json:"requesteeEmail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromInviteView(view *queries.InviteView) *InviteResponse {
	return &InviteResponse{
		ID:             view.ID,
		PoolID:         view.PoolID,
		RequesteeID:    view.RequesteeID,
		RequesteeName:  view.RequesteeName,
		RequesteeEmail: view.RequesteeEmail,
		Status:         view.Status,
		CreatedAt:      view.CreatedAt,
	}
}
