package response

import (
	"time"

	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PoolResponse struct {
	ID               uuid.UUID   `json:"id"`
	OwnerID          uuid.UUID   `json:"ownerId"`
	Kind             string      `json:"kind"`
	Name             string      `json:"name"`
	ShortName        string      `json:"shortName"`
	Visibility       string      `json:"visibility"`
	Quantity         *int        `json:"quantity,omitempty"`
	TicketValueCents *int64      `json:"ticketValueCents,omitempty"`
	BudgetValueCents *int64      `json:"budgetValueCents,omitempty"`
	StartAt          *time.Time  `json:"startAt,omitempty"`
	EndAt            *time.Time  `json:"endAt,omitempty"`
	InviteCode       string      `json:"inviteCode"`
	InviteURI        string      `json:"inviteUri"`
	SharedUserIDs    []uuid.UUID `json:"sharedUserIds"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// FromPoolView maps field-for-field via copier; the invite URI is derived
// here because it depends on the deployment's public base URL.
func FromPoolView(view *queries.PoolView, publicBaseURL string) *PoolResponse {
	var resp PoolResponse
	_ = copier.Copy(&resp, view)
	resp.InviteURI = publicBaseURL + "/invite/" + view.InviteCode
	return &resp
}

type PoolListResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	ShortName string    `json:"shortName"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromPoolListItem(item *queries.PoolListItem) *PoolListResponse {
	var resp PoolListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

type PoolProgressResponse struct {
	Quantity  int `json:"quantity"`
	SoldCount int `json:"soldCount"`
}

type RotateInviteCodeResponse struct {
	InviteCode string `json:"inviteCode"`
	InviteURI  string `json:"inviteUri"`
}
