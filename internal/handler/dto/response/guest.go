package response

import (
	"time"

	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID                  uuid.UUID `json:"id"`
	PoolID              uuid.UUID `json:"poolId"`
	Name                string    `json:"name"`
	ContactInfo         *string   `json:"contactInfo,omitempty"`
	QRImageURL          string    `json:"qrImageUrl"`
	IsPresenceConfirmed bool      `json:"isPresenceConfirmed"`
	IsPresentInEvent    bool      `json:"isPresentInEvent"`
	CreatedAt           time.Time `json:"createdAt"`
}

func FromGuestView(view *queries.GuestView) *GuestResponse {
	return &GuestResponse{
		ID:                  view.ID,
		PoolID:              view.PoolID,
		Name:                view.Name,
		ContactInfo:         view.ContactInfo,
		QRImageURL:          view.QRImageURL,
		IsPresenceConfirmed: view.IsPresenceConfirmed,
		IsPresentInEvent:    view.IsPresentInEvent,
		CreatedAt:           view.CreatedAt,
	}
}

type GroupResponse struct {
	ID         uuid.UUID       `json:"id"`
	PoolID     uuid.UUID       `json:"poolId"`
	Name       string          `json:"name"`
	IsFamily   bool            `json:"isFamily"`
	QRImageURL string          `json:"qrImageUrl"`
	Guests     []GuestResponse `json:"guests"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func FromGroupView(view *queries.GroupView) *GroupResponse {
	guests := make([]GuestResponse, len(view.Guests))
	for i := range view.Guests {
		guests[i] = *FromGuestView(&view.Guests[i])
	}
	return &GroupResponse{
		ID:         view.ID,
		PoolID:     view.PoolID,
		Name:       view.Name,
		IsFamily:   view.IsFamily,
		QRImageURL: view.QRImageURL,
		Guests:     guests,
		CreatedAt:  view.CreatedAt,
	}
}

// TokenHolderResponse carries exactly one of guest or group.
type TokenHolderResponse struct {
	Guest *GuestResponse `json:"guest,omitempty"`
	Group *GroupResponse `json:"group,omitempty"`
}

func FromTokenHolderView(view *queries.TokenHolderView) *TokenHolderResponse {
	resp := &TokenHolderResponse{}
	if view.Guest != nil {
		resp.Guest = FromGuestView(view.Guest)
	}
	if view.Group != nil {
		resp.Group = FromGroupView(view.Group)
	}
	return resp
}
