package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PoolView struct {
	ID               uuid.UUID   `json:"id"`
	OwnerID          uuid.UUID   `json:"owner_id"`
	Kind             string      `json:"kind"`
	Name             string      `json:"name"`
	ShortName        string      `json:"short_name"`
	Visibility       string      `json:"visibility"`
	Quantity         *int        `json:"quantity,omitempty"`
	TicketValueCents *int64      `json:"ticket_value_cents,omitempty"`
	BudgetValueCents *int64      `json:"budget_value_cents,omitempty"`
	StartAt          *time.Time  `json:"start_at,omitempty"`
	EndAt            *time.Time  `json:"end_at,omitempty"`
	InviteCode       string      `json:"invite_code"`
	SharedUserIDs    []uuid.UUID `json:"shared_user_ids"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type PoolListItem struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	CreatedAt time.Time `json:"created_at"`
}

// PoolProgressView is the sold/total counter shown on a numbered raffle.
type PoolProgressView struct {
	Quantity  int `json:"quantity"`
	SoldCount int `json:"sold_count"`
}

type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	PoolID          uuid.UUID `json:"pool_id"`
	SlotNumbers     []int     `json:"slot_numbers"`
	ClaimantName    string    `json:"claimant_name"`
	ClaimantContact *string   `json:"claimant_contact,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// InviteView is a pending request joined with the requester's public
// profile, for display to the pool owner.
type InviteView struct {
	ID             uuid.UUID `json:"id"`
	PoolID         uuid.UUID `json:"pool_id"`
	RequesteeID    uuid.UUID `json:"requestee_id"`
	RequesteeName  string    `json:"requestee_name"`
	RequesteeEmail string    `json:"requestee_email"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type GuestView struct {
	ID                  uuid.UUID `json:"id"`
	PoolID              uuid.UUID `json:"pool_id"`
	Name                string    `json:"name"`
	ContactInfo         *string   `json:"contact_info,omitempty"`
	QRImageURL          string    `json:"qr_image_url"`
	IsPresenceConfirmed bool      `json:"is_presence_confirmed"`
	IsPresentInEvent    bool      `json:"is_present_in_event"`
	CreatedAt           time.Time `json:"created_at"`
}

type GroupView struct {
	ID         uuid.UUID   `json:"id"`
	PoolID     uuid.UUID   `json:"pool_id"`
	Name       string      `json:"name"`
	IsFamily   bool        `json:"is_family"`
	QRImageURL string      `json:"qr_image_url"`
	Guests     []GuestView `json:"guests"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TokenHolderView is what a scanned credential resolves to: exactly one
// guest or one group, never anything wider.
type TokenHolderView struct {
	Guest *GuestView `json:"guest,omitempty"`
	Group *GroupView `json:"group,omitempty"`
}

func (v TokenHolderView) IsGroup() bool { return v.Group != nil }

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}
