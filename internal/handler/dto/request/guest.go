package request

import (
	"rifas-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactInfo *string `json:"contactInfo,omitempty"`
}

func (r *CreateGuestRequest) ToInput(poolID uuid.UUID) commands.IssueGuestInput {
	return commands.IssueGuestInput{
		PoolID:      poolID,
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
	}
}

type CreateGroupRequest struct {
	Name     string      `json:"name" binding:"required"`
	IsFamily bool        `json:"isFamily"`
	GuestIDs []uuid.UUID `json:"guestIds" binding:"required,min=2"`
}

func (r *CreateGroupRequest) ToInput(poolID uuid.UUID) commands.IssueGroupInput {
	return commands.IssueGroupInput{
		PoolID:   poolID,
		Name:     r.Name,
		IsFamily: r.IsFamily,
		GuestIDs: r.GuestIDs,
	}
}

type UpdateGroupRequest struct {
	Name            *string     `json:"name,omitempty"`
	IsFamily        *bool       `json:"isFamily,omitempty"`
	ReplaceGuestIDs []uuid.UUID `json:"replaceGuestIds,omitempty"`
	AddGuestIDs     []uuid.UUID `json:"addGuestIds,omitempty"`
}

func (r *UpdateGroupRequest) ToInput() commands.UpdateGroupInput {
	return commands.UpdateGroupInput{
		Name:            r.Name,
		IsFamily:        r.IsFamily,
		ReplaceGuestIDs: r.ReplaceGuestIDs,
		AddGuestIDs:     r.AddGuestIDs,
	}
}

// ConfirmPresenceRequest and CheckInRequest act on a credential token; the
// optional guestId narrows a group token to a single member.
type ConfirmPresenceRequest struct {
	Confirmed *bool      `json:"confirmed" binding:"required"`
	GuestID   *uuid.UUID `json:"guestId,omitempty"`
}

type CheckInRequest struct {
	Present *bool      `json:"present" binding:"required"`
	GuestID *uuid.UUID `json:"guestId,omitempty"`
}
