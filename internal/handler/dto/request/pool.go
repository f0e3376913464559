package request

import (
	"time"

	"rifas-api/internal/usecase/commands"
)

type CreateRaffleRequest struct {
	Kind             string `json:"kind" binding:"required"`
	Name             string `json:"name" binding:"required"`
	ShortName        string `json:"shortName" binding:"required"`
	Visibility       string `json:"visibility" binding:"required"`
	Quantity         *int   `json:"quantity,omitempty"`
	TicketValueCents int64  `json:"ticketValueCents" binding:"required"`
}

func (r *CreateRaffleRequest) ToInput() commands.CreateRaffleInput {
	return commands.CreateRaffleInput{
		Kind:             r.Kind,
		Name:             r.Name,
		ShortName:        r.ShortName,
		Visibility:       r.Visibility,
		Quantity:         r.Quantity,
		TicketValueCents: r.TicketValueCents,
	}
}

type CreateEventRequest struct {
	Name             string    `json:"name" binding:"required"`
	ShortName        string    `json:"shortName" binding:"required"`
	Visibility       string    `json:"visibility" binding:"required"`
	BudgetValueCents int64     `json:"budgetValueCents"`
	StartAt          time.Time `json:"startAt" binding:"required"`
	EndAt            time.Time `json:"endAt" binding:"required"`
}

func (r *CreateEventRequest) ToInput() commands.CreateEventInput {
	return commands.CreateEventInput{
		Name:             r.Name,
		ShortName:        r.ShortName,
		Visibility:       r.Visibility,
		BudgetValueCents: r.BudgetValueCents,
		StartAt:          r.StartAt,
		EndAt:            r.EndAt,
	}
}

type UpdatePoolRequest struct {
	Name             *string    `json:"name,omitempty"`
	ShortName        *string    `json:"shortName,omitempty"`
	Visibility       *string    `json:"visibility,omitempty"`
	Quantity         *int       `json:"quantity,omitempty"`
	TicketValueCents *int64     `json:"ticketValueCents,omitempty"`
	BudgetValueCents *int64     `json:"budgetValueCents,omitempty"`
	StartAt          *time.Time `json:"startAt,omitempty"`
	EndAt            *time.Time `json:"endAt,omitempty"`
}

func (r *UpdatePoolRequest) ToInput() commands.UpdatePoolInput {
	return commands.UpdatePoolInput{
		Name:             r.Name,
		ShortName:        r.ShortName,
		Visibility:       r.Visibility,
		Quantity:         r.Quantity,
		TicketValueCents: r.TicketValueCents,
		BudgetValueCents: r.BudgetValueCents,
		StartAt:          r.StartAt,
		EndAt:            r.EndAt,
	}
}
