package dto

import (
	"github.com/aarondl/null/v8"

	"repair-flow/internal/entities"
)

type CreateOrderDTO struct {
	ClientID         string `json:"client_id" validate:"required"`
	Model            string `json:"model" validate:"required"`
	IssueDescription string `json:"issue_description" validate:"required"`
	Status           string `json:"status" validate:"omitempty,oneof=received in_progress ready completed"`
	Notes            string `json:"notes"`
}

// UpdateOrderDTO: типизированный patch заказа. Статус принимается как есть,
// без проверки направления перехода — хранилище этого никогда не навязывало,
// вперёд двигает только админка.
type UpdateOrderDTO struct {
	Model            null.String  `json:"model"`
	IssueDescription null.String  `json:"issue_description"`
	Status           null.String  `json:"status"`
	LaborCost        null.Float64 `json:"labor_cost"`
	Notes            null.String  `json:"notes"`
}

type AttachPartDTO struct {
	PartID string `json:"part_id" validate:"required"`
}

// OrderStatusDTO - справочник статусов для селектов и бейджей админки.
type OrderStatusDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type OrderPartDTO struct {
	PartID     string  `json:"part_id"`
	Quantity   int     `json:"quantity"`
	PriceAtAdd float64 `json:"price_at_add"`
	Name       string  `json:"name"`
}

type OrderDTO struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"client_id"`
	ClientName       string         `json:"client_name,omitempty"`
	Model            string         `json:"model"`
	IssueDescription string         `json:"issue_description"`
	Status           string         `json:"status"`
	StatusLabel      string         `json:"status_label"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
	Parts            []OrderPartDTO `json:"parts"`
	LaborCost        float64        `json:"labor_cost"`
	Notes            string         `json:"notes"`
	Total            float64        `json:"total"`
}

func OrderPartsToDTO(parts []entities.OrderPart) []OrderPartDTO {
	dtos := make([]OrderPartDTO, len(parts))
	for i, p := range parts {
		dtos[i] = OrderPartDTO{
			PartID:     p.PartID,
			Quantity:   p.Quantity,
			PriceAtAdd: p.PriceAtAdd,
			Name:       p.Name,
		}
	}
	return dtos
}
