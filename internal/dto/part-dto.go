package dto

import "github.com/aarondl/null/v8"

type CreatePartDTO struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Category string  `json:"category"`
}

// UpdatePartDTO: типизированный patch. Непришедшее поле (Valid == false)
// не трогаем.
type UpdatePartDTO struct {
	Name     null.String  `json:"name"`
	Price    null.Float64 `json:"price"`
	Quantity null.Int     `json:"quantity"`
	Category null.String  `json:"category"`
}

// AdjustQuantityDTO: кнопки +/- на складе двигают остаток ровно на единицу.
type AdjustQuantityDTO struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

type PartDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}
