package entities

import "time"

// OrderPart - снимок запчасти, привязанной к заказу.
// Цена фиксируется в момент добавления и не следует за прайсом склада.
type OrderPart struct {
	PartID     string  `json:"part_id"`
	Quantity   int     `json:"quantity"`
	PriceAtAdd float64 `json:"price_at_add"`
	Name       string  `json:"name"`
}

type Order struct {
	ID               string      `json:"id"`
	ClientID         string      `json:"client_id"`
	Model            string      `json:"model"`
	IssueDescription string      `json:"issue_description"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	Parts            []OrderPart `json:"parts"`
	LaborCost        float64     `json:"labor_cost"`
	Notes            string      `json:"notes"`
}

// CalculateOrderTotal = сумма (price_at_add * quantity) по всем позициям + работа.
func CalculateOrderTotal(order *Order) float64 {
	var partsTotal float64
	for _, item := range order.Parts {
		partsTotal += item.PriceAtAdd * float64(item.Quantity)
	}
	return partsTotal + order.LaborCost
}

// FindPart возвращает позицию заказа по id запчасти, nil если её нет.
func (o *Order) FindPart(partID string) *OrderPart {
	for i := range o.Parts {
		if o.Parts[i].PartID == partID {
			return &o.Parts[i]
		}
	}
	return nil
}
