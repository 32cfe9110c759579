package events

import "repair-flow/internal/entities"

const OrderStatusChangedEventName = "order.status.changed"

// OrderStatusChangedEvent публикуется при смене статуса заказа.
type OrderStatusChangedEvent struct {
	Order     entities.Order
	OldStatus string
	NewStatus string
}

func (e OrderStatusChangedEvent) Name() string {
	return OrderStatusChangedEventName
}
