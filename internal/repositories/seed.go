package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"repair-flow/internal/entities"
	"repair-flow/pkg/constants"
)

// Стартовые данные: мастерская не должна встречать админа пустыми экранами.
// Состав фиксированный - два клиента, пять запчастей, два заказа.

func seedClients(now time.Time) []entities.Client {
	return []entities.Client{
		{ID: "1", Name: "Алексей Петров", Phone: "+7 999 123-45-67", Email: "alex@example.com", CreatedAt: now},
		{ID: "2", Name: "Мария Иванова", Phone: "+7 999 987-65-43", Email: "maria@example.com", CreatedAt: now},
	}
}

func seedParts() []entities.Part {
	return []entities.Part{
		{ID: "1", Name: "SSD Samsung 500GB", Price: 5500, Quantity: 5, Category: "Накопители"},
		{ID: "2", Name: "Матрица 15.6\" IPS", Price: 8000, Quantity: 2, Category: "Экраны"},
		{ID: "3", Name: "Термопаста Arctic MX-4", Price: 800, Quantity: 15, Category: "Расходники"},
		{ID: "4", Name: "Клавиатура MacBook Pro", Price: 12000, Quantity: 1, Category: "Клавиатуры"},
		{ID: "5", Name: "ОЗУ DDR4 8GB", Price: 3200, Quantity: 8, Category: "Память"},
	}
}

func seedOrders(now time.Time) []entities.Order {
	return []entities.Order{
		{
			ID:               "1001",
			ClientID:         "1",
			Model:            "MacBook Pro 13 2019",
			IssueDescription: "Греется, шумит вентилятор",
			Status:           constants.StatusReceived,
			CreatedAt:        now.Add(-48 * time.Hour),
			UpdatedAt:        now,
			Parts:            []entities.OrderPart{},
			LaborCost:        0,
			Notes:            "",
		},
		{
			ID:               "1002",
			ClientID:         "2",
			Model:            "Asus ROG Zephyrus",
			IssueDescription: "Не включается после залития",
			Status:           constants.StatusInProgress,
			CreatedAt:        now.Add(-5 * 24 * time.Hour),
			UpdatedAt:        now,
			Parts: []entities.OrderPart{
				{PartID: "3", Quantity: 1, PriceAtAdd: 800, Name: "Термопаста Arctic MX-4"},
			},
			LaborCost: 5000,
			Notes:     "Чистка платы завершена, требуется замена контроллера питания.",
		},
	}
}

// seedData возвращает стартовый JSON для коллекции.
func seedData(collection string) ([]byte, error) {
	now := time.Now()
	switch collection {
	case CollectionClients:
		return json.Marshal(seedClients(now))
	case CollectionParts:
		return json.Marshal(seedParts())
	case CollectionOrders:
		return json.Marshal(seedOrders(now))
	default:
		return nil, fmt.Errorf("неизвестная коллекция: %s", collection)
	}
}
