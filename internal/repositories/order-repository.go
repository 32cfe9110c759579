package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"repair-flow/internal/entities"
	apperrors "repair-flow/pkg/errors"
)

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context) ([]entities.Order, error)
	FindOrder(ctx context.Context, id string) (*entities.Order, error)
	AddOrder(ctx context.Context, order entities.Order) (*entities.Order, error)
	UpdateOrder(ctx context.Context, order entities.Order) (*entities.Order, error)
}

type OrderRepository struct {
	store  BlobStoreInterface
	logger *zap.Logger
}

func NewOrderRepository(store BlobStoreInterface, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{store: store, logger: logger}
}

func (r *OrderRepository) GetOrders(ctx context.Context) ([]entities.Order, error) {
	data, err := r.store.Get(ctx, CollectionOrders)
	if err != nil {
		return nil, err
	}
	var orders []entities.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("повреждены данные коллекции заказов: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) FindOrder(ctx context.Context, id string) (*entities.Order, error) {
	orders, err := r.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, apperrors.ErrOrderNotFound
}

func (r *OrderRepository) AddOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	orders, err := r.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	order.ID = newOrderID(orders)
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Parts = []entities.OrderPart{}
	order.LaborCost = 0

	updated := append([]entities.Order{order}, orders...)
	if err := r.saveOrders(ctx, updated); err != nil {
		return nil, err
	}

	r.logger.Debug("Заказ создан", zap.String("id", order.ID), zap.String("client_id", order.ClientID))
	return &order, nil
}

// UpdateOrder заменяет заказ с тем же id и обновляет updated_at.
// Несуществующий id - громкая ошибка.
func (r *OrderRepository) UpdateOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	orders, err := r.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	order.UpdatedAt = time.Now()
	found := false
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrOrderNotFound
	}

	if err := r.saveOrders(ctx, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) saveOrders(ctx context.Context, orders []entities.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, CollectionOrders, data)
}

// newOrderID выдаёт короткий четырёхзначный номер - такой удобно
// диктовать по телефону. Пространство id заказов отдельное от uuid
// клиентов и запчастей.
func newOrderID(existing []entities.Order) string {
	taken := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		taken[o.ID] = struct{}{}
	}
	for {
		id := strconv.Itoa(rand.Intn(9000) + 1000)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}
