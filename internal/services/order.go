package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/entities"
	"repair-flow/internal/events"
	"repair-flow/internal/repositories"
	"repair-flow/pkg/constants"
	apperrors "repair-flow/pkg/errors"
	"repair-flow/pkg/eventbus"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, search, status string) ([]dto.OrderDTO, error)
	FindOrder(ctx context.Context, id string) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error)
	UpdateOrder(ctx context.Context, id string, payload dto.UpdateOrderDTO) (*dto.OrderDTO, error)
	AttachPart(ctx context.Context, orderID, partID string) (*dto.OrderDTO, error)
}

type OrderService struct {
	orderRepo  repositories.OrderRepositoryInterface
	clientRepo repositories.ClientRepositoryInterface
	partRepo   repositories.PartRepositoryInterface
	bus        *eventbus.Bus
	logger     *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	partRepo repositories.PartRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		partRepo:   partRepo,
		bus:        bus,
		logger:     logger,
	}
}

// GetOrders отдаёт список с фильтрацией админки: подстрока search ищется
// без учёта регистра в номере заказа, модели и имени клиента; status -
// точный фильтр, пустая строка или "all" - без фильтра.
func (s *OrderService) GetOrders(ctx context.Context, search, status string) ([]dto.OrderDTO, error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	result := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		clientName := names[order.ClientID]

		if status != "" && status != "all" && order.Status != status {
			continue
		}
		if needle != "" {
			matches := strings.Contains(strings.ToLower(order.ID), needle) ||
				strings.Contains(strings.ToLower(order.Model), needle) ||
				strings.Contains(strings.ToLower(clientName), needle)
			if !matches {
				continue
			}
		}

		result = append(result, orderToDTO(order, clientName))
	}
	return result, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id string) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	result := orderToDTO(order, names[order.ClientID])
	return &result, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	status := payload.Status
	if status == "" {
		status = constants.StatusReceived
	}

	order, err := s.orderRepo.AddOrder(ctx, entities.Order{
		ClientID:         payload.ClientID,
		Model:            payload.Model,
		IssueDescription: payload.IssueDescription,
		Status:           status,
		Notes:            payload.Notes,
	})
	if err != nil {
		s.logger.Error("ошибка при создании заказа", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Заказ успешно создан", zap.String("id", order.ID))
	result := orderToDTO(order, "")
	return &result, nil
}

// UpdateOrder применяет типизированный patch. Любое значение статуса
// принимается без проверки направления перехода; при переходе в ready
// или completed публикуется событие для уведомления клиента.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, payload dto.UpdateOrderDTO) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := order.Status

	if payload.Model.Valid {
		order.Model = payload.Model.String
	}
	if payload.IssueDescription.Valid {
		order.IssueDescription = payload.IssueDescription.String
	}
	if payload.Status.Valid {
		if !constants.IsValidStatus(payload.Status.String) {
			return nil, apperrors.NewInvalidInputError("неизвестный статус: %s", payload.Status.String)
		}
		order.Status = payload.Status.String
	}
	if payload.LaborCost.Valid {
		if payload.LaborCost.Float64 < 0 {
			return nil, apperrors.NewInvalidInputError("стоимость работ не может быть отрицательной")
		}
		order.LaborCost = payload.LaborCost.Float64
	}
	if payload.Notes.Valid {
		order.Notes = payload.Notes.String
	}

	updated, err := s.orderRepo.UpdateOrder(ctx, *order)
	if err != nil {
		return nil, err
	}

	if updated.Status != oldStatus && constants.IsNotifiableStatus(updated.Status) {
		s.bus.Publish(ctx, events.OrderStatusChangedEvent{
			Order:     *updated,
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		})
	}

	names, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	result := orderToDTO(updated, names[updated.ClientID])
	return &result, nil
}

// AttachPart привязывает запчасть к заказу и списывает ровно одну штуку
// со склада. Нулевой остаток отклоняется до любых изменений. Повторная
// привязка той же запчасти увеличивает количество в существующей позиции,
// сохраняя цену первого добавления.
//
// Записей две (заказ, потом склад) и транзакции между ними нет. Заказ
// пишется первым: если второй шаг сорвётся, получится позиция без
// списания - это видно и чинится сверкой, в отличие от тихо пропавшего
// остатка.
func (s *OrderService) AttachPart(ctx context.Context, orderID, partID string) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	part, err := s.partRepo.FindPart(ctx, partID)
	if err != nil {
		return nil, err
	}

	if part.Quantity <= 0 {
		return nil, apperrors.ErrOutOfStock
	}

	if existing := order.FindPart(partID); existing != nil {
		existing.Quantity++
	} else {
		order.Parts = append(order.Parts, entities.OrderPart{
			PartID:     part.ID,
			Quantity:   1,
			PriceAtAdd: part.Price,
			Name:       part.Name,
		})
	}

	updated, err := s.orderRepo.UpdateOrder(ctx, *order)
	if err != nil {
		return nil, err
	}

	part.Quantity--
	if _, err := s.partRepo.UpdatePart(ctx, *part); err != nil {
		s.logger.Error("запчасть привязана к заказу, но списание со склада не прошло",
			zap.String("order_id", orderID),
			zap.String("part_id", partID),
			zap.Error(err),
		)
		return nil, err
	}

	names, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	result := orderToDTO(updated, names[updated.ClientID])
	return &result, nil
}

func (s *OrderService) clientNames(ctx context.Context) (map[string]string, error) {
	clients, err := s.clientRepo.GetClients(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names, nil
}

func orderToDTO(order *entities.Order, clientName string) dto.OrderDTO {
	return dto.OrderDTO{
		ID:               order.ID,
		ClientID:         order.ClientID,
		ClientName:       clientName,
		Model:            order.Model,
		IssueDescription: order.IssueDescription,
		Status:           order.Status,
		StatusLabel:      constants.StatusLabels[order.Status],
		CreatedAt:        order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        order.UpdatedAt.Format(time.RFC3339),
		Parts:            dto.OrderPartsToDTO(order.Parts),
		LaborCost:        order.LaborCost,
		Notes:            order.Notes,
		Total:            entities.CalculateOrderTotal(order),
	}
}
