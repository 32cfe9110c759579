package listeners

import (
	"context"

	"go.uber.org/zap"

	"repair-flow/internal/events"
	"repair-flow/internal/repositories"
	"repair-flow/internal/services"
	"repair-flow/pkg/eventbus"
)

// NotificationListener слушает смену статуса заказа и дёргает канал
// уведомлений. Подписан только на ready/completed - сервис заказов
// другие переходы не публикует.
type NotificationListener struct {
	notificationService services.NotificationServiceInterface
	clientRepo          repositories.ClientRepositoryInterface
	logger              *zap.Logger
}

func NewNotificationListener(
	notificationService services.NotificationServiceInterface,
	clientRepo repositories.ClientRepositoryInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		notificationService: notificationService,
		clientRepo:          clientRepo,
		logger:              logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderStatusChangedEventName, l.handleOrderStatusChanged)
	l.logger.Info("NotificationListener подписан на событие 'order.status.changed'")
}

func (l *NotificationListener) handleOrderStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderStatusChangedEvent)
	if !ok {
		return nil
	}

	client, err := l.clientRepo.FindClientByID(ctx, e.Order.ClientID)
	if err != nil {
		// client_id в заказе не проверяется внешним ключом, осиротевший
		// заказ просто некому уведомлять.
		l.logger.Warn("клиент заказа не найден, уведомление не отправлено",
			zap.String("order_id", e.Order.ID),
			zap.String("client_id", e.Order.ClientID),
			zap.Error(err),
		)
		return nil
	}

	return l.notificationService.NotifyStatusChanged(client, &e.Order)
}
