package listeners

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-flow/internal/entities"
	"repair-flow/internal/events"
	"repair-flow/internal/repositories"
	"repair-flow/pkg/constants"
	"repair-flow/pkg/eventbus"
)

type capturingNotificationService struct {
	calls chan string
}

func (s *capturingNotificationService) NotifyStatusChanged(client *entities.Client, order *entities.Order) error {
	s.calls <- client.Phone + "|" + order.ID
	return nil
}

func TestNotificationListenerNotifiesClient(t *testing.T) {
	logger := zap.NewNop()
	store := repositories.NewMemoryBlobStore(0, 0)
	clientRepo := repositories.NewClientRepository(store, logger)
	bus := eventbus.New(logger)

	notifier := &capturingNotificationService{calls: make(chan string, 1)}
	NewNotificationListener(notifier, clientRepo, logger).Register(bus)

	bus.Publish(context.Background(), events.OrderStatusChangedEvent{
		Order: entities.Order{
			ID:       "1001",
			ClientID: "1", // сид: Алексей Петров, +7 999 123-45-67
			Status:   constants.StatusReady,
		},
		OldStatus: constants.StatusInProgress,
		NewStatus: constants.StatusReady,
	})

	select {
	case call := <-notifier.calls:
		assert.Equal(t, "+7 999 123-45-67|1001", call)
	case <-time.After(2 * time.Second):
		t.Fatal("уведомление не отправлено")
	}
}

func TestNotificationListenerSkipsOrphanOrder(t *testing.T) {
	logger := zap.NewNop()
	store := repositories.NewMemoryBlobStore(0, 0)
	clientRepo := repositories.NewClientRepository(store, logger)

	notifier := &capturingNotificationService{calls: make(chan string, 1)}
	listener := NewNotificationListener(notifier, clientRepo, logger)

	// client_id не проверяется внешним ключом - осиротевший заказ не валит обработчик
	err := listener.handleOrderStatusChanged(context.Background(), events.OrderStatusChangedEvent{
		Order:     entities.Order{ID: "1001", ClientID: "нет-такого", Status: constants.StatusReady},
		NewStatus: constants.StatusReady,
	})
	require.NoError(t, err)

	select {
	case <-notifier.calls:
		t.Fatal("уведомление по несуществующему клиенту")
	case <-time.After(100 * time.Millisecond):
	}
}
