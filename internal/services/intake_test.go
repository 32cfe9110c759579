package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/repositories"
	"repair-flow/pkg/constants"
)

func newIntakeFixture(t *testing.T) (IntakeServiceInterface, repositories.ClientRepositoryInterface, repositories.OrderRepositoryInterface) {
	t.Helper()
	logger := zap.NewNop()
	store := repositories.NewMemoryBlobStore(0, 0)
	clientRepo := repositories.NewClientRepository(store, logger)
	orderRepo := repositories.NewOrderRepository(store, logger)
	return NewIntakeService(clientRepo, orderRepo, logger), clientRepo, orderRepo
}

func TestIntakeCreatesClientAndOrder(t *testing.T) {
	svc, clientRepo, orderRepo := newIntakeFixture(t)
	ctx := context.Background()

	res, err := svc.Submit(ctx, dto.IntakeRequestDTO{
		Name:  "Иван Иванов",
		Phone: "+7 900 111-22-33",
		Model: "HP ProBook",
		Issue: "Разбит экран",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.OrderID)

	client, err := clientRepo.FindClientByPhone(ctx, "+7 900 111-22-33")
	require.NoError(t, err, "клиент с незнакомым телефоном создаётся")
	assert.Equal(t, "Иван Иванов", client.Name)
	assert.Empty(t, client.Email, "публичная форма почту не спрашивает")

	order, err := orderRepo.FindOrder(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, order.ClientID)
	assert.Equal(t, constants.StatusReceived, order.Status)
	assert.Equal(t, IntakeNotes, order.Notes)
	assert.Equal(t, "Разбит экран", order.IssueDescription)
}

func TestIntakeReusesExistingClient(t *testing.T) {
	svc, clientRepo, orderRepo := newIntakeFixture(t)
	ctx := context.Background()

	// Телефон из сида - клиент уже есть
	res, err := svc.Submit(ctx, dto.IntakeRequestDTO{
		Name:  "Совсем Другое Имя",
		Phone: "+7 999 123-45-67",
		Model: "MacBook Pro 16",
		Issue: "Не заряжается",
	})
	require.NoError(t, err)

	clients, err := clientRepo.GetClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2, "дубль клиента не создаётся")

	order, err := orderRepo.FindOrder(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "1", order.ClientID, "заказ привязан к существующему клиенту")
}
