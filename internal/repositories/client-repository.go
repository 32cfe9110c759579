package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repair-flow/internal/entities"
	apperrors "repair-flow/pkg/errors"
)

type ClientRepositoryInterface interface {
	GetClients(ctx context.Context) ([]entities.Client, error)
	FindClientByID(ctx context.Context, id string) (*entities.Client, error)
	FindClientByPhone(ctx context.Context, phone string) (*entities.Client, error)
	AddClient(ctx context.Context, client entities.Client) (*entities.Client, error)
}

type ClientRepository struct {
	store  BlobStoreInterface
	logger *zap.Logger
}

func NewClientRepository(store BlobStoreInterface, logger *zap.Logger) ClientRepositoryInterface {
	return &ClientRepository{store: store, logger: logger}
}

func (r *ClientRepository) GetClients(ctx context.Context) ([]entities.Client, error) {
	data, err := r.store.Get(ctx, CollectionClients)
	if err != nil {
		return nil, err
	}
	var clients []entities.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("повреждены данные коллекции клиентов: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, id string) (*entities.Client, error) {
	clients, err := r.GetClients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, apperrors.ErrClientNotFound
}

// FindClientByPhone ищет точное совпадение строки телефона.
// Номера не нормализуются: "+7 999..." и "+7999..." - разные клиенты.
func (r *ClientRepository) FindClientByPhone(ctx context.Context, phone string) (*entities.Client, error) {
	clients, err := r.GetClients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].Phone == phone {
			return &clients[i], nil
		}
	}
	return nil, apperrors.ErrClientNotFound
}

func (r *ClientRepository) AddClient(ctx context.Context, client entities.Client) (*entities.Client, error) {
	clients, err := r.GetClients(ctx)
	if err != nil {
		return nil, err
	}

	client.ID = uuid.NewString()
	client.CreatedAt = time.Now()

	// Новые записи идут в начало списка.
	updated := append([]entities.Client{client}, clients...)
	data, err := json.Marshal(updated)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(ctx, CollectionClients, data); err != nil {
		return nil, err
	}

	r.logger.Debug("Клиент создан", zap.String("id", client.ID), zap.String("phone", client.Phone))
	return &client, nil
}
