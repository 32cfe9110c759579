package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/entities"
	"repair-flow/internal/repositories"
)

type ClientServiceInterface interface {
	GetClients(ctx context.Context) ([]dto.ClientDTO, error)
	FindClientByPhone(ctx context.Context, phone string) (*dto.ClientDTO, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error)
}

type ClientService struct {
	clientRepo repositories.ClientRepositoryInterface
	logger     *zap.Logger
}

func NewClientService(clientRepo repositories.ClientRepositoryInterface, logger *zap.Logger) ClientServiceInterface {
	return &ClientService{clientRepo: clientRepo, logger: logger}
}

func (s *ClientService) GetClients(ctx context.Context) ([]dto.ClientDTO, error) {
	clients, err := s.clientRepo.GetClients(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.ClientDTO, len(clients))
	for i, c := range clients {
		dtos[i] = clientToDTO(&c)
	}
	return dtos, nil
}

func (s *ClientService) FindClientByPhone(ctx context.Context, phone string) (*dto.ClientDTO, error) {
	client, err := s.clientRepo.FindClientByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	result := clientToDTO(client)
	return &result, nil
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	client, err := s.clientRepo.AddClient(ctx, entities.Client{
		Name:  payload.Name,
		Phone: payload.Phone,
		Email: payload.Email,
	})
	if err != nil {
		s.logger.Error("ошибка при создании клиента", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Клиент успешно создан", zap.String("id", client.ID))
	result := clientToDTO(client)
	return &result, nil
}

func clientToDTO(c *entities.Client) dto.ClientDTO {
	return dto.ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
