package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/entities"
	"repair-flow/internal/repositories"
	"repair-flow/pkg/constants"
	apperrors "repair-flow/pkg/errors"
)

// IntakeNotes - пометка, по которой в заказе видно, что заявка пришла с сайта.
const IntakeNotes = "Заявка с сайта"

type IntakeServiceInterface interface {
	Submit(ctx context.Context, payload dto.IntakeRequestDTO) (*dto.IntakeResponseDTO, error)
}

type IntakeService struct {
	clientRepo repositories.ClientRepositoryInterface
	orderRepo  repositories.OrderRepositoryInterface
	logger     *zap.Logger
}

func NewIntakeService(
	clientRepo repositories.ClientRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	logger *zap.Logger,
) IntakeServiceInterface {
	return &IntakeService{clientRepo: clientRepo, orderRepo: orderRepo, logger: logger}
}

// Submit: find-or-create клиента по точному совпадению телефона,
// затем заказ со статусом "received". Номер заказа возвращаем отправителю.
func (s *IntakeService) Submit(ctx context.Context, payload dto.IntakeRequestDTO) (*dto.IntakeResponseDTO, error) {
	client, err := s.clientRepo.FindClientByPhone(ctx, payload.Phone)
	if errors.Is(err, apperrors.ErrClientNotFound) {
		client, err = s.clientRepo.AddClient(ctx, entities.Client{
			Name:  payload.Name,
			Phone: payload.Phone,
			Email: "", // в публичной форме почта не спрашивается
		})
	}
	if err != nil {
		s.logger.Error("ошибка при поиске/создании клиента из заявки", zap.Error(err))
		return nil, err
	}

	order, err := s.orderRepo.AddOrder(ctx, entities.Order{
		ClientID:         client.ID,
		Model:            payload.Model,
		IssueDescription: payload.Issue,
		Status:           constants.StatusReceived,
		Notes:            IntakeNotes,
	})
	if err != nil {
		s.logger.Error("ошибка при создании заказа из заявки", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Принята заявка с сайта",
		zap.String("order_id", order.ID),
		zap.String("client_id", client.ID),
	)
	return &dto.IntakeResponseDTO{OrderID: order.ID}, nil
}
