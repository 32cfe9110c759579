package services

import (
	"context"

	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/entities"
	"repair-flow/internal/repositories"
	apperrors "repair-flow/pkg/errors"
)

type PartServiceInterface interface {
	GetParts(ctx context.Context) ([]dto.PartDTO, error)
	CreatePart(ctx context.Context, payload dto.CreatePartDTO) (*dto.PartDTO, error)
	UpdatePart(ctx context.Context, id string, payload dto.UpdatePartDTO) (*dto.PartDTO, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (*dto.PartDTO, error)
}

type PartService struct {
	partRepo repositories.PartRepositoryInterface
	logger   *zap.Logger
}

func NewPartService(partRepo repositories.PartRepositoryInterface, logger *zap.Logger) PartServiceInterface {
	return &PartService{partRepo: partRepo, logger: logger}
}

func (s *PartService) GetParts(ctx context.Context) ([]dto.PartDTO, error) {
	parts, err := s.partRepo.GetParts(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.PartDTO, len(parts))
	for i, p := range parts {
		dtos[i] = partToDTO(&p)
	}
	return dtos, nil
}

func (s *PartService) CreatePart(ctx context.Context, payload dto.CreatePartDTO) (*dto.PartDTO, error) {
	part, err := s.partRepo.AddPart(ctx, entities.Part{
		Name:     payload.Name,
		Price:    payload.Price,
		Quantity: payload.Quantity,
		Category: payload.Category,
	})
	if err != nil {
		s.logger.Error("ошибка при создании запчасти", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Запчасть успешно создана", zap.String("id", part.ID))
	result := partToDTO(part)
	return &result, nil
}

// UpdatePart применяет типизированный patch: меняются только присланные поля.
func (s *PartService) UpdatePart(ctx context.Context, id string, payload dto.UpdatePartDTO) (*dto.PartDTO, error) {
	part, err := s.partRepo.FindPart(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name.Valid {
		part.Name = payload.Name.String
	}
	if payload.Price.Valid {
		if payload.Price.Float64 < 0 {
			return nil, apperrors.NewInvalidInputError("цена не может быть отрицательной")
		}
		part.Price = payload.Price.Float64
	}
	if payload.Quantity.Valid {
		if payload.Quantity.Int < 0 {
			return nil, apperrors.ErrNegativeStock
		}
		part.Quantity = payload.Quantity.Int
	}
	if payload.Category.Valid {
		part.Category = payload.Category.String
	}

	updated, err := s.partRepo.UpdatePart(ctx, *part)
	if err != nil {
		return nil, err
	}

	result := partToDTO(updated)
	return &result, nil
}

// AdjustQuantity двигает остаток на +/-1, ниже нуля не пускаем.
func (s *PartService) AdjustQuantity(ctx context.Context, id string, delta int) (*dto.PartDTO, error) {
	part, err := s.partRepo.FindPart(ctx, id)
	if err != nil {
		return nil, err
	}

	if part.Quantity+delta < 0 {
		return nil, apperrors.ErrNegativeStock
	}
	part.Quantity += delta

	updated, err := s.partRepo.UpdatePart(ctx, *part)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Остаток скорректирован",
		zap.String("id", id),
		zap.Int("delta", delta),
		zap.Int("quantity", updated.Quantity),
	)
	result := partToDTO(updated)
	return &result, nil
}

func partToDTO(p *entities.Part) dto.PartDTO {
	return dto.PartDTO{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Category: p.Category,
	}
}
