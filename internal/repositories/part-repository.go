package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repair-flow/internal/entities"
	apperrors "repair-flow/pkg/errors"
)

type PartRepositoryInterface interface {
	GetParts(ctx context.Context) ([]entities.Part, error)
	FindPart(ctx context.Context, id string) (*entities.Part, error)
	AddPart(ctx context.Context, part entities.Part) (*entities.Part, error)
	UpdatePart(ctx context.Context, part entities.Part) (*entities.Part, error)
}

type PartRepository struct {
	store  BlobStoreInterface
	logger *zap.Logger
}

func NewPartRepository(store BlobStoreInterface, logger *zap.Logger) PartRepositoryInterface {
	return &PartRepository{store: store, logger: logger}
}

func (r *PartRepository) GetParts(ctx context.Context) ([]entities.Part, error) {
	data, err := r.store.Get(ctx, CollectionParts)
	if err != nil {
		return nil, err
	}
	var parts []entities.Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("повреждены данные коллекции запчастей: %w", err)
	}
	return parts, nil
}

func (r *PartRepository) FindPart(ctx context.Context, id string) (*entities.Part, error) {
	parts, err := r.GetParts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range parts {
		if parts[i].ID == id {
			return &parts[i], nil
		}
	}
	return nil, apperrors.ErrPartNotFound
}

func (r *PartRepository) AddPart(ctx context.Context, part entities.Part) (*entities.Part, error) {
	parts, err := r.GetParts(ctx)
	if err != nil {
		return nil, err
	}

	part.ID = uuid.NewString()

	updated := append([]entities.Part{part}, parts...)
	if err := r.saveParts(ctx, updated); err != nil {
		return nil, err
	}

	r.logger.Debug("Запчасть создана", zap.String("id", part.ID), zap.String("name", part.Name))
	return &part, nil
}

// UpdatePart заменяет запись целиком. Отсутствующий id - это ошибка,
// а не тихий no-op: политика not-found едина для всех сущностей.
func (r *PartRepository) UpdatePart(ctx context.Context, part entities.Part) (*entities.Part, error) {
	parts, err := r.GetParts(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range parts {
		if parts[i].ID == part.ID {
			parts[i] = part
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrPartNotFound
	}

	if err := r.saveParts(ctx, parts); err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *PartRepository) saveParts(ctx context.Context, parts []entities.Part) error {
	data, err := json.Marshal(parts)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, CollectionParts, data)
}
