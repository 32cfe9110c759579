package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/entities"
	"repair-flow/internal/repositories"
	"repair-flow/pkg/constants"
)

// Порог, ниже которого запчасть считается заканчивающейся.
const lowStockThreshold = 3

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	orderRepo repositories.OrderRepositoryInterface
	partRepo  repositories.PartRepositoryInterface
	logger    *zap.Logger
}

func NewDashboardService(
	orderRepo repositories.OrderRepositoryInterface,
	partRepo repositories.PartRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{orderRepo: orderRepo, partRepo: partRepo, logger: logger}
}

// GetDashboardStats пересчитывает витрину с нуля полным сканом обеих
// коллекций. Инкрементального обслуживания нет и не нужно: коллекции
// маленькие, а пересчёт всегда согласован.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := s.partRepo.GetParts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{}
	now := time.Now()
	todayY, todayM, todayD := now.Date()

	for i := range orders {
		order := &orders[i]
		switch order.Status {
		case constants.StatusReceived, constants.StatusInProgress:
			stats.ActiveOrders++
		case constants.StatusCompleted:
			stats.Revenue += entities.CalculateOrderTotal(order)
			y, m, d := order.UpdatedAt.Date()
			if y == todayY && m == todayM && d == todayD {
				stats.CompletedToday++
			}
		}
	}

	for _, p := range parts {
		if p.Quantity < lowStockThreshold {
			stats.LowStock++
		}
	}

	return stats, nil
}
