// Файл: internal/services/notification_service.go
package services

import (
	"go.uber.org/zap"

	"repair-flow/internal/entities"
	"repair-flow/pkg/constants"
)

// NotificationServiceInterface - канал уведомления клиента о готовности заказа.
type NotificationServiceInterface interface {
	NotifyStatusChanged(client *entities.Client, order *entities.Order) error
}

// mockNotificationService - это реализация-заглушка (mock), которая пишет в лог
// вместо реальной отправки сообщений. Идеально для тестирования.
type mockNotificationService struct {
	logger *zap.Logger
}

// NewMockNotificationService - конструктор для нашего сервиса-заглушки.
func NewMockNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &mockNotificationService{logger: logger}
}

// NotifyStatusChanged имитирует отправку SMS клиенту.
func (s *mockNotificationService) NotifyStatusChanged(client *entities.Client, order *entities.Order) error {
	// В реальном приложении здесь будет интеграция с SMS-шлюзом.
	s.logger.Info("!!! ИМИТАЦИЯ ОТПРАВКИ SMS !!!",
		zap.String("кому", client.Phone),
		zap.String("клиент", client.Name),
		zap.String("заказ", order.ID),
		zap.String("статус", constants.StatusLabels[order.Status]),
		zap.String("текст", "Ваш заказ #"+order.ID+" — "+constants.StatusLabels[order.Status]),
	)
	return nil
}
