package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	logger           *logrus.Logger
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, logger *logrus.Logger) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, logger: logger}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.checkOwner(ctx, notificationID, userID); err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

func (s *NotificationService) Dismiss(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.checkOwner(ctx, notificationID, userID); err != nil {
		return err
	}
	return s.notificationRepo.Dismiss(ctx, notificationID)
}

func (s *NotificationService) checkOwner(ctx context.Context, notificationID, userID uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		s.logger.WithError(err).Warnf("Notificación %s no encontrada", notificationID)
		return ErrNotFound
	}
	if notification.UserID != userID {
		return ErrUnauthorized
	}
	return nil
}
