package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

type DebtService struct {
	debtRepo *repository.DebtRepository
	logger   *logrus.Logger
}

func NewDebtService(debtRepo *repository.DebtRepository, logger *logrus.Logger) *DebtService {
	return &DebtService{debtRepo: debtRepo, logger: logger}
}

func (s *DebtService) Create(ctx context.Context, userID uuid.UUID, req model.DebtRequest) (*model.Debt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	frequency := req.ReminderFrequency
	if frequency == "" {
		frequency = model.ReminderWeekly
	}

	debt := &model.Debt{
		ID:                uuid.New(),
		UserID:            userID,
		Description:       req.Description,
		Amount:            req.Amount,
		IsIndefinite:      req.IsIndefinite,
		Category:          req.Category,
		ReminderFrequency: frequency,
		IsPaid:            req.IsPaid,
		CreatedAt:         time.Now(),
	}

	// Una deuda indefinida no lleva fecha de vencimiento
	if !req.IsIndefinite {
		debt.DueDate = req.DueDate
	}

	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	return debt, nil
}

func (s *DebtService) List(ctx context.Context, userID uuid.UUID) ([]model.Debt, error) {
	return s.debtRepo.ListByUser(ctx, userID)
}

func (s *DebtService) ListUpcoming(ctx context.Context, userID uuid.UUID) ([]model.Debt, error) {
	return s.debtRepo.ListUpcoming(ctx, userID, time.Now())
}

func (s *DebtService) Update(ctx context.Context, debtID, userID uuid.UUID, req model.DebtRequest) (*model.Debt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		s.logger.WithError(err).Warnf("Deuda %s no encontrada", debtID)
		return nil, ErrNotFound
	}

	if debt.UserID != userID {
		s.logger.Warnf("Intento de modificar deuda ajena: usuario %s, dueño %s", userID, debt.UserID)
		return nil, ErrUnauthorized
	}

	// Transiciones del estado de pago
	now := time.Now()
	if req.IsPaid && !debt.IsPaid {
		debt.PaidDate = &now
	} else if !req.IsPaid {
		debt.PaidDate = nil
	}

	debt.Description = req.Description
	debt.Amount = req.Amount
	debt.Category = req.Category
	debt.IsIndefinite = req.IsIndefinite
	debt.IsPaid = req.IsPaid
	if req.ReminderFrequency != "" {
		debt.ReminderFrequency = req.ReminderFrequency
	}

	// Al marcar la deuda como indefinida se elimina la fecha de vencimiento
	if req.IsIndefinite {
		debt.DueDate = nil
	} else {
		debt.DueDate = req.DueDate
	}

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, fmt.Errorf("error al actualizar deuda: %w", err)
	}

	return debt, nil
}

func (s *DebtService) Delete(ctx context.Context, debtID, userID uuid.UUID) error {
	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return ErrNotFound
	}

	if debt.UserID != userID {
		return ErrUnauthorized
	}

	return s.debtRepo.Delete(ctx, debtID)
}
