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

type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	logger          *logrus.Logger
}

func NewTransactionService(transactionRepo *repository.TransactionRepository, logger *logrus.Logger) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo, logger: logger}
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req model.TransactionRequest) (*model.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	transaction := &model.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        date,
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	return s.transactionRepo.ListByUser(ctx, userID)
}

func (s *TransactionService) ListByType(
	ctx context.Context,
	userID uuid.UUID,
	txType model.TransactionType,
) ([]model.Transaction, error) {
	return s.transactionRepo.ListByUserAndType(ctx, userID, txType)
}

func (s *TransactionService) GetSummary(ctx context.Context, userID uuid.UUID) (*model.TransactionSummary, error) {
	return s.transactionRepo.GetSummary(ctx, userID)
}

func (s *TransactionService) Update(
	ctx context.Context,
	transactionID, userID uuid.UUID,
	req model.TransactionRequest,
) (*model.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		s.logger.WithError(err).Warnf("Transacción %s no encontrada", transactionID)
		return nil, ErrNotFound
	}

	if transaction.UserID != userID {
		s.logger.Warnf("Intento de modificar transacción ajena: usuario %s, dueño %s", userID, transaction.UserID)
		return nil, ErrUnauthorized
	}

	transaction.Description = req.Description
	transaction.Amount = req.Amount
	transaction.Type = req.Type
	transaction.Category = req.Category

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("error al actualizar la transacción: %w", err)
	}

	return transaction, nil
}

func (s *TransactionService) Delete(ctx context.Context, transactionID, userID uuid.UUID) error {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return ErrNotFound
	}

	if transaction.UserID != userID {
		return ErrUnauthorized
	}

	return s.transactionRepo.Delete(ctx, transactionID)
}
