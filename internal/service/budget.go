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

type BudgetService struct {
	budgetRepo      *repository.BudgetRepository
	transactionRepo *repository.TransactionRepository
	logger          *logrus.Logger
}

func NewBudgetService(
	budgetRepo *repository.BudgetRepository,
	transactionRepo *repository.TransactionRepository,
	logger *logrus.Logger,
) *BudgetService {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req model.BudgetRequest) (*model.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	budget := &model.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  req.Category,
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

// List devuelve los presupuestos del usuario con el gasto calculado desde las
// transacciones. El campo spent almacenado es solo un valor desnormalizado que
// el cierre mensual reinicia; la fuente autoritativa son las transacciones.
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]model.Budget, error) {
	budgets, err := s.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	spent, err := s.transactionRepo.GetSpentByCategory(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al calcular el gasto por categoría")
		return nil, fmt.Errorf("error al calcular gasto: %w", err)
	}

	for i := range budgets {
		budgets[i].Spent = spent[budgets[i].Category]
	}

	return budgets, nil
}

func (s *BudgetService) Update(ctx context.Context, budgetID, userID uuid.UUID, req model.BudgetRequest) (*model.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		s.logger.WithError(err).Warnf("Presupuesto %s no encontrado", budgetID)
		return nil, ErrNotFound
	}

	if budget.UserID != userID {
		s.logger.Warnf("Intento de modificar presupuesto ajeno: usuario %s, dueño %s", userID, budget.UserID)
		return nil, ErrUnauthorized
	}

	budget.Category = req.Category
	budget.Amount = req.Amount

	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("error al actualizar presupuesto: %w", err)
	}

	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, budgetID, userID uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return ErrNotFound
	}

	if budget.UserID != userID {
		return ErrUnauthorized
	}

	return s.budgetRepo.Delete(ctx, budgetID)
}
