package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

// RolloverRepository agrupa las escrituras del cierre mensual en una sola
// transacción de base de datos: o se aplican todas o no se aplica ninguna.
type RolloverRepository struct {
	db         *sql.DB
	reportRepo *ReportRepository
	txRepo     *TransactionRepository
	budgetRepo *BudgetRepository
	logger     *logrus.Logger
}

func NewRolloverRepository(
	db *sql.DB,
	reportRepo *ReportRepository,
	txRepo *TransactionRepository,
	budgetRepo *BudgetRepository,
	logger *logrus.Logger,
) *RolloverRepository {
	return &RolloverRepository{
		db:         db,
		reportRepo: reportRepo,
		txRepo:     txRepo,
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

func (r *RolloverRepository) ListTransactions(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	return r.txRepo.ListByUser(ctx, userID)
}

func (r *RolloverRepository) ListBudgets(ctx context.Context, userID uuid.UUID) ([]model.Budget, error) {
	return r.budgetRepo.ListByUser(ctx, userID)
}

// Archive persiste el informe, elimina las transacciones del usuario y reinicia
// sus presupuestos como una unidad atómica.
func (r *RolloverRepository) Archive(ctx context.Context, report *model.Report, userID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.WithError(err).Error("Error al iniciar la transacción del cierre mensual")
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	if err := r.reportRepo.CreateTx(ctx, tx, report); err != nil {
		return err
	}

	if err := r.txRepo.DeleteAllByUserTx(ctx, tx, userID); err != nil {
		return err
	}

	if err := r.budgetRepo.ResetSpentTx(ctx, tx, userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.WithError(err).Error("Error al confirmar la transacción del cierre mensual")
		return fmt.Errorf("error al confirmar operación: %w", err)
	}

	return nil
}
