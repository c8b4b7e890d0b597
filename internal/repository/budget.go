package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

type BudgetRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewBudgetRepository(db *sql.DB, logger *logrus.Logger) *BudgetRepository {
	return &BudgetRepository{db: db, logger: logger}
}

func (r *BudgetRepository) Create(ctx context.Context, budget *model.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category, amount, spent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		budget.ID,
		budget.UserID,
		budget.Category,
		budget.Amount,
		budget.Spent,
		budget.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" {
				return fmt.Errorf("ya existe un presupuesto para la categoría %s", budget.Category)
			}
		}
		return fmt.Errorf("error al crear presupuesto: %w", err)
	}

	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, spent, created_at
		FROM budgets
		WHERE id = $1
	`

	var budget model.Budget
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Category,
		&budget.Amount,
		&budget.Spent,
		&budget.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("presupuesto no encontrado")
		}
		return nil, fmt.Errorf("error al obtener presupuesto: %w", err)
	}

	return &budget, nil
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, spent, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY category ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.WithError(err).Error("Error al consultar presupuestos")
		return nil, fmt.Errorf("error al obtener presupuestos: %w", err)
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var budget model.Budget
		if err := rows.Scan(
			&budget.ID,
			&budget.UserID,
			&budget.Category,
			&budget.Amount,
			&budget.Spent,
			&budget.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al leer presupuesto: %w", err)
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return budgets, nil
}

func (r *BudgetRepository) Update(ctx context.Context, budget *model.Budget) error {
	query := `
		UPDATE budgets
		SET category = $2, amount = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, budget.ID, budget.Category, budget.Amount)
	if err != nil {
		return fmt.Errorf("error al actualizar presupuesto: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("presupuesto no encontrado")
	}

	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar presupuesto: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("presupuesto no encontrado")
	}

	return nil
}

// GetTotalBudget devuelve la suma de los montos presupuestados del usuario
func (r *BudgetRepository) GetTotalBudget(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM budgets WHERE user_id = $1`,
		userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error al obtener presupuesto total: %w", err)
	}
	return total, nil
}

// ResetSpentTx reinicia el contador de gasto de todos los presupuestos del
// usuario dentro de una transacción de base de datos. Usado por el cierre mensual.
func (r *BudgetRepository) ResetSpentTx(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
	result, err := tx.ExecContext(ctx, `UPDATE budgets SET spent = 0 WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.WithError(err).Error("Error al reiniciar presupuestos del usuario")
		return fmt.Errorf("error al reiniciar presupuestos: %w", err)
	}

	rows, _ := result.RowsAffected()
	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   rows,
	}).Info("Presupuestos del usuario reiniciados")

	return nil
}
