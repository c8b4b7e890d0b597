package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

type IncomeRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewIncomeRepository(db *sql.DB, logger *logrus.Logger) *IncomeRepository {
	return &IncomeRepository{db: db, logger: logger}
}

func (r *IncomeRepository) Create(ctx context.Context, income *model.Income) error {
	query := `
		INSERT INTO incomes (id, user_id, source, amount, frequency, is_recurring, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		income.ID,
		income.UserID,
		income.Source,
		income.Amount,
		income.Frequency,
		income.IsRecurring,
		income.CreatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Error al crear la fuente de ingreso")
		return fmt.Errorf("error al crear ingreso: %w", err)
	}

	return nil
}

func (r *IncomeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Income, error) {
	query := `
		SELECT id, user_id, source, amount, frequency, is_recurring, created_at
		FROM incomes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.WithError(err).Error("Error al consultar fuentes de ingreso")
		return nil, fmt.Errorf("error al obtener ingresos: %w", err)
	}
	defer rows.Close()

	var incomes []model.Income
	for rows.Next() {
		var income model.Income
		if err := rows.Scan(
			&income.ID,
			&income.UserID,
			&income.Source,
			&income.Amount,
			&income.Frequency,
			&income.IsRecurring,
			&income.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al leer ingreso: %w", err)
		}
		incomes = append(incomes, income)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return incomes, nil
}
