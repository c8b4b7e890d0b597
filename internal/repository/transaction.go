package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

type TransactionRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewTransactionRepository(db *sql.DB, logger *logrus.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, logger: logger}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	r.logger.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"amount":         transaction.Amount,
		"type":           transaction.Type,
	}).Info("Creando nueva transacción")

	query := `
        INSERT INTO transactions (id, user_id, description, amount, type, category, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.db.ExecContext(
		ctx,
		query,
		transaction.ID,
		transaction.UserID,
		transaction.Description,
		transaction.Amount,
		transaction.Type,
		transaction.Category,
		transaction.Date,
	)

	if err != nil {
		r.logger.WithError(err).Error("Error al crear la transacción")
		return fmt.Errorf("error al crear la transacción: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `
		SELECT id, user_id, description, amount, type, category, date
		FROM transactions
		WHERE id = $1
	`

	var tx model.Transaction
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Description,
		&tx.Amount,
		&tx.Type,
		&tx.Category,
		&tx.Date,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("transacción no encontrada")
		}
		return nil, fmt.Errorf("error al obtener la transacción: %w", err)
	}

	return &tx, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	const query = `
		SELECT id, user_id, description, amount, type, category, date
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
	`
	return r.queryTransactions(ctx, query, userID)
}

func (r *TransactionRepository) ListByUserAndType(
	ctx context.Context,
	userID uuid.UUID,
	txType model.TransactionType,
) ([]model.Transaction, error) {
	const query = `
		SELECT id, user_id, description, amount, type, category, date
		FROM transactions
		WHERE user_id = $1 AND type = $2
		ORDER BY date DESC
	`
	return r.queryTransactions(ctx, query, userID, txType)
}

func (r *TransactionRepository) queryTransactions(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Error al consultar transacciones")
		return nil, fmt.Errorf("error al obtener transacciones: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Description,
			&tx.Amount,
			&tx.Type,
			&tx.Category,
			&tx.Date,
		); err != nil {
			r.logger.WithError(err).Error("Error al leer fila de transacción")
			return nil, fmt.Errorf("error al leer transacción: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *model.Transaction) error {
	query := `
		UPDATE transactions
		SET description = $2, amount = $3, type = $4, category = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		transaction.ID,
		transaction.Description,
		transaction.Amount,
		transaction.Type,
		transaction.Category,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar la transacción: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transacción no encontrada")
	}

	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar la transacción: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transacción no encontrada")
	}

	return nil
}

// GetSummary devuelve los totales de ingresos, gastos y el balance del usuario
func (r *TransactionRepository) GetSummary(ctx context.Context, userID uuid.UUID) (*model.TransactionSummary, error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'ingreso' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'gasto' THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE user_id = $1
	`

	var summary model.TransactionSummary
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&summary.TotalIncome,
		&summary.TotalExpenses,
	)
	if err != nil {
		r.logger.WithError(err).Error("Error al obtener el resumen de transacciones")
		return nil, fmt.Errorf("error al obtener el resumen: %w", err)
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return &summary, nil
}

// GetMonthlyTotals devuelve ingresos y gastos del usuario desde una fecha dada
func (r *TransactionRepository) GetMonthlyTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (income, expenses float64, err error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'ingreso' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'gasto' THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE user_id = $1 AND date >= $2
	`

	if err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&income, &expenses); err != nil {
		return 0, 0, fmt.Errorf("error al obtener totales mensuales: %w", err)
	}
	return income, expenses, nil
}

// GetExpensesByCategory agrupa los gastos del usuario por categoría
func (r *TransactionRepository) GetExpensesByCategory(ctx context.Context, userID uuid.UUID) ([]model.CategoryTotal, error) {
	const query = `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = 'gasto'
		GROUP BY category
		ORDER BY 2 DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error al agrupar gastos por categoría: %w", err)
	}
	defer rows.Close()

	var totals []model.CategoryTotal
	for rows.Next() {
		var ct model.CategoryTotal
		if err := rows.Scan(&ct.Name, &ct.Value); err != nil {
			return nil, fmt.Errorf("error al leer fila de categoría: %w", err)
		}
		totals = append(totals, ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return totals, nil
}

// GetMonthlyFlow devuelve ingresos y gastos agrupados por mes desde una fecha dada.
// Las claves del mapa son meses 1..12.
func (r *TransactionRepository) GetMonthlyFlow(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (map[int]model.MonthlyFlow, error) {
	const query = `
		SELECT
			EXTRACT(MONTH FROM date)::int,
			COALESCE(SUM(CASE WHEN type = 'ingreso' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'gasto' THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE user_id = $1 AND date >= $2
		GROUP BY 1
	`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error al obtener flujo mensual: %w", err)
	}
	defer rows.Close()

	flow := make(map[int]model.MonthlyFlow)
	for rows.Next() {
		var month int
		var mf model.MonthlyFlow
		if err := rows.Scan(&month, &mf.Income, &mf.Expenses); err != nil {
			return nil, fmt.Errorf("error al leer fila de flujo mensual: %w", err)
		}
		flow[month] = mf
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return flow, nil
}

// GetSpentByCategory devuelve el gasto acumulado por categoría. Es la fuente
// autoritativa del campo spent de los presupuestos.
func (r *TransactionRepository) GetSpentByCategory(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	totals, err := r.GetExpensesByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	spent := make(map[string]float64, len(totals))
	for _, ct := range totals {
		spent[ct.Name] = ct.Value
	}
	return spent, nil
}

// DeleteAllByUserTx elimina todas las transacciones del usuario dentro de una
// transacción de base de datos. Usado por el cierre mensual.
func (r *TransactionRepository) DeleteAllByUserTx(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.WithError(err).Error("Error al eliminar transacciones del usuario")
		return fmt.Errorf("error al eliminar transacciones: %w", err)
	}

	rows, _ := result.RowsAffected()
	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   rows,
	}).Info("Transacciones del usuario eliminadas")

	return nil
}
