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

type DebtRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewDebtRepository(db *sql.DB, logger *logrus.Logger) *DebtRepository {
	return &DebtRepository{db: db, logger: logger}
}

const debtColumns = `id, user_id, description, amount, is_indefinite, due_date,
		category, reminder_frequency, last_reminder_sent, is_paid, paid_date, created_at`

func (r *DebtRepository) Create(ctx context.Context, debt *model.Debt) error {
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		debt.ID,
		debt.UserID,
		debt.Description,
		debt.Amount,
		debt.IsIndefinite,
		debt.DueDate,
		debt.Category,
		debt.ReminderFrequency,
		debt.LastReminderSent,
		debt.IsPaid,
		debt.PaidDate,
		debt.CreatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Error al crear la deuda")
		return fmt.Errorf("error al añadir deuda: %w", err)
	}

	return nil
}

func (r *DebtRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE id = $1`

	var debt model.Debt
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&debt.ID,
		&debt.UserID,
		&debt.Description,
		&debt.Amount,
		&debt.IsIndefinite,
		&debt.DueDate,
		&debt.Category,
		&debt.ReminderFrequency,
		&debt.LastReminderSent,
		&debt.IsPaid,
		&debt.PaidDate,
		&debt.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deuda no encontrada")
		}
		return nil, fmt.Errorf("error al obtener la deuda: %w", err)
	}

	return &debt, nil
}

func (r *DebtRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryDebts(ctx, query, userID)
}

// ListUpcoming devuelve las deudas no pagadas del usuario que vencen dentro de
// los próximos 30 días, junto con las indefinidas con recordatorio pendiente.
func (r *DebtRepository) ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]model.Debt, error) {
	thirtyDaysFromNow := now.AddDate(0, 0, 30)
	weekAgo := now.AddDate(0, 0, -7)

	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1 AND is_paid = false
		  AND (
			(is_indefinite = false AND due_date >= $2 AND due_date <= $3)
			OR (is_indefinite = true AND (last_reminder_sent IS NULL OR last_reminder_sent < $4))
		  )
		ORDER BY due_date ASC NULLS LAST
	`
	return r.queryDebts(ctx, query, userID, now, thirtyDaysFromNow, weekAgo)
}

// FindDueForReminder selecciona las deudas candidatas a recordatorio en todo el
// sistema: no pagadas y que o bien vencen dentro del horizonte, o bien son
// indefinidas sin recordatorio reciente. El umbral usa la frecuencia semanal por
// defecto; el chequeo fino por frecuencia lo hace el motor de recordatorios.
func (r *DebtRepository) FindDueForReminder(ctx context.Context, now, horizon time.Time) ([]model.Debt, error) {
	weekAgo := now.AddDate(0, 0, -7)

	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE is_paid = false
		  AND (
			(is_indefinite = false AND due_date >= $1 AND due_date <= $2)
			OR (is_indefinite = true AND (last_reminder_sent IS NULL OR last_reminder_sent < $3))
		  )
	`
	return r.queryDebts(ctx, query, now, horizon, weekAgo)
}

func (r *DebtRepository) queryDebts(ctx context.Context, query string, args ...interface{}) ([]model.Debt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Error al consultar deudas")
		return nil, fmt.Errorf("error al obtener deudas: %w", err)
	}
	defer rows.Close()

	var debts []model.Debt
	for rows.Next() {
		var debt model.Debt
		if err := rows.Scan(
			&debt.ID,
			&debt.UserID,
			&debt.Description,
			&debt.Amount,
			&debt.IsIndefinite,
			&debt.DueDate,
			&debt.Category,
			&debt.ReminderFrequency,
			&debt.LastReminderSent,
			&debt.IsPaid,
			&debt.PaidDate,
			&debt.CreatedAt,
		); err != nil {
			r.logger.WithError(err).Error("Error al leer fila de deuda")
			return nil, fmt.Errorf("error al leer deuda: %w", err)
		}
		debts = append(debts, debt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return debts, nil
}

func (r *DebtRepository) Update(ctx context.Context, debt *model.Debt) error {
	query := `
		UPDATE debts
		SET description = $2, amount = $3, is_indefinite = $4, due_date = $5,
		    category = $6, reminder_frequency = $7, is_paid = $8, paid_date = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		debt.ID,
		debt.Description,
		debt.Amount,
		debt.IsIndefinite,
		debt.DueDate,
		debt.Category,
		debt.ReminderFrequency,
		debt.IsPaid,
		debt.PaidDate,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar deuda: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("deuda no encontrada")
	}

	return nil
}

// UpdateLastReminderSent avanza la marca del último recordatorio enviado.
// Solo el motor de recordatorios escribe este campo.
func (r *DebtRepository) UpdateLastReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE debts SET last_reminder_sent = $2 WHERE id = $1`,
		id,
		sentAt,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar último recordatorio: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("deuda no encontrada")
	}

	return nil
}

func (r *DebtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar deuda: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("deuda no encontrada")
	}

	return nil
}
