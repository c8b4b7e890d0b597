package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

type ReportRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewReportRepository(db *sql.DB, logger *logrus.Logger) *ReportRepository {
	return &ReportRepository{db: db, logger: logger}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	query := `
		INSERT INTO reports (id, user_id, title, data, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, report.ID, report.UserID, report.Title, report.Data, report.Date)
	if err != nil {
		r.logger.WithError(err).Error("Error al crear el informe")
		return fmt.Errorf("error al crear informe: %w", err)
	}

	return nil
}

// CreateTx inserta un informe dentro de una transacción de base de datos.
// Usado por el cierre mensual.
func (r *ReportRepository) CreateTx(ctx context.Context, tx *sql.Tx, report *model.Report) error {
	query := `
		INSERT INTO reports (id, user_id, title, data, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.ExecContext(ctx, query, report.ID, report.UserID, report.Title, report.Data, report.Date)
	if err != nil {
		r.logger.WithError(err).Error("Error al crear el informe dentro de la transacción")
		return fmt.Errorf("error al crear informe: %w", err)
	}

	return nil
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	query := `
		SELECT id, user_id, title, data, date
		FROM reports
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.WithError(err).Error("Error al consultar informes")
		return nil, fmt.Errorf("error al obtener informes: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var report model.Report
		if err := rows.Scan(&report.ID, &report.UserID, &report.Title, &report.Data, &report.Date); err != nil {
			return nil, fmt.Errorf("error al leer informe: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	query := `
		SELECT id, user_id, title, data, date
		FROM reports
		WHERE id = $1
	`

	var report model.Report
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.UserID,
		&report.Title,
		&report.Data,
		&report.Date,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("informe no encontrado")
		}
		return nil, fmt.Errorf("error al obtener informe: %w", err)
	}

	return &report, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar informe: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("informe no encontrado")
	}

	return nil
}
