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

type NotificationRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewNotificationRepository(db *sql.DB, logger *logrus.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, related_id, is_read, is_dismissed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		notification.ID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.RelatedID,
		notification.IsRead,
		notification.IsDismissed,
		notification.CreatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Error al crear la notificación")
		return fmt.Errorf("error al crear notificación: %w", err)
	}

	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, related_id, is_read, is_dismissed, created_at
		FROM notifications
		WHERE user_id = $1 AND is_dismissed = false
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.WithError(err).Error("Error al consultar notificaciones")
		return nil, fmt.Errorf("error al obtener notificaciones: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.RelatedID,
			&n.IsRead,
			&n.IsDismissed,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al leer notificación: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar resultados: %w", err)
	}

	return notifications, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, related_id, is_read, is_dismissed, created_at
		FROM notifications
		WHERE id = $1
	`

	var n model.Notification
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.RelatedID,
		&n.IsRead,
		&n.IsDismissed,
		&n.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("notificación no encontrada")
		}
		return nil, fmt.Errorf("error al obtener notificación: %w", err)
	}

	return &n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, "is_read")
}

func (r *NotificationRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, "is_dismissed")
}

func (r *NotificationRepository) setFlag(ctx context.Context, id uuid.UUID, column string) error {
	// column proviene de un conjunto fijo interno, nunca de entrada del usuario
	query := fmt.Sprintf(`UPDATE notifications SET %s = true WHERE id = $1`, column)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error al actualizar notificación: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("notificación no encontrada")
	}

	return nil
}

// HasRecentDebtReminder indica si ya existe una notificación de deuda no
// descartada para la deuda indicada creada después del instante dado. Es la
// ventana de deduplicación de recordatorios con fecha de vencimiento.
func (r *NotificationRepository) HasRecentDebtReminder(ctx context.Context, debtID uuid.UUID, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE related_id = $1 AND type = 'debt' AND is_dismissed = false AND created_at >= $2
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, debtID, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al buscar notificaciones recientes: %w", err)
	}

	return exists, nil
}
