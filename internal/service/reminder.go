package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

// dueSoonHorizon es la ventana de anticipación para deudas con vencimiento
const dueSoonHorizon = 5 * 24 * time.Hour

// dedupWindow es la ventana de deduplicación de recordatorios por vencimiento
const dedupWindow = 24 * time.Hour

type reminderDebtStore interface {
	FindDueForReminder(ctx context.Context, now, horizon time.Time) ([]model.Debt, error)
	UpdateLastReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
}

type reminderUserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type reminderNotificationStore interface {
	Create(ctx context.Context, notification *model.Notification) error
	HasRecentDebtReminder(ctx context.Context, debtID uuid.UUID, since time.Time) (bool, error)
}

// DebtReminderMessage es el contenido de un recordatorio generado
type DebtReminderMessage struct {
	Title        string
	Message      string
	EmailSubject string
}

// ReminderService decide qué deudas requieren un recordatorio y emite la
// notificación y el correo correspondientes.
type ReminderService struct {
	debtRepo         reminderDebtStore
	userRepo         reminderUserStore
	notificationRepo reminderNotificationStore
	mailSender       MailSender
	logger           *logrus.Logger
	now              func() time.Time
}

func NewReminderService(
	debtRepo reminderDebtStore,
	userRepo reminderUserStore,
	notificationRepo reminderNotificationStore,
	mailSender MailSender,
	logger *logrus.Logger,
) *ReminderService {
	return &ReminderService{
		debtRepo:         debtRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mailSender:       mailSender,
		logger:           logger,
		now:              time.Now,
	}
}

// RunReminderSweep procesa todas las deudas candidatas y devuelve la cantidad
// de recordatorios enviados. Los fallos por deuda se aíslan: ninguno aborta el
// resto del lote.
func (s *ReminderService) RunReminderSweep(ctx context.Context) (int, error) {
	now := s.now()
	s.logger.Info("Iniciando verificación de deudas")

	debts, err := s.debtRepo.FindDueForReminder(ctx, now, now.Add(dueSoonHorizon))
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener deudas candidatas")
		return 0, fmt.Errorf("error al obtener deudas: %w", err)
	}

	s.logger.Infof("Deudas encontradas: %d", len(debts))

	sent := 0
	for i := range debts {
		debt := &debts[i]

		user, err := s.userRepo.GetByID(ctx, debt.UserID)
		if err != nil {
			s.logger.WithError(err).Warnf("Usuario no encontrado para la deuda %s", debt.ID)
			continue
		}

		notify, err := s.shouldNotify(ctx, debt, now)
		if err != nil {
			s.logger.WithError(err).Errorf("Error al evaluar la deuda %s", debt.ID)
			continue
		}
		if !notify {
			s.logger.Debugf("No es necesario enviar notificación para la deuda %s", debt.ID)
			continue
		}

		msg := buildReminderMessage(debt, now)

		notification := &model.Notification{
			ID:        uuid.New(),
			UserID:    user.ID,
			Title:     msg.Title,
			Message:   msg.Message,
			Type:      model.NotificationTypeDebt,
			RelatedID: &debt.ID,
			CreatedAt: now,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.logger.WithError(err).Errorf("Error al crear la notificación para la deuda %s", debt.ID)
			continue
		}

		// Si el envío falla NO se avanza lastReminderSent: la deuda vuelve a
		// ser candidata en el próximo barrido.
		if err := s.mailSender.SendDebtReminder(user.Email, user.Name, debt, msg); err != nil {
			s.logger.WithError(err).Errorf("Error al enviar el recordatorio de la deuda %s", debt.ID)
			continue
		}

		if err := s.debtRepo.UpdateLastReminderSent(ctx, debt.ID, now); err != nil {
			s.logger.WithError(err).Errorf("Error al actualizar último recordatorio de la deuda %s", debt.ID)
			continue
		}

		sent++
	}

	s.logger.Infof("Verificación de deudas completada, %d recordatorios enviados", sent)
	return sent, nil
}

// shouldNotify revalida los criterios de selección por deuda para evitar
// envíos duplicados dentro del mismo barrido.
func (s *ReminderService) shouldNotify(ctx context.Context, debt *model.Debt, now time.Time) (bool, error) {
	if debt.IsIndefinite {
		if debt.LastReminderSent == nil {
			return true, nil
		}
		threshold := now.Add(-ReminderInterval(debt.ReminderFrequency))
		return debt.LastReminderSent.Before(threshold), nil
	}

	exists, err := s.notificationRepo.HasRecentDebtReminder(ctx, debt.ID, now.Add(-dedupWindow))
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// ReminderInterval devuelve la separación mínima entre recordatorios sucesivos
// de una deuda indefinida según su frecuencia configurada.
func ReminderInterval(frequency model.ReminderFrequency) time.Duration {
	switch frequency {
	case model.ReminderDaily:
		return 24 * time.Hour
	case model.ReminderWeekly:
		return 7 * 24 * time.Hour
	case model.ReminderMonthly:
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// DaysUntilDue calcula los días restantes hasta el vencimiento, redondeando
// hacia arriba.
func DaysUntilDue(dueDate, now time.Time) int {
	return int(math.Ceil(dueDate.Sub(now).Hours() / 24))
}

func buildReminderMessage(debt *model.Debt, now time.Time) *DebtReminderMessage {
	if debt.IsIndefinite {
		return &DebtReminderMessage{
			Title: "Recordatorio de Deuda Recurrente",
			Message: fmt.Sprintf(
				`Recordatorio de pago para tu deuda "%s" por $%.2f.`,
				debt.Description, debt.Amount,
			),
			EmailSubject: "Recordatorio de Deuda Recurrente - SpendShield",
		}
	}

	daysUntilDue := DaysUntilDue(*debt.DueDate, now)
	return &DebtReminderMessage{
		Title: "Deuda Próxima a Vencer",
		Message: fmt.Sprintf(
			`Tu deuda "%s" por $%.2f vence en %d días.`,
			debt.Description, debt.Amount, daysUntilDue,
		),
		EmailSubject: "Recordatorio de Deuda Próxima a Vencer - SpendShield",
	}
}
