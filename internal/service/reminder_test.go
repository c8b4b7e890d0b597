package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeDebtStore struct {
	debts    []model.Debt
	lastSent map[uuid.UUID]time.Time
	findErr  error
}

func (f *fakeDebtStore) FindDueForReminder(ctx context.Context, now, horizon time.Time) ([]model.Debt, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.debts, nil
}

func (f *fakeDebtStore) UpdateLastReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	if f.lastSent == nil {
		f.lastSent = make(map[uuid.UUID]time.Time)
	}
	f.lastSent[id] = sentAt
	return nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*model.User
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("usuario no encontrado")
	}
	return user, nil
}

type fakeNotificationStore struct {
	created   []model.Notification
	recent    map[uuid.UUID]bool
	createErr error
}

func (f *fakeNotificationStore) Create(ctx context.Context, notification *model.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *notification)
	return nil
}

func (f *fakeNotificationStore) HasRecentDebtReminder(ctx context.Context, debtID uuid.UUID, since time.Time) (bool, error) {
	return f.recent[debtID], nil
}

type fakeMailSender struct {
	sentTo []string
	err    error
}

func (f *fakeMailSender) SendDebtReminder(email, userName string, debt *model.Debt, msg *DebtReminderMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, email)
	return nil
}

func newReminderFixture(debts []model.Debt, users map[uuid.UUID]*model.User, now time.Time) (*ReminderService, *fakeDebtStore, *fakeNotificationStore, *fakeMailSender) {
	debtStore := &fakeDebtStore{debts: debts}
	notifStore := &fakeNotificationStore{recent: make(map[uuid.UUID]bool)}
	mailer := &fakeMailSender{}
	svc := NewReminderService(debtStore, &fakeUserStore{users: users}, notifStore, mailer, newTestLogger())
	svc.now = func() time.Time { return now }
	return svc, debtStore, notifStore, mailer
}

func testUser() *model.User {
	return &model.User{
		ID:       uuid.New(),
		Name:     "Juan",
		Email:    "juan@example.com",
		Currency: "CLP",
	}
}

func TestRunReminderSweep_IndefiniteNeverReminded(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()

	debt := model.Debt{
		ID:                uuid.New(),
		UserID:            user.ID,
		Description:       "Cuota gimnasio",
		Amount:            25000,
		IsIndefinite:      true,
		Category:          "Personal",
		ReminderFrequency: model.ReminderWeekly,
	}

	svc, debtStore, notifStore, mailer := newReminderFixture(
		[]model.Debt{debt},
		map[uuid.UUID]*model.User{user.ID: user},
		now,
	)

	sent, err := svc.RunReminderSweep(context.Background())
	if err != nil {
		t.Fatalf("RunReminderSweep() error = %v", err)
	}
	if sent != 1 {
		t.Fatalf("RunReminderSweep() sent = %d, want 1", sent)
	}

	if len(notifStore.created) != 1 {
		t.Fatalf("notificaciones creadas = %d, want 1", len(notifStore.created))
	}
	notif := notifStore.created[0]
	if notif.Type != model.NotificationTypeDebt {
		t.Errorf("tipo de notificación = %q, want %q", notif.Type, model.NotificationTypeDebt)
	}
	if notif.RelatedID == nil || *notif.RelatedID != debt.ID {
		t.Error("la notificación no referencia a la deuda")
	}
	if !strings.Contains(notif.Message, `"Cuota gimnasio"`) {
		t.Errorf("mensaje inesperado: %q", notif.Message)
	}

	if len(mailer.sentTo) != 1 || mailer.sentTo[0] != user.Email {
		t.Errorf("correos enviados = %v, want [%s]", mailer.sentTo, user.Email)
	}
	if got := debtStore.lastSent[debt.ID]; !got.Equal(now) {
		t.Errorf("lastReminderSent = %v, want %v", got, now)
	}
}

func TestRunReminderSweep_IndefiniteRespectsFrequency(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	threeDaysAgo := now.Add(-3 * 24 * time.Hour)

	tests := []struct {
		name      string
		frequency model.ReminderFrequency
		wantSent  int
	}{
		{
			name:      "semanal recordada hace 3 días - no enviar",
			frequency: model.ReminderWeekly,
			wantSent:  0,
		},
		{
			name:      "diaria recordada hace 3 días - enviar",
			frequency: model.ReminderDaily,
			wantSent:  1,
		},
		{
			name:      "mensual recordada hace 3 días - no enviar",
			frequency: model.ReminderMonthly,
			wantSent:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser()
			debt := model.Debt{
				ID:                uuid.New(),
				UserID:            user.ID,
				Description:       "Suscripción",
				Amount:            9990,
				IsIndefinite:      true,
				Category:          "Personal",
				ReminderFrequency: tt.frequency,
				LastReminderSent:  &threeDaysAgo,
			}

			svc, _, _, _ := newReminderFixture(
				[]model.Debt{debt},
				map[uuid.UUID]*model.User{user.ID: user},
				now,
			)

			sent, err := svc.RunReminderSweep(context.Background())
			if err != nil {
				t.Fatalf("RunReminderSweep() error = %v", err)
			}
			if sent != tt.wantSent {
				t.Errorf("RunReminderSweep() sent = %d, want %d", sent, tt.wantSent)
			}
		})
	}
}

func TestRunReminderSweep_DueSoonMessage(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	dueDate := now.Add(5 * 24 * time.Hour)

	debt := model.Debt{
		ID:                uuid.New(),
		UserID:            user.ID,
		Description:       "Crédito auto",
		Amount:            150000,
		DueDate:           &dueDate,
		Category:          "Vehículo",
		ReminderFrequency: model.ReminderWeekly,
	}

	svc, _, notifStore, _ := newReminderFixture(
		[]model.Debt{debt},
		map[uuid.UUID]*model.User{user.ID: user},
		now,
	)

	sent, err := svc.RunReminderSweep(context.Background())
	if err != nil {
		t.Fatalf("RunReminderSweep() error = %v", err)
	}
	if sent != 1 {
		t.Fatalf("RunReminderSweep() sent = %d, want 1", sent)
	}

	msg := notifStore.created[0].Message
	if !strings.Contains(msg, "vence en 5 días") {
		t.Errorf("mensaje = %q, debería indicar 5 días restantes", msg)
	}
}

func TestRunReminderSweep_DueSoonDeduplicated(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	dueDate := now.Add(2 * 24 * time.Hour)

	debt := model.Debt{
		ID:          uuid.New(),
		UserID:      user.ID,
		Description: "Arriendo",
		Amount:      450000,
		DueDate:     &dueDate,
		Category:    "Personal",
	}

	svc, _, notifStore, mailer := newReminderFixture(
		[]model.Debt{debt},
		map[uuid.UUID]*model.User{user.ID: user},
		now,
	)

	// Ya existe una notificación vigente dentro de la ventana de deduplicación
	notifStore.recent[debt.ID] = true

	sent, err := svc.RunReminderSweep(context.Background())
	if err != nil {
		t.Fatalf("RunReminderSweep() error = %v", err)
	}
	if sent != 0 {
		t.Errorf("RunReminderSweep() sent = %d, want 0", sent)
	}
	if len(notifStore.created) != 0 {
		t.Errorf("notificaciones creadas = %d, want 0", len(notifStore.created))
	}
	if len(mailer.sentTo) != 0 {
		t.Errorf("correos enviados = %d, want 0", len(mailer.sentTo))
	}
}

func TestRunReminderSweep_MailFailureKeepsDebtEligible(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()

	debt := model.Debt{
		ID:                uuid.New(),
		UserID:            user.ID,
		Description:       "Préstamo",
		Amount:            80000,
		IsIndefinite:      true,
		Category:          "Préstamo Bancario",
		ReminderFrequency: model.ReminderWeekly,
	}

	svc, debtStore, _, mailer := newReminderFixture(
		[]model.Debt{debt},
		map[uuid.UUID]*model.User{user.ID: user},
		now,
	)
	mailer.err = errors.New("smtp no disponible")

	sent, err := svc.RunReminderSweep(context.Background())
	if err != nil {
		t.Fatalf("RunReminderSweep() error = %v", err)
	}
	if sent != 0 {
		t.Errorf("RunReminderSweep() sent = %d, want 0", sent)
	}
	if _, ok := debtStore.lastSent[debt.ID]; ok {
		t.Error("lastReminderSent no debe avanzar si el correo falla")
	}
}

func TestRunReminderSweep_MissingUserIsSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()

	orphan := model.Debt{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Description:  "Deuda huérfana",
		Amount:       10000,
		IsIndefinite: true,
		Category:     "Otros",
	}
	valid := model.Debt{
		ID:           uuid.New(),
		UserID:       user.ID,
		Description:  "Deuda válida",
		Amount:       20000,
		IsIndefinite: true,
		Category:     "Otros",
	}

	svc, _, notifStore, _ := newReminderFixture(
		[]model.Debt{orphan, valid},
		map[uuid.UUID]*model.User{user.ID: user},
		now,
	)

	sent, err := svc.RunReminderSweep(context.Background())
	if err != nil {
		t.Fatalf("RunReminderSweep() error = %v", err)
	}
	if sent != 1 {
		t.Errorf("RunReminderSweep() sent = %d, want 1", sent)
	}
	if len(notifStore.created) != 1 {
		t.Fatalf("notificaciones creadas = %d, want 1", len(notifStore.created))
	}
	if notifStore.created[0].UserID != user.ID {
		t.Error("la notificación debería pertenecer al usuario existente")
	}
}

func TestReminderInterval(t *testing.T) {
	tests := []struct {
		name      string
		frequency model.ReminderFrequency
		want      time.Duration
	}{
		{"diaria", model.ReminderDaily, 24 * time.Hour},
		{"semanal", model.ReminderWeekly, 7 * 24 * time.Hour},
		{"mensual", model.ReminderMonthly, 30 * 24 * time.Hour},
		{"desconocida usa semanal", model.ReminderFrequency("ANUAL"), 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReminderInterval(tt.frequency); got != tt.want {
				t.Errorf("ReminderInterval(%q) = %v, want %v", tt.frequency, got, tt.want)
			}
		})
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"exactamente 5 días", now.Add(5 * 24 * time.Hour), 5},
		{"4 días y medio redondea hacia arriba", now.Add(4*24*time.Hour + 12*time.Hour), 5},
		{"mañana", now.Add(24 * time.Hour), 1},
		{"hoy mismo", now, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntilDue(tt.due, now); got != tt.want {
				t.Errorf("DaysUntilDue() = %d, want %d", got, tt.want)
			}
		})
	}
}
