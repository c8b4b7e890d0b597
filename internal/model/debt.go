package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ReminderFrequency string

const (
	ReminderDaily   ReminderFrequency = "DAILY"
	ReminderWeekly  ReminderFrequency = "WEEKLY"
	ReminderMonthly ReminderFrequency = "MONTHLY"
)

// DebtCategories son las categorías permitidas para una deuda
var DebtCategories = []string{
	"Personal",
	"Préstamo Bancario",
	"Tarjeta de Crédito",
	"Hipoteca",
	"Vehículo",
	"Educación",
	"Otros",
}

type Debt struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	UserID            uuid.UUID         `json:"user_id" db:"user_id"`
	Description       string            `json:"description" db:"description"`
	Amount            float64           `json:"amount" db:"amount"`
	IsIndefinite      bool              `json:"is_indefinite" db:"is_indefinite"`
	DueDate           *time.Time        `json:"due_date" db:"due_date"`
	Category          string            `json:"category" db:"category"`
	ReminderFrequency ReminderFrequency `json:"reminder_frequency" db:"reminder_frequency"`
	LastReminderSent  *time.Time        `json:"last_reminder_sent" db:"last_reminder_sent"`
	IsPaid            bool              `json:"is_paid" db:"is_paid"`
	PaidDate          *time.Time        `json:"paid_date" db:"paid_date"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
}

type DebtRequest struct {
	Description       string            `json:"description" validate:"required"`
	Amount            float64           `json:"amount" validate:"required,gt=0"`
	DueDate           *time.Time        `json:"due_date"`
	Category          string            `json:"category" validate:"required"`
	IsIndefinite      bool              `json:"is_indefinite"`
	ReminderFrequency ReminderFrequency `json:"reminder_frequency"`
	IsPaid            bool              `json:"is_paid"`
}

func (r *DebtRequest) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("la descripción es requerida")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("el monto debe ser un número positivo")
	}
	if !isValidDebtCategory(r.Category) {
		return fmt.Errorf("categoría de deuda inválida: %s", r.Category)
	}
	// La fecha de vencimiento es requerida solo si la deuda no es indefinida
	if !r.IsIndefinite && r.DueDate == nil {
		return fmt.Errorf("la fecha de vencimiento es requerida para deudas no indefinidas")
	}
	if r.ReminderFrequency != "" && !isValidFrequency(r.ReminderFrequency) {
		return fmt.Errorf("frecuencia de recordatorio inválida: %s", r.ReminderFrequency)
	}
	return nil
}

func isValidDebtCategory(category string) bool {
	for _, c := range DebtCategories {
		if c == category {
			return true
		}
	}
	return false
}

func isValidFrequency(frequency ReminderFrequency) bool {
	switch frequency {
	case ReminderDaily, ReminderWeekly, ReminderMonthly:
		return true
	}
	return false
}
