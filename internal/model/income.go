package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type IncomeFrequency string

const (
	IncomeDaily   IncomeFrequency = "daily"
	IncomeWeekly  IncomeFrequency = "weekly"
	IncomeMonthly IncomeFrequency = "monthly"
	IncomeYearly  IncomeFrequency = "yearly"
)

// Income es una fuente de ingreso recurrente (sueldo, arriendo, etc.),
// distinta de una transacción de tipo ingreso puntual.
type Income struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Source      string          `json:"source" db:"source"`
	Amount      float64         `json:"amount" db:"amount"`
	Frequency   IncomeFrequency `json:"frequency" db:"frequency"`
	IsRecurring bool            `json:"is_recurring" db:"is_recurring"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type IncomeRequest struct {
	Source      string          `json:"source" validate:"required"`
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	Frequency   IncomeFrequency `json:"frequency" validate:"required"`
	IsRecurring *bool           `json:"is_recurring"`
}

func (r *IncomeRequest) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("la fuente de ingreso es requerida")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("el monto debe ser un número positivo")
	}
	switch r.Frequency {
	case IncomeDaily, IncomeWeekly, IncomeMonthly, IncomeYearly:
	default:
		return fmt.Errorf("frecuencia de ingreso inválida: %s", r.Frequency)
	}
	return nil
}
