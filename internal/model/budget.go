package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Budget es el tope de gasto mensual por categoría. El campo Spent es un valor
// desnormalizado: el gasto autoritativo se calcula desde las transacciones al
// momento de la lectura, y la columna solo se reinicia en el cierre mensual.
type Budget struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Amount    float64   `json:"amount" db:"amount"`
	Spent     float64   `json:"spent" db:"spent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type BudgetRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

func (r *BudgetRequest) Validate() error {
	if r.Category == "" {
		return fmt.Errorf("la categoría es requerida")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("el monto debe ser un número positivo")
	}
	return nil
}
