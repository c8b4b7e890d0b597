package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "ingreso" // ingreso de dinero
	TransactionTypeExpense TransactionType = "gasto"   // gasto de dinero
)

type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Description string          `json:"description" db:"description"`
	Amount      float64         `json:"amount" db:"amount"`
	Type        TransactionType `json:"type" db:"type"`
	Category    string          `json:"category" db:"category"`
	Date        time.Time       `json:"date" db:"date"`
}

type TransactionRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	Type        TransactionType `json:"type" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Date        *time.Time      `json:"date"`
}

// TransactionSummary resume los movimientos de un usuario
type TransactionSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

func (r *TransactionRequest) Validate() error {
	if r.Description == "" || r.Category == "" {
		return fmt.Errorf("todos los campos son requeridos")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("el monto debe ser un número positivo")
	}
	if r.Type != TransactionTypeIncome && r.Type != TransactionTypeExpense {
		return fmt.Errorf("tipo de transacción inválido: %s", r.Type)
	}
	return nil
}
