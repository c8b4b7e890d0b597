package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report es una instantánea inmutable de la actividad financiera del usuario.
// Una vez creado nunca se modifica, solo se elimina completo.
type Report struct {
	ID     uuid.UUID  `json:"id" db:"id"`
	UserID uuid.UUID  `json:"user_id" db:"user_id"`
	Title  string     `json:"title" db:"title"`
	Data   ReportData `json:"data" db:"data"`
	Date   time.Time  `json:"date" db:"date"`
}

type ReportData struct {
	Transactions []Transaction `json:"transactions,omitempty"`
	Incomes      []Transaction `json:"incomes,omitempty"`
	Expenses     []Transaction `json:"expenses,omitempty"`
	Debts        []Debt        `json:"debts,omitempty"`
	Budgets      []Budget      `json:"budgets,omitempty"`
	Summary      ReportSummary `json:"summary"`
}

type ReportSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalBudget   float64 `json:"totalBudget,omitempty"`
	TotalDebts    float64 `json:"totalDebts,omitempty"`
	Balance       float64 `json:"balance,omitempty"`
	Month         string  `json:"month,omitempty"`
	Year          int     `json:"year,omitempty"`
}

// Value serializa los datos del informe a JSONB
func (d ReportData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan deserializa los datos del informe desde JSONB
func (d *ReportData) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("tipo inesperado para los datos del informe: %T", value)
	}
	return json.Unmarshal(b, d)
}
