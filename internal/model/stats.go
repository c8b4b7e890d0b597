package model

// CategoryTotal es el gasto acumulado en una categoría
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthlyFlow compara ingresos y gastos de un mes
type MonthlyFlow struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// BudgetOverview compara el presupuesto total contra el gasto total
type BudgetOverview struct {
	Total float64 `json:"total"`
	Used  float64 `json:"used"`
}

// OverviewSummary es el resumen financiero del mes en curso
type OverviewSummary struct {
	CurrentBalance  float64 `json:"currentBalance"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	RemainingBudget float64 `json:"remainingBudget"`
}

// ExchangeRates son los tipos de cambio del día publicados por el BCE
type ExchangeRates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
