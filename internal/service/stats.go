package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

// shortMonthNames son las etiquetas de mes de los gráficos comparativos
var shortMonthNames = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

type StatsService struct {
	transactionRepo *repository.TransactionRepository
	budgetRepo      *repository.BudgetRepository
	logger          *logrus.Logger
}

func NewStatsService(
	transactionRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	logger *logrus.Logger,
) *StatsService {
	return &StatsService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		logger:          logger,
	}
}

// GetExpensesByCategory devuelve los gastos del usuario agrupados por categoría
func (s *StatsService) GetExpensesByCategory(ctx context.Context, userID uuid.UUID) ([]model.CategoryTotal, error) {
	totals, err := s.transactionRepo.GetExpensesByCategory(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al agrupar gastos por categoría")
		return nil, fmt.Errorf("error al obtener gastos por categoría: %w", err)
	}
	return totals, nil
}

// GetIncomeVsExpenses compara ingresos y gastos de los últimos seis meses
func (s *StatsService) GetIncomeVsExpenses(ctx context.Context, userID uuid.UUID) ([]model.MonthlyFlow, error) {
	now := time.Now()
	sixMonthsAgo := now.AddDate(0, -6, 0)

	flow, err := s.transactionRepo.GetMonthlyFlow(ctx, userID, sixMonthsAgo)
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener el flujo mensual")
		return nil, fmt.Errorf("error al obtener flujo mensual: %w", err)
	}

	// Seis meses en orden cronológico, rellenando con cero los meses sin movimientos
	result := make([]model.MonthlyFlow, 0, 6)
	for i := 5; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		mf := flow[int(month.Month())]
		mf.Month = shortMonthNames[month.Month()-1]
		result = append(result, mf)
	}

	return result, nil
}

// GetBudgetOverview compara el presupuesto total contra el gasto total
func (s *StatsService) GetBudgetOverview(ctx context.Context, userID uuid.UUID) (*model.BudgetOverview, error) {
	total, err := s.budgetRepo.GetTotalBudget(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener el presupuesto total")
		return nil, fmt.Errorf("error al obtener presupuesto total: %w", err)
	}

	summary, err := s.transactionRepo.GetSummary(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener el resumen de transacciones")
		return nil, fmt.Errorf("error al obtener resumen: %w", err)
	}

	return &model.BudgetOverview{
		Total: total,
		Used:  summary.TotalExpenses,
	}, nil
}
