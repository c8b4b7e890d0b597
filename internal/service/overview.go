package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

// summaryCacheTTL es la vigencia del resumen mensual cacheado
const summaryCacheTTL = 60 * time.Second

type OverviewService struct {
	transactionRepo *repository.TransactionRepository
	budgetRepo      *repository.BudgetRepository
	cache           repository.CacheRepository
	logger          *logrus.Logger
}

// NewOverviewService crea el servicio del resumen financiero. El cache es
// opcional: con nil cada consulta se calcula contra la base de datos.
func NewOverviewService(
	transactionRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *OverviewService {
	return &OverviewService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		cache:           cache,
		logger:          logger,
	}
}

// GetSummary devuelve el resumen financiero del mes en curso
func (s *OverviewService) GetSummary(ctx context.Context, userID uuid.UUID) (*model.OverviewSummary, error) {
	cacheKey := fmt.Sprintf("overview:%s", userID)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var summary model.OverviewSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				s.logger.WithField("user_id", userID).Debug("Resumen obtenido desde cache")
				return &summary, nil
			}
		}
	}

	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	income, expenses, err := s.transactionRepo.GetMonthlyTotals(ctx, userID, firstDayOfMonth)
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener totales del mes")
		return nil, fmt.Errorf("error al obtener el resumen financiero: %w", err)
	}

	totalBudget, err := s.budgetRepo.GetTotalBudget(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener el presupuesto total")
		return nil, fmt.Errorf("error al obtener el resumen financiero: %w", err)
	}

	summary := &model.OverviewSummary{
		CurrentBalance:  income - expenses,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		RemainingBudget: totalBudget - expenses,
	}

	if s.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), summaryCacheTTL); err != nil {
				s.logger.WithError(err).Warn("No se pudo cachear el resumen")
			}
		}
	}

	return summary, nil
}
