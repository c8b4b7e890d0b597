package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

// monthNames son los nombres de mes usados en los títulos de informes
var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

type reportStore interface {
	Create(ctx context.Context, report *model.Report) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type rolloverStore interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]model.Budget, error)
	Archive(ctx context.Context, report *model.Report, userID uuid.UUID) error
}

type reportDebtStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Debt, error)
}

type ReportService struct {
	reportRepo   reportStore
	rolloverRepo rolloverStore
	debtRepo     reportDebtStore
	logger       *logrus.Logger
	now          func() time.Time
}

func NewReportService(
	reportRepo reportStore,
	rolloverRepo rolloverStore,
	debtRepo reportDebtStore,
	logger *logrus.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		rolloverRepo: rolloverRepo,
		debtRepo:     debtRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Rollover archiva la actividad financiera del usuario en un informe mensual
// inmutable, elimina sus transacciones y reinicia los contadores de gasto de
// sus presupuestos. La operación es atómica: si algún paso falla no queda
// ningún efecto parcial visible.
func (s *ReportService) Rollover(ctx context.Context, userID uuid.UUID) (*model.Report, error) {
	s.logger.WithField("user_id", userID).Info("Iniciando cierre mensual")

	transactions, err := s.rolloverRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al cargar transacciones para el cierre")
		return nil, fmt.Errorf("error al cargar transacciones: %w", err)
	}

	budgets, err := s.rolloverRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al cargar presupuestos para el cierre")
		return nil, fmt.Errorf("error al cargar presupuestos: %w", err)
	}

	// Partición de transacciones en ingresos y gastos
	var incomes, expenses []model.Transaction
	var totalIncome, totalExpenses float64
	for _, tx := range transactions {
		if tx.Type == model.TransactionTypeIncome {
			incomes = append(incomes, tx)
			totalIncome += tx.Amount
		} else {
			expenses = append(expenses, tx)
			totalExpenses += tx.Amount
		}
	}

	var totalBudget float64
	for _, budget := range budgets {
		totalBudget += budget.Amount
	}

	now := s.now()
	monthName := monthNames[now.Month()-1]

	report := &model.Report{
		ID:     uuid.New(),
		UserID: userID,
		Title:  fmt.Sprintf("Informe Mensual - %s %d", monthName, now.Year()),
		Data: model.ReportData{
			Transactions: transactions,
			Incomes:      incomes,
			Expenses:     expenses,
			Budgets:      budgets,
			Summary: model.ReportSummary{
				TotalIncome:   totalIncome,
				TotalExpenses: totalExpenses,
				TotalBudget:   totalBudget,
				Month:         monthName,
				Year:          now.Year(),
			},
		},
		Date: now,
	}

	if err := s.rolloverRepo.Archive(ctx, report, userID); err != nil {
		s.logger.WithError(err).Error("Error al archivar el cierre mensual")
		return nil, fmt.Errorf("error al realizar el cierre mensual: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":        userID,
		"report_id":      report.ID,
		"total_income":   totalIncome,
		"total_expenses": totalExpenses,
	}).Info("Cierre mensual completado")

	return report, nil
}

// CreateReport genera una instantánea ad-hoc de la situación financiera actual
// sin alterar los datos subyacentes.
func (s *ReportService) CreateReport(ctx context.Context, userID uuid.UUID, title string) (*model.Report, error) {
	transactions, err := s.rolloverRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error al cargar transacciones: %w", err)
	}

	debts, err := s.debtRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error al cargar deudas: %w", err)
	}

	var incomes, expenses []model.Transaction
	var totalIncome, totalExpenses, totalDebts float64
	for _, tx := range transactions {
		if tx.Type == model.TransactionTypeIncome {
			incomes = append(incomes, tx)
			totalIncome += tx.Amount
		} else {
			expenses = append(expenses, tx)
			totalExpenses += tx.Amount
		}
	}
	for _, debt := range debts {
		totalDebts += debt.Amount
	}

	now := s.now()
	if title == "" {
		title = fmt.Sprintf("Informe Financiero - %s", now.Format("02-01-2006"))
	}

	report := &model.Report{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
		Data: model.ReportData{
			Incomes:  incomes,
			Expenses: expenses,
			Debts:    debts,
			Summary: model.ReportSummary{
				TotalIncome:   totalIncome,
				TotalExpenses: totalExpenses,
				TotalDebts:    totalDebts,
				Balance:       totalIncome - totalExpenses,
			},
		},
		Date: now,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		s.logger.WithError(err).Error("Error al crear informe")
		return nil, fmt.Errorf("error al crear informe: %w", err)
	}

	return report, nil
}

func (s *ReportService) ListReports(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	reports, err := s.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Error al obtener informes")
		return nil, fmt.Errorf("error al obtener informes: %w", err)
	}
	return reports, nil
}

func (s *ReportService) GetReport(ctx context.Context, reportID, userID uuid.UUID) (*model.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		s.logger.WithError(err).Warnf("Informe %s no encontrado", reportID)
		return nil, ErrNotFound
	}

	if report.UserID != userID {
		s.logger.Warnf("Intento de acceso a informe ajeno: usuario %s, dueño %s", userID, report.UserID)
		return nil, ErrUnauthorized
	}

	return report, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, reportID, userID uuid.UUID) error {
	if _, err := s.GetReport(ctx, reportID, userID); err != nil {
		return err
	}

	if err := s.reportRepo.Delete(ctx, reportID); err != nil {
		s.logger.WithError(err).Errorf("Error al eliminar el informe %s", reportID)
		return fmt.Errorf("error al eliminar informe: %w", err)
	}

	return nil
}
