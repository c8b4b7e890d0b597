package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

type fakeReportStore struct {
	reports   map[uuid.UUID]*model.Report
	createErr error
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: make(map[uuid.UUID]*model.Report)}
}

func (f *fakeReportStore) Create(ctx context.Context, report *model.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	var out []model.Report
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, errors.New("informe no encontrado")
	}
	return report, nil
}

func (f *fakeReportStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.reports, id)
	return nil
}

// fakeRolloverStore emula la unidad atómica del cierre mensual: si Archive
// falla, las transacciones y presupuestos quedan intactos.
type fakeRolloverStore struct {
	transactions []model.Transaction
	budgets      []model.Budget
	archived     *model.Report
	archiveErr   error
}

func (f *fakeRolloverStore) ListTransactions(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeRolloverStore) ListBudgets(ctx context.Context, userID uuid.UUID) ([]model.Budget, error) {
	return f.budgets, nil
}

func (f *fakeRolloverStore) Archive(ctx context.Context, report *model.Report, userID uuid.UUID) error {
	if f.archiveErr != nil {
		return f.archiveErr
	}
	f.archived = report
	f.transactions = nil
	for i := range f.budgets {
		f.budgets[i].Spent = 0
	}
	return nil
}

type fakeReportDebtStore struct {
	debts []model.Debt
}

func (f *fakeReportDebtStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Debt, error) {
	return f.debts, nil
}

func rolloverFixture(now time.Time) (*ReportService, *fakeReportStore, *fakeRolloverStore) {
	userID := uuid.New()
	reportStore := newFakeReportStore()
	rolloverStore := &fakeRolloverStore{
		transactions: []model.Transaction{
			{ID: uuid.New(), UserID: userID, Description: "Sueldo", Amount: 1000, Type: model.TransactionTypeIncome},
			{ID: uuid.New(), UserID: userID, Description: "Supermercado", Amount: 300, Type: model.TransactionTypeExpense},
			{ID: uuid.New(), UserID: userID, Description: "Transporte", Amount: 200, Type: model.TransactionTypeExpense},
		},
		budgets: []model.Budget{
			{ID: uuid.New(), UserID: userID, Category: "Alimentación", Amount: 500, Spent: 300},
		},
	}
	svc := NewReportService(reportStore, rolloverStore, &fakeReportDebtStore{}, newTestLogger())
	svc.now = func() time.Time { return now }
	return svc, reportStore, rolloverStore
}

func TestRollover_ArchivesAndResets(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	svc, _, rolloverStore := rolloverFixture(now)
	userID := rolloverStore.transactions[0].UserID

	report, err := svc.Rollover(context.Background(), userID)
	if err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}

	if report.Title != "Informe Mensual - agosto 2026" {
		t.Errorf("título = %q, want %q", report.Title, "Informe Mensual - agosto 2026")
	}

	summary := report.Data.Summary
	if summary.TotalIncome != 1000 {
		t.Errorf("TotalIncome = %v, want 1000", summary.TotalIncome)
	}
	if summary.TotalExpenses != 500 {
		t.Errorf("TotalExpenses = %v, want 500", summary.TotalExpenses)
	}
	if summary.TotalBudget != 500 {
		t.Errorf("TotalBudget = %v, want 500", summary.TotalBudget)
	}
	if summary.Month != "agosto" || summary.Year != 2026 {
		t.Errorf("periodo = %s %d, want agosto 2026", summary.Month, summary.Year)
	}

	if len(report.Data.Incomes) != 1 || len(report.Data.Expenses) != 2 {
		t.Errorf("partición = %d ingresos / %d gastos, want 1/2",
			len(report.Data.Incomes), len(report.Data.Expenses))
	}

	if rolloverStore.archived == nil {
		t.Fatal("el informe no fue archivado")
	}
	if len(rolloverStore.transactions) != 0 {
		t.Errorf("quedaron %d transacciones tras el cierre, want 0", len(rolloverStore.transactions))
	}
	for _, b := range rolloverStore.budgets {
		if b.Spent != 0 {
			t.Errorf("presupuesto %q con spent = %v tras el cierre, want 0", b.Category, b.Spent)
		}
	}
}

func TestRollover_FailureLeavesDataIntact(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	svc, _, rolloverStore := rolloverFixture(now)
	userID := rolloverStore.transactions[0].UserID
	rolloverStore.archiveErr = errors.New("conexión perdida")

	if _, err := svc.Rollover(context.Background(), userID); err == nil {
		t.Fatal("Rollover() debería fallar si el archivado falla")
	}

	if rolloverStore.archived != nil {
		t.Error("no debería haber informe archivado tras un fallo")
	}
	if len(rolloverStore.transactions) != 3 {
		t.Errorf("transacciones = %d tras el fallo, want 3", len(rolloverStore.transactions))
	}
	if rolloverStore.budgets[0].Spent != 300 {
		t.Errorf("spent = %v tras el fallo, want 300", rolloverStore.budgets[0].Spent)
	}
}

func TestCreateReport_DefaultTitleAndTotals(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	reportStore := newFakeReportStore()
	rolloverStore := &fakeRolloverStore{
		transactions: []model.Transaction{
			{ID: uuid.New(), UserID: userID, Amount: 800, Type: model.TransactionTypeIncome},
			{ID: uuid.New(), UserID: userID, Amount: 250, Type: model.TransactionTypeExpense},
		},
	}
	debtStore := &fakeReportDebtStore{
		debts: []model.Debt{
			{ID: uuid.New(), UserID: userID, Description: "Crédito", Amount: 120},
		},
	}
	svc := NewReportService(reportStore, rolloverStore, debtStore, newTestLogger())
	svc.now = func() time.Time { return now }

	report, err := svc.CreateReport(context.Background(), userID, "")
	if err != nil {
		t.Fatalf("CreateReport() error = %v", err)
	}

	if report.Title != "Informe Financiero - 15-08-2026" {
		t.Errorf("título = %q, want %q", report.Title, "Informe Financiero - 15-08-2026")
	}

	summary := report.Data.Summary
	if summary.TotalIncome != 800 || summary.TotalExpenses != 250 {
		t.Errorf("totales = %v/%v, want 800/250", summary.TotalIncome, summary.TotalExpenses)
	}
	if summary.TotalDebts != 120 {
		t.Errorf("TotalDebts = %v, want 120", summary.TotalDebts)
	}
	if summary.Balance != 550 {
		t.Errorf("Balance = %v, want 550", summary.Balance)
	}

	if _, ok := reportStore.reports[report.ID]; !ok {
		t.Error("el informe no fue persistido")
	}
}

func TestGetReport_Ownership(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	owner := uuid.New()
	intruder := uuid.New()

	reportStore := newFakeReportStore()
	report := &model.Report{ID: uuid.New(), UserID: owner, Title: "Informe", Date: now}
	reportStore.reports[report.ID] = report

	svc := NewReportService(reportStore, &fakeRolloverStore{}, &fakeReportDebtStore{}, newTestLogger())

	if _, err := svc.GetReport(context.Background(), report.ID, owner); err != nil {
		t.Errorf("GetReport() con el dueño devolvió error: %v", err)
	}

	if _, err := svc.GetReport(context.Background(), report.ID, intruder); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("GetReport() con otro usuario = %v, want ErrUnauthorized", err)
	}

	if _, err := svc.GetReport(context.Background(), uuid.New(), owner); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetReport() inexistente = %v, want ErrNotFound", err)
	}
}
