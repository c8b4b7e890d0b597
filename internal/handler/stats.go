package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
	logger       *logrus.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

func (h *StatsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/expenses-by-category", h.ExpensesByCategory).Methods("GET")
	router.HandleFunc("/income-vs-expenses", h.IncomeVsExpenses).Methods("GET")
	router.HandleFunc("/budget-overview", h.BudgetOverview).Methods("GET")
}

func (h *StatsHandler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	totals, err := h.statsService.GetExpensesByCategory(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener gastos por categoría")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, totals)
}

func (h *StatsHandler) IncomeVsExpenses(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	flow, err := h.statsService.GetIncomeVsExpenses(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al comparar ingresos y gastos")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, flow)
}

func (h *StatsHandler) BudgetOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	overview, err := h.statsService.GetBudgetOverview(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener el uso del presupuesto")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}
