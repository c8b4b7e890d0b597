package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *logrus.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *logrus.Logger) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, logger: logger}
}

func (h *BudgetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("", h.Create).Methods("POST")
	router.HandleFunc("/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	budgets, err := h.budgetService.List(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener presupuestos")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, budgets)
}

func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req model.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	budget, err := h.budgetService.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.WithError(err).Error("Error al crear presupuesto")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, budget)
}

func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	budgetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	var req model.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	budget, err := h.budgetService.Update(r.Context(), budgetID, userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, budget)
}

func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	budgetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	if err := h.budgetService.Delete(r.Context(), budgetID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Presupuesto eliminado"})
}
