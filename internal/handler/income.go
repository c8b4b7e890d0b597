package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

type IncomeHandler struct {
	incomeService *service.IncomeService
	logger        *logrus.Logger
}

func NewIncomeHandler(incomeService *service.IncomeService, logger *logrus.Logger) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, logger: logger}
}

func (h *IncomeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("", h.Create).Methods("POST")
}

func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	incomes, err := h.incomeService.List(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener fuentes de ingreso")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, incomes)
}

func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req model.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	income, err := h.incomeService.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.WithError(err).Error("Error al registrar fuente de ingreso")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, income)
}
