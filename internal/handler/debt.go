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

type DebtHandler struct {
	debtService *service.DebtService
	logger      *logrus.Logger
}

func NewDebtHandler(debtService *service.DebtService, logger *logrus.Logger) *DebtHandler {
	return &DebtHandler{debtService: debtService, logger: logger}
}

func (h *DebtHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("/upcoming", h.ListUpcoming).Methods("GET")
	router.HandleFunc("", h.Create).Methods("POST")
	router.HandleFunc("/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	debts, err := h.debtService.List(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener deudas")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, debts)
}

func (h *DebtHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	debts, err := h.debtService.ListUpcoming(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener deudas próximas")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, debts)
}

func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req model.DebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	debt, err := h.debtService.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.WithError(err).Error("Error al añadir deuda")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, debt)
}

func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	debtID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	var req model.DebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	debt, err := h.debtService.Update(r.Context(), debtID, userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, debt)
}

func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	debtID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	if err := h.debtService.Delete(r.Context(), debtID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Deuda eliminada"})
}
