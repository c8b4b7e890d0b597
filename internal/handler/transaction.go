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

type TransactionHandler struct {
	transactionService *service.TransactionService
	logger             *logrus.Logger
}

func NewTransactionHandler(transactionService *service.TransactionService, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, logger: logger}
}

func (h *TransactionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("/income", h.ListIncome).Methods("GET")
	router.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	router.HandleFunc("/summary", h.GetSummary).Methods("GET")
	router.HandleFunc("", h.Create).Methods("POST")
	router.HandleFunc("/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	transactions, err := h.transactionService.List(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener transacciones")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	h.listByType(w, r, model.TransactionTypeIncome)
}

func (h *TransactionHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	h.listByType(w, r, model.TransactionTypeExpense)
}

func (h *TransactionHandler) listByType(w http.ResponseWriter, r *http.Request, txType model.TransactionType) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	transactions, err := h.transactionService.ListByType(r.Context(), userID, txType)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener transacciones por tipo")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	summary, err := h.transactionService.GetSummary(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener el resumen de transacciones")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req model.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	transaction, err := h.transactionService.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.WithError(err).Error("Error al crear la transacción")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	transactionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	var req model.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	transaction, err := h.transactionService.Update(r.Context(), transactionID, userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	transactionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	if err := h.transactionService.Delete(r.Context(), transactionID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Transacción eliminada"})
}
