package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

type OverviewHandler struct {
	overviewService *service.OverviewService
	ecbClient       *service.ECBClient
	logger          *logrus.Logger
}

func NewOverviewHandler(overviewService *service.OverviewService, ecbClient *service.ECBClient, logger *logrus.Logger) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService, ecbClient: ecbClient, logger: logger}
}

func (h *OverviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/summary", h.GetSummary).Methods("GET")
	router.HandleFunc("/rates", h.GetRates).Methods("GET")
}

func (h *OverviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	summary, err := h.overviewService.GetSummary(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener el resumen financiero")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *OverviewHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.ecbClient.GetDailyRates()
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener tipos de cambio")
		http.Error(w, "No se pudieron obtener los tipos de cambio", http.StatusBadGateway)
		return
	}

	respondJSON(w, http.StatusOK, rates)
}
