package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *logrus.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, logger: logger}
}

func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("", h.Create).Methods("POST")
	router.HandleFunc("/rollover", h.Rollover).Methods("POST")
	router.HandleFunc("/{id}", h.Get).Methods("GET")
	router.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	reports, err := h.reportService.ListReports(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener informes")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if r.Body != nil {
		// El cuerpo es opcional: sin título se genera uno con la fecha actual
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	report, err := h.reportService.CreateReport(r.Context(), userID, req.Title)
	if err != nil {
		h.logger.WithError(err).Error("Error al crear informe")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) Rollover(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	report, err := h.reportService.Rollover(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al realizar el cierre mensual")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Cierre mensual completado",
		"report":  report,
	})
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	report, err := h.reportService.GetReport(r.Context(), reportID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Identificador inválido", http.StatusBadRequest)
		return
	}

	if err := h.reportService.DeleteReport(r.Context(), reportID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Informe eliminado"})
}
