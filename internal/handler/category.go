package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *logrus.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, logger: logger}
}

func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("", h.Create).Methods("POST")
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	categories, err := h.categoryService.List(r.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Error al obtener categorías")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.WithError(err).Error("Error al crear categoría")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, category)
}
