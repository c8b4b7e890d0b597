package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

// AuthHandler procesa las peticiones de autenticación
type AuthHandler struct {
	authService *service.AuthService
	logger      *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registra las rutas de autenticación
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/signup", h.SignUp).Methods("POST")
	router.HandleFunc("/signin", h.SignIn).Methods("POST")
}

// SignUp procesa el registro de un nuevo usuario
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input model.SignUpInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Error("No se pudieron decodificar los datos de registro")
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	if err := input.Validate(); err != nil {
		h.logger.WithError(err).Error("Error de validación en los datos de registro")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.authService.SignUp(r.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("No se pudo registrar al usuario")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"currency":   user.Currency,
		"created_at": user.CreatedAt.Format(time.RFC3339),
	}

	respondJSON(w, http.StatusCreated, response)
}

// SignIn procesa el inicio de sesión
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input model.SignInInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Error("No se pudieron decodificar los datos de inicio de sesión")
		http.Error(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	token, err := h.authService.SignIn(r.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("No se pudo iniciar sesión")
		http.Error(w, "Credenciales inválidas", http.StatusUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
