package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

// userIDFromContext extrae el ID del usuario autenticado del contexto
func userIDFromContext(r *http.Request) (uuid.UUID, error) {
	raw, ok := r.Context().Value("userID").(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("usuario no autenticado")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identificador de usuario inválido")
	}

	return userID, nil
}

// respondJSON escribe la respuesta con el encabezado y código indicados
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondServiceError traduce los errores del servicio a códigos HTTP
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
