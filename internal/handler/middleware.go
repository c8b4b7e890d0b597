package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

// AuthMiddleware verifica la presencia y validez del token JWT en el encabezado Authorization
func AuthMiddleware(authService *service.AuthService, logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Error("Falta el encabezado Authorization")
				http.Error(w, "El encabezado Authorization es obligatorio", http.StatusUnauthorized)
				return
			}

			// Verificamos el formato del encabezado
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Error("Formato inválido del encabezado Authorization")
				http.Error(w, "Formato inválido del encabezado Authorization", http.StatusUnauthorized)
				return
			}

			token := parts[1]
			userID, err := authService.ParseToken(token)
			if err != nil {
				logger.WithError(err).Error("Token inválido")
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}

			// Agregamos el userID al contexto
			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
