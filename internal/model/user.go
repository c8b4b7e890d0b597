package model

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Currency  string    `json:"currency" db:"currency"` // CLP, USD, EUR
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type SignUpInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	Currency string `json:"currency"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UpdateProfileInput struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (u *SignUpInput) Validate() error {
	if len(u.Name) < 2 {
		return fmt.Errorf("el nombre debe tener al menos 2 caracteres")
	}

	// Validación de email
	if !isValidEmail(u.Email) {
		return fmt.Errorf("formato de email inválido")
	}

	// Validación de contraseña
	if !isValidPassword(u.Password) {
		return fmt.Errorf("la contraseña debe tener al menos 8 caracteres e incluir letras y números")
	}

	if u.Currency != "" && !IsValidCurrency(u.Currency) {
		return fmt.Errorf("moneda no soportada: %s", u.Currency)
	}

	return nil
}

// IsValidCurrency verifica que la moneda esté entre las soportadas
func IsValidCurrency(currency string) bool {
	switch currency {
	case "CLP", "USD", "EUR":
		return true
	}
	return false
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPassword(password string) bool {
	var (
		hasLetter = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	return hasLetter && hasNumber && len(password) >= 8
}
