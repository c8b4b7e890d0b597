package model

import "testing"

func TestSignUpInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   SignUpInput
		wantErr bool
	}{
		{
			name:    "registro válido",
			input:   SignUpInput{Name: "Juan", Email: "juan@example.com", Password: "secreta123"},
			wantErr: false,
		},
		{
			name:    "registro válido con moneda",
			input:   SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "secreta123", Currency: "USD"},
			wantErr: false,
		},
		{
			name:    "nombre muy corto",
			input:   SignUpInput{Name: "J", Email: "juan@example.com", Password: "secreta123"},
			wantErr: true,
		},
		{
			name:    "email inválido",
			input:   SignUpInput{Name: "Juan", Email: "no-es-un-email", Password: "secreta123"},
			wantErr: true,
		},
		{
			name:    "contraseña corta",
			input:   SignUpInput{Name: "Juan", Email: "juan@example.com", Password: "abc1"},
			wantErr: true,
		},
		{
			name:    "contraseña sin números",
			input:   SignUpInput{Name: "Juan", Email: "juan@example.com", Password: "soloLetras"},
			wantErr: true,
		},
		{
			name:    "contraseña sin letras",
			input:   SignUpInput{Name: "Juan", Email: "juan@example.com", Password: "12345678"},
			wantErr: true,
		},
		{
			name:    "moneda no soportada",
			input:   SignUpInput{Name: "Juan", Email: "juan@example.com", Password: "secreta123", Currency: "ARS"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidCurrency(t *testing.T) {
	for _, currency := range []string{"CLP", "USD", "EUR"} {
		if !IsValidCurrency(currency) {
			t.Errorf("IsValidCurrency(%q) = false, want true", currency)
		}
	}
	for _, currency := range []string{"", "clp", "ARS", "GBP"} {
		if IsValidCurrency(currency) {
			t.Errorf("IsValidCurrency(%q) = true, want false", currency)
		}
	}
}
