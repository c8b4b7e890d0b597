package model

import (
	"testing"
	"time"
)

func TestDebtRequest_Validate(t *testing.T) {
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     DebtRequest
		wantErr bool
	}{
		{
			name: "deuda con vencimiento válida",
			req: DebtRequest{
				Description: "Crédito de consumo",
				Amount:      250000,
				Category:    "Préstamo Bancario",
				DueDate:     &dueDate,
			},
			wantErr: false,
		},
		{
			name: "deuda indefinida sin fecha válida",
			req: DebtRequest{
				Description:       "Mesada",
				Amount:            50000,
				Category:          "Personal",
				IsIndefinite:      true,
				ReminderFrequency: ReminderMonthly,
			},
			wantErr: false,
		},
		{
			name: "no indefinida sin fecha de vencimiento",
			req: DebtRequest{
				Description: "Cuota",
				Amount:      10000,
				Category:    "Personal",
			},
			wantErr: true,
		},
		{
			name: "sin descripción",
			req: DebtRequest{
				Amount:   10000,
				Category: "Personal",
				DueDate:  &dueDate,
			},
			wantErr: true,
		},
		{
			name: "monto negativo",
			req: DebtRequest{
				Description: "Cuota",
				Amount:      -5,
				Category:    "Personal",
				DueDate:     &dueDate,
			},
			wantErr: true,
		},
		{
			name: "categoría desconocida",
			req: DebtRequest{
				Description: "Cuota",
				Amount:      10000,
				Category:    "Mascotas",
				DueDate:     &dueDate,
			},
			wantErr: true,
		},
		{
			name: "frecuencia inválida",
			req: DebtRequest{
				Description:       "Cuota",
				Amount:            10000,
				Category:          "Personal",
				DueDate:           &dueDate,
				ReminderFrequency: ReminderFrequency("ANUAL"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
