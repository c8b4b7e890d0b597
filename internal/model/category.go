package model

import (
	"fmt"

	"github.com/google/uuid"
)

type Category struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	Name   string    `json:"name" db:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CategoryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("el nombre de la categoría es requerido")
	}
	return nil
}
