package service

import "errors"

var (
	// ErrNotFound indica que el recurso solicitado no existe
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrUnauthorized indica que el recurso no pertenece al usuario
	ErrUnauthorized = errors.New("no autorizado")
)
