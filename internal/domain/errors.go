package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnknownStream = errors.New("stream de inventario desconocido")
	ErrConflict      = errors.New("conflicto con el estado actual")
)
