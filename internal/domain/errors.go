package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Regla de propagación: un "miss" de búsqueda es un valor (nil), no un error;
// ErrNotFound se reserva para operaciones que exigen un registro existente.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)
