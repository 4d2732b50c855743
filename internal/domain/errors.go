package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingColumn = errors.New("columna obligatoria ausente")
	ErrEmptyTable    = errors.New("tabla sin filas")
	ErrInvalidCell   = errors.New("celda con formato inválido")
	ErrInvalidInput  = errors.New("entrada inválida")
)
