package economics

import (
	"strings"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
)

// DefaultReturnSynonyms valores de Return_Status que cuentan como devolución
// cuando no hay configuración explícita. "rto" (Return To Origin) es el término
// de los couriers para un envío no entregado.
var DefaultReturnSynonyms = []string{"returned", "rto", "return"}

// ReturnResolver normaliza el indicador de devolución de la tabla logística.
// El booleano que produce es la única fuente de verdad para todo cálculo
// posterior que dependa de devoluciones; ninguna etapa lo re-deriva.
type ReturnResolver struct {
	synonyms []string
}

// NewReturnResolver construye el resolver. Lista vacía → sinónimos por defecto.
func NewReturnResolver(synonyms []string) *ReturnResolver {
	if len(synonyms) == 0 {
		synonyms = DefaultReturnSynonyms
	}
	normalized := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		if s = strings.TrimSpace(s); s != "" {
			normalized = append(normalized, s)
		}
	}
	return &ReturnResolver{synonyms: normalized}
}

// Resolve determina si una fila logística es devolución.
// Prioridad: columna flag (Is_Return) si existe; si no, columna categórica
// (Return_Status) contra los sinónimos. Valor no reconocido o ausencia de
// ambas columnas → no devuelta.
func (r *ReturnResolver) Resolve(flag string, hasFlag bool, status string, hasStatus bool) bool {
	if hasFlag {
		value, recognized := dataset.ParseFlag(flag)
		return recognized && value
	}
	if hasStatus {
		return r.matchesStatus(status)
	}
	return false
}

// matchesStatus compara el estado contra los sinónimos, case-insensitive.
func (r *ReturnResolver) matchesStatus(status string) bool {
	status = strings.TrimSpace(status)
	for _, syn := range r.synonyms {
		if strings.EqualFold(status, syn) {
			return true
		}
	}
	return false
}
