// Package dataset modela las tablas de entrada tal como llegan del uploader:
// columnas nombradas, celdas de texto, esquema no garantizado. Las etapas del
// motor resuelven aquí la presencia de columnas una sola vez y convierten las
// celdas a tipos canónicos (fecha, decimal, flag).
package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

// Table tabla inmutable de columnas nombradas. Los encabezados se normalizan
// (trim de espacios) al construirla; las celdas se conservan tal cual.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// New construye una tabla a partir de encabezados y filas. Filas más cortas que
// el encabezado se rellenan con celdas vacías; las más largas se recortan.
func New(headers []string, rows [][]string) *Table {
	cols := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		cols[i] = h
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	normalized := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) == len(cols) {
			normalized[i] = r
			continue
		}
		row := make([]string, len(cols))
		copy(row, r)
		normalized[i] = row
	}

	return &Table{cols: cols, index: index, rows: normalized}
}

// FromMaps construye una tabla desde filas tipo objeto (JSON). El orden de
// columnas es alfabético para que el resultado sea determinista.
func FromMaps(records []map[string]string) *Table {
	seen := map[string]bool{}
	var cols []string
	for _, rec := range records {
		for k := range rec {
			k = strings.TrimSpace(k)
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(cols))
		for j, c := range cols {
			for k, v := range rec {
				if strings.TrimSpace(k) == c {
					row[j] = v
					break
				}
			}
		}
		rows[i] = row
	}
	return New(cols, rows)
}

// Columns devuelve los nombres de columna en su orden original.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Len número de filas.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn indica si la columna existe (tras el trim de encabezados).
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell devuelve la celda (con trim) de la fila i y la columna nombrada.
// ok=false si la columna no existe.
func (t *Table) Cell(i int, col string) (string, bool) {
	j, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return "", false
	}
	return strings.TrimSpace(t.rows[i][j]), true
}

// dateLayouts formatos aceptados para fechas de entrada. Los exports de Excel y
// de los marketplaces no se ponen de acuerdo en uno solo.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
}

// ParseDate convierte una celda a time.Time probando los formatos conocidos.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía: %w", domain.ErrInvalidCell)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q no reconocida: %w", s, domain.ErrInvalidCell)
}

// ParseDecimal convierte una celda numérica a decimal. Tolera separador de
// miles con coma y símbolo de moneda al inicio ("$1,234.50").
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("número vacío: %w", domain.ErrInvalidCell)
	}
	s = strings.TrimLeft(s, "$€ ")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número %q no reconocido: %w", s, domain.ErrInvalidCell)
	}
	return d, nil
}

// ParseFlag interpreta una celda booleana. recognized=false cuando el valor no
// corresponde a ninguna representación conocida.
func ParseFlag(s string) (value, recognized bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "si", "sí":
		return true, true
	case "0", "false", "no", "n", "":
		return false, true
	default:
		return false, false
	}
}

// MonthStart trunca una fecha al primer día del mes (clave de agregación).
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
