// Package economics implementa el motor de unit economics para marcas D2C:
// concilia ventas, costos de inventario, gasto de marketing y logística en un
// ledger por línea de pedido y deriva los KPIs por canal/mes y globales.
//
// Todas las funciones son puras: nada persiste entre invocaciones y cada etapa
// produce una tabla derivada nueva sin mutar la anterior.
package economics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
)

// Inputs tablas crudas de una invocación. Solo Sales es obligatoria; las demás
// pueden ser nil y el motor degrada a ceros.
type Inputs struct {
	Sales     *dataset.Table
	Inventory *dataset.Table
	Marketing *dataset.Table
	Logistics *dataset.Table
}

// FieldSource procedencia de un campo opcional: presente en la fuente o
// rellenado con el default. Hace visible (y testeable) cada cero silencioso.
type FieldSource int

const (
	FieldDefaulted FieldSource = iota
	FieldPresent
)

// CostSource procedencia del costo unitario de una línea.
type CostSource int

const (
	CostDefaulted CostSource = iota // sin match de inventario: COGS = 0
	CostMatched                     // Cost_Price (o COGS_per_Unit) encontrado
)

// SalesLine línea de venta ya tipada (salida del normalizador de esquema).
type SalesLine struct {
	OrderID    string
	OrderDate  time.Time
	Month      time.Time // OrderDate truncada al inicio de mes
	SKU        string
	Channel    string
	Units      decimal.Decimal
	Revenue    decimal.Decimal
	CustomerID string // vacío si la columna no existe
}

// SalesSchema columnas opcionales resueltas una sola vez en la ingesta.
type SalesSchema struct {
	CustomerID FieldSource
}

// LedgerRow fila del ledger conciliado: la línea de venta más los campos
// derivados. Invariantes:
//   - NetRevenue es Revenue o exactamente cero (sin devoluciones parciales).
//   - TotalCOGS y FulfillmentCost se restan siempre: son costos hundidos.
type LedgerRow struct {
	SalesLine

	UnitCost          decimal.Decimal
	CostSource        CostSource
	TotalCOGS         decimal.Decimal
	FulfillmentCost   decimal.Decimal
	FulfillmentSource FieldSource
	IsReturn          bool
	ReturnReason      string

	NetRevenue    decimal.Decimal
	GrossProfit   decimal.Decimal
	Contribution1 decimal.Decimal
}

// Warnings acumula avisos de degradación (joins irresolubles, filas
// descartadas, COGS por defecto) para devolverlos junto al reporte.
type Warnings struct {
	msgs []string
}

// Addf agrega un aviso con formato.
func (w *Warnings) Addf(format string, args ...any) {
	if w == nil {
		return
	}
	w.msgs = append(w.msgs, fmt.Sprintf(format, args...))
}

// Messages devuelve los avisos acumulados (nunca nil).
func (w *Warnings) Messages() []string {
	if w == nil || w.msgs == nil {
		return []string{}
	}
	return w.msgs
}
