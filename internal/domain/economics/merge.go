package economics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
)

// LogisticsEntry registro logístico normalizado de un pedido.
type LogisticsEntry struct {
	Fulfillment decimal.Decimal
	IsReturn    bool
	Reason      string
}

// NormalizeLogistics indexa la tabla logística por Order_ID y resuelve el
// indicador de devolución con el resolver. Tabla nil o sin columna Order_ID →
// join irresoluble: nil, con aviso; los pedidos quedan con costo 0 y sin
// devolución.
func NormalizeLogistics(t *dataset.Table, resolver *ReturnResolver, w *Warnings) map[string]LogisticsEntry {
	if t == nil {
		return nil
	}
	if !t.HasColumn(ColOrderID) {
		w.Addf("logística: sin columna %s, costos de envío y devoluciones quedan en 0", ColOrderID)
		return nil
	}

	hasFulfillment := t.HasColumn(ColFulfillment)
	hasFlag := t.HasColumn(ColIsReturn)
	hasStatus := t.HasColumn(ColReturnStatus)
	hasReason := t.HasColumn(ColReturnReason)

	entries := make(map[string]LogisticsEntry, t.Len())
	for i := 0; i < t.Len(); i++ {
		orderID, _ := t.Cell(i, ColOrderID)
		if orderID == "" {
			continue
		}

		var entry LogisticsEntry
		if hasFulfillment {
			raw, _ := t.Cell(i, ColFulfillment)
			cost, err := dataset.ParseDecimal(raw)
			if err != nil {
				w.Addf("logística fila %d: %s inválido, se asume 0", i+1, ColFulfillment)
			} else {
				entry.Fulfillment = cost
			}
		}

		flag, _ := t.Cell(i, ColIsReturn)
		status, _ := t.Cell(i, ColReturnStatus)
		entry.IsReturn = resolver.Resolve(flag, hasFlag, status, hasStatus)

		if hasReason {
			entry.Reason, _ = t.Cell(i, ColReturnReason)
		}

		entries[orderID] = entry
	}
	return entries
}

// BuildLedger concilia las líneas de venta con costos e información logística:
// left join ventas→inventario por SKU y ventas→logística por Order_ID. Sin
// match de inventario el COGS es 0 (una marca puede no haber subido costos);
// sin match logístico el envío es 0 y el pedido se asume no devuelto. Cada
// procedencia queda registrada en la fila.
func BuildLedger(sales []SalesLine, costs map[string]decimal.Decimal, logistics map[string]LogisticsEntry) []LedgerRow {
	ledger := make([]LedgerRow, 0, len(sales))
	for _, line := range sales {
		row := LedgerRow{SalesLine: line}

		if cost, ok := costs[line.SKU]; ok {
			row.UnitCost = cost
			row.CostSource = CostMatched
			row.TotalCOGS = cost.Mul(line.Units)
		} else {
			row.CostSource = CostDefaulted
			row.TotalCOGS = decimal.Zero
		}

		if entry, ok := logistics[line.OrderID]; ok {
			row.FulfillmentCost = entry.Fulfillment
			row.FulfillmentSource = FieldPresent
			row.IsReturn = entry.IsReturn
			row.ReturnReason = entry.Reason
		} else {
			row.FulfillmentCost = decimal.Zero
			row.FulfillmentSource = FieldDefaulted
		}

		DeriveLineMetrics(&row)
		ledger = append(ledger, row)
	}
	return ledger
}

// DefaultedCostLines cuenta las filas del ledger cuyo COGS quedó en default
// (para el aviso de precisión degradada del reporte).
func DefaultedCostLines(ledger []LedgerRow) int {
	n := 0
	for _, row := range ledger {
		if row.CostSource == CostDefaulted {
			n++
		}
	}
	return n
}
