package economics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
)

// Nombres canónicos de columna del esquema de entrada (§ interfaces externas).
const (
	ColOrderID      = "Order_ID"
	ColOrderDate    = "Order_Date"
	ColSKU          = "SKU"
	ColChannel      = "Channel"
	ColUnits        = "Units_Sold"
	ColRevenue      = "Revenue"
	ColCustomerID   = "Customer_ID"
	ColCostPrice    = "Cost_Price"
	ColCOGSPerUnit  = "COGS_per_Unit"
	ColDate         = "Date"
	ColSpend        = "Spend"
	ColFulfillment  = "Fulfillment_Cost"
	ColIsReturn     = "Is_Return"
	ColReturnStatus = "Return_Status"
	ColReturnReason = "Return_Reason"
)

// requiredSalesColumns esquema mínimo de la tabla de ventas. Su ausencia es el
// único error fatal del pipeline.
var requiredSalesColumns = []string{
	ColOrderID, ColOrderDate, ColSKU, ColChannel, ColUnits, ColRevenue,
}

// NormalizeSales valida el esquema de ventas y tipifica cada fila.
// Columnas extra se ignoran; las opcionales ausentes quedan en default con
// procedencia registrada en SalesSchema. Una celda obligatoria imparseable es
// fatal (la tabla de ventas es la fuente de verdad del top-line).
func NormalizeSales(t *dataset.Table) ([]SalesLine, SalesSchema, error) {
	if t == nil {
		return nil, SalesSchema{}, fmt.Errorf("tabla de ventas obligatoria: %w", domain.ErrInvalidInput)
	}

	var missing []string
	for _, col := range requiredSalesColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, SalesSchema{}, fmt.Errorf(
			"ventas: faltan columnas %s (esquema esperado: %s): %w",
			strings.Join(missing, ", "),
			strings.Join(requiredSalesColumns, ", "),
			domain.ErrMissingColumn,
		)
	}

	schema := SalesSchema{CustomerID: FieldDefaulted}
	if t.HasColumn(ColCustomerID) {
		schema.CustomerID = FieldPresent
	}

	lines := make([]SalesLine, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		line, err := parseSalesRow(t, i, schema)
		if err != nil {
			return nil, SalesSchema{}, fmt.Errorf("ventas fila %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	return lines, schema, nil
}

func parseSalesRow(t *dataset.Table, i int, schema SalesSchema) (SalesLine, error) {
	orderID, _ := t.Cell(i, ColOrderID)
	if orderID == "" {
		return SalesLine{}, fmt.Errorf("%s vacío: %w", ColOrderID, domain.ErrInvalidCell)
	}

	rawDate, _ := t.Cell(i, ColOrderDate)
	date, err := dataset.ParseDate(rawDate)
	if err != nil {
		return SalesLine{}, fmt.Errorf("%s: %w", ColOrderDate, err)
	}

	sku, _ := t.Cell(i, ColSKU)
	channel, _ := t.Cell(i, ColChannel)

	rawUnits, _ := t.Cell(i, ColUnits)
	units, err := dataset.ParseDecimal(rawUnits)
	if err != nil {
		return SalesLine{}, fmt.Errorf("%s: %w", ColUnits, err)
	}

	rawRevenue, _ := t.Cell(i, ColRevenue)
	revenue, err := dataset.ParseDecimal(rawRevenue)
	if err != nil {
		return SalesLine{}, fmt.Errorf("%s: %w", ColRevenue, err)
	}

	var customerID string
	if schema.CustomerID == FieldPresent {
		customerID, _ = t.Cell(i, ColCustomerID)
	}

	return SalesLine{
		OrderID:    orderID,
		OrderDate:  date,
		Month:      dataset.MonthStart(date),
		SKU:        sku,
		Channel:    channel,
		Units:      units,
		Revenue:    revenue,
		CustomerID: customerID,
	}, nil
}

// NormalizeInventory indexa el costo unitario por SKU. Devuelve nil (join
// irresoluble, degradado a COGS=0) si la tabla es nil o carece de SKU o de
// ambas columnas de costo. COGS_per_Unit solo se intenta cuando Cost_Price
// está del todo ausente. SKUs duplicados: gana la primera ocurrencia.
func NormalizeInventory(t *dataset.Table, w *Warnings) map[string]decimal.Decimal {
	if t == nil {
		return nil
	}
	if !t.HasColumn(ColSKU) {
		w.Addf("inventario: sin columna %s, COGS queda en 0 para todas las líneas", ColSKU)
		return nil
	}

	costCol := ColCostPrice
	if !t.HasColumn(costCol) {
		costCol = ColCOGSPerUnit
		if !t.HasColumn(costCol) {
			w.Addf("inventario: sin columna %s ni %s, COGS queda en 0 para todas las líneas", ColCostPrice, ColCOGSPerUnit)
			return nil
		}
	}

	costs := make(map[string]decimal.Decimal, t.Len())
	duplicates := 0
	for i := 0; i < t.Len(); i++ {
		sku, _ := t.Cell(i, ColSKU)
		if sku == "" {
			continue
		}
		if _, seen := costs[sku]; seen {
			duplicates++
			continue
		}
		raw, _ := t.Cell(i, costCol)
		cost, err := dataset.ParseDecimal(raw)
		if err != nil {
			w.Addf("inventario fila %d: %s inválido, SKU %s omitido", i+1, costCol, sku)
			continue
		}
		costs[sku] = cost
	}
	if duplicates > 0 {
		w.Addf("inventario: %d SKU duplicados, se conservó la primera ocurrencia", duplicates)
	}
	return costs
}

// SpendKey clave de agregación (canal, mes calendario).
type SpendKey struct {
	Channel string
	Month   int64 // unix del inicio de mes; comparable como clave de mapa
}

// NormalizeMarketing agrega el gasto de marketing por (canal, mes). Entradas
// duplicadas del mismo canal/mes se suman, nunca se pisan. Tabla nil o sin las
// columnas esperadas degrada a gasto cero con aviso.
func NormalizeMarketing(t *dataset.Table, w *Warnings) map[SpendKey]decimal.Decimal {
	if t == nil {
		return nil
	}
	for _, col := range []string{ColDate, ColChannel, ColSpend} {
		if !t.HasColumn(col) {
			w.Addf("marketing: sin columna %s, gasto queda en 0 para todos los canales", col)
			return nil
		}
	}

	spend := make(map[SpendKey]decimal.Decimal)
	for i := 0; i < t.Len(); i++ {
		rawDate, _ := t.Cell(i, ColDate)
		date, err := dataset.ParseDate(rawDate)
		if err != nil {
			w.Addf("marketing fila %d: fecha inválida, fila omitida", i+1)
			continue
		}
		rawSpend, _ := t.Cell(i, ColSpend)
		amount, err := dataset.ParseDecimal(rawSpend)
		if err != nil {
			w.Addf("marketing fila %d: %s inválido, fila omitida", i+1, ColSpend)
			continue
		}
		channel, _ := t.Cell(i, ColChannel)
		key := SpendKey{Channel: channel, Month: dataset.MonthStart(date).Unix()}
		spend[key] = spend[key].Add(amount)
	}
	return spend
}
