package economics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ChannelMonthRow agregado por (canal, mes calendario). Los porcentajes son
// proporciones 0–1, no ×100.
type ChannelMonthRow struct {
	Channel string
	Month   time.Time

	Revenue         decimal.Decimal
	NetRevenue      decimal.Decimal
	TotalCOGS       decimal.Decimal
	FulfillmentCost decimal.Decimal
	Contribution1   decimal.Decimal
	Units           decimal.Decimal
	Orders          int // Order_ID distintos
	Returns         int // pedidos distintos devueltos
	Spend           decimal.Decimal

	Contribution2  decimal.Decimal
	CAC            decimal.Decimal
	ROAS           decimal.Decimal
	AOV            decimal.Decimal
	GrossMarginPct decimal.Decimal
	CMPct          decimal.Decimal // denominador: ingreso NETO (rentabilidad real)
	ReturnRate     decimal.Decimal
}

type channelMonthAccum struct {
	row            ChannelMonthRow
	orders         map[string]bool
	returnedOrders map[string]bool
}

// AggregateChannelMonth agrupa el ledger por (canal, mes) y lo combina con el
// gasto de marketing vía full outer join: un canal/mes con gasto pero sin
// ventas también aparece, con métricas de venta en cero. Toda división está
// protegida contra denominador cero (la razón default es 0, nunca un error).
//
// El resultado se ordena por canal y mes para que la salida sea determinista.
func AggregateChannelMonth(ledger []LedgerRow, spend map[SpendKey]decimal.Decimal) []ChannelMonthRow {
	groups := make(map[SpendKey]*channelMonthAccum)

	accumFor := func(key SpendKey) *channelMonthAccum {
		acc, ok := groups[key]
		if !ok {
			acc = &channelMonthAccum{
				row: ChannelMonthRow{
					Channel: key.Channel,
					Month:   time.Unix(key.Month, 0).UTC(),
				},
				orders:         make(map[string]bool),
				returnedOrders: make(map[string]bool),
			}
			groups[key] = acc
		}
		return acc
	}

	for _, line := range ledger {
		key := SpendKey{Channel: line.Channel, Month: line.Month.Unix()}
		acc := accumFor(key)
		acc.row.Revenue = acc.row.Revenue.Add(line.Revenue)
		acc.row.NetRevenue = acc.row.NetRevenue.Add(line.NetRevenue)
		acc.row.TotalCOGS = acc.row.TotalCOGS.Add(line.TotalCOGS)
		acc.row.FulfillmentCost = acc.row.FulfillmentCost.Add(line.FulfillmentCost)
		acc.row.Contribution1 = acc.row.Contribution1.Add(line.Contribution1)
		acc.row.Units = acc.row.Units.Add(line.Units)
		acc.orders[line.OrderID] = true
		if line.IsReturn {
			acc.returnedOrders[line.OrderID] = true
		}
	}

	// Lado marketing del outer join: canales/meses solo con gasto sobreviven.
	for key, amount := range spend {
		acc := accumFor(key)
		acc.row.Spend = acc.row.Spend.Add(amount)
	}

	rows := make([]ChannelMonthRow, 0, len(groups))
	for _, acc := range groups {
		row := acc.row
		row.Orders = len(acc.orders)
		row.Returns = len(acc.returnedOrders)
		deriveChannelMonthKPIs(&row)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Channel != rows[j].Channel {
			return rows[i].Channel < rows[j].Channel
		}
		return rows[i].Month.Before(rows[j].Month)
	})
	return rows
}

// deriveChannelMonthKPIs métricas de razón del agregado. Convención del
// reporte D2C: ROAS y CAC sobre cifras brutas (estándar de marketing); CM%
// sobre ingreso neto (rentabilidad real post-devoluciones).
func deriveChannelMonthKPIs(row *ChannelMonthRow) {
	orders := decimal.NewFromInt(int64(row.Orders))
	returns := decimal.NewFromInt(int64(row.Returns))

	row.Contribution2 = row.Contribution1.Sub(row.Spend)
	row.CAC = ratio(row.Spend, orders)
	row.ROAS = ratio(row.Revenue, row.Spend)
	row.AOV = ratio(row.Revenue, orders)
	row.GrossMarginPct = ratio(row.Revenue.Sub(row.TotalCOGS), row.Revenue)
	row.CMPct = ratio(row.Contribution2, row.NetRevenue)
	row.ReturnRate = ratio(returns, orders)
}

// ratio división protegida: denominador no positivo → 0.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}
