package economics

import "github.com/shopspring/decimal"

// Summary KPIs globales reducidos del agregado canal/mes. Sin identidad
// propia: se recalcula completo en cada invocación.
type Summary struct {
	GrossRevenue decimal.Decimal
	NetRevenue   decimal.Decimal
	TotalSpend   decimal.Decimal
	TotalOrders  int
	TotalReturns int
	NetProfit    decimal.Decimal // suma de Contribution2 (pre costos fijos)

	BlendedROAS  decimal.Decimal
	BlendedCAC   decimal.Decimal
	BlendedCMPct decimal.Decimal
	ReturnRate   decimal.Decimal
}

// Summarize colapsa las filas del agregado en los KPIs blended.
//
// La asimetría de denominadores es deliberada y refleja la convención de
// reporting D2C: ROAS y CAC blended usan cifras BRUTAS (ingreso bruto, pedidos
// totales), mientras CM% blended usa ingreso NETO. No unificar.
func Summarize(rows []ChannelMonthRow) Summary {
	var s Summary
	for _, row := range rows {
		s.GrossRevenue = s.GrossRevenue.Add(row.Revenue)
		s.NetRevenue = s.NetRevenue.Add(row.NetRevenue)
		s.TotalSpend = s.TotalSpend.Add(row.Spend)
		s.TotalOrders += row.Orders
		s.TotalReturns += row.Returns
		s.NetProfit = s.NetProfit.Add(row.Contribution2)
	}

	orders := decimal.NewFromInt(int64(s.TotalOrders))
	returns := decimal.NewFromInt(int64(s.TotalReturns))

	s.BlendedROAS = ratio(s.GrossRevenue, s.TotalSpend)
	s.BlendedCAC = ratio(s.TotalSpend, orders)
	s.BlendedCMPct = ratio(s.NetProfit, s.NetRevenue)
	s.ReturnRate = ratio(returns, orders)
	return s
}
