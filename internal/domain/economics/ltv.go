package economics

import "github.com/shopspring/decimal"

// LTVResult aproximación de lifetime value por cliente: promedios simples
// entre clientes, sin cohortes ni decaimiento temporal.
type LTVResult struct {
	Customers        int
	AvgNetRevenue    decimal.Decimal
	AvgContribution1 decimal.Decimal
	AvgOrders        decimal.Decimal
}

type customerAccum struct {
	netRevenue    decimal.Decimal
	contribution1 decimal.Decimal
	orders        map[string]bool
}

// EstimateLTV agrupa el ledger por Customer_ID y devuelve el promedio entre
// clientes de ingreso neto, contribución 1 y pedidos. Si la columna no existe
// (o ninguna fila trae cliente) devuelve el resultado neutro en ceros, sin
// error: el LTV es opcional por diseño.
func EstimateLTV(ledger []LedgerRow, schema SalesSchema) LTVResult {
	if schema.CustomerID != FieldPresent {
		return LTVResult{}
	}

	customers := make(map[string]*customerAccum)
	for _, row := range ledger {
		if row.CustomerID == "" {
			continue
		}
		acc, ok := customers[row.CustomerID]
		if !ok {
			acc = &customerAccum{orders: make(map[string]bool)}
			customers[row.CustomerID] = acc
		}
		acc.netRevenue = acc.netRevenue.Add(row.NetRevenue)
		acc.contribution1 = acc.contribution1.Add(row.Contribution1)
		acc.orders[row.OrderID] = true
	}

	n := len(customers)
	if n == 0 {
		return LTVResult{}
	}

	var totalNet, totalContribution, totalOrders decimal.Decimal
	for _, acc := range customers {
		totalNet = totalNet.Add(acc.netRevenue)
		totalContribution = totalContribution.Add(acc.contribution1)
		totalOrders = totalOrders.Add(decimal.NewFromInt(int64(len(acc.orders))))
	}

	count := decimal.NewFromInt(int64(n))
	return LTVResult{
		Customers:        n,
		AvgNetRevenue:    totalNet.Div(count),
		AvgContribution1: totalContribution.Div(count),
		AvgOrders:        totalOrders.Div(count),
	}
}
