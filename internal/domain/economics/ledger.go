package economics

import "github.com/shopspring/decimal"

// DeriveLineMetrics calcula los campos derivados de una fila del ledger, en
// este orden de dependencia:
//
//  1. NetRevenue: 0 si es devolución, si no el Revenue completo. No hay modelo
//     de reembolso parcial ni de restocking fee.
//  2. GrossProfit = NetRevenue − TotalCOGS.
//  3. Contribution1 = GrossProfit − FulfillmentCost.
//
// COGS y envío se restan aunque la venta se haya devuelto: ambos costos se
// hundieron en el momento del despacho y solo revierte la línea de ingreso.
func DeriveLineMetrics(r *LedgerRow) {
	if r.IsReturn {
		r.NetRevenue = decimal.Zero
	} else {
		r.NetRevenue = r.Revenue
	}
	r.GrossProfit = r.NetRevenue.Sub(r.TotalCOGS)
	r.Contribution1 = r.GrossProfit.Sub(r.FulfillmentCost)
}
