package economics

import "github.com/shopspring/decimal"

// neverPaysBack centinela para un CAC que el margen nunca recupera.
var neverPaysBack = decimal.NewFromInt(999)

// PaybackMonths meses necesarios para recuperar el CAC con el margen mensual
// por pedido. Margen cero o negativo → 999 (nunca llega a breakeven).
func PaybackMonths(cac, marginPerOrder decimal.Decimal) decimal.Decimal {
	if !marginPerOrder.IsPositive() {
		return neverPaysBack
	}
	return cac.Div(marginPerOrder)
}
