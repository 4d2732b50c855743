package economics_test

import (
	"testing"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/economics"
)

// TestPaybackMonths CAC 500 con margen mensual de 250 por pedido → 2 meses.
func TestPaybackMonths(t *testing.T) {
	assertDec(t, "2", economics.PaybackMonths(dec("500"), dec("250")))
}

// TestPaybackMonths_MargenNoPositivo margen cero o negativo nunca recupera el
// CAC: centinela 999.
func TestPaybackMonths_MargenNoPositivo(t *testing.T) {
	assertDec(t, "999", economics.PaybackMonths(dec("500"), dec("0")))
	assertDec(t, "999", economics.PaybackMonths(dec("500"), dec("-120")))
}
