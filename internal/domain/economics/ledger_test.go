package economics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/economics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test compartidos por el paquete
// ──────────────────────────────────────────────────────────────────────────────

// dec atajo para construir decimales desde literales.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("literal decimal inválido en test: " + s)
	}
	return d
}

// assertDec compara decimales por valor (assert.Equal falla por exponentes).
func assertDec(t *testing.T, expected string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(dec(expected)),
		"se esperaba %s pero se obtuvo %s — %v", expected, got.String(), msgAndArgs)
}

func testDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

// salesLine línea de venta mínima para armar ledgers en tests.
func salesLine(orderID, sku, channel string, units, revenue string) economics.SalesLine {
	return economics.SalesLine{
		OrderID:   orderID,
		OrderDate: testDate(15),
		Month:     testDate(1),
		SKU:       sku,
		Channel:   channel,
		Units:     dec(units),
		Revenue:   dec(revenue),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de la calculadora por línea: los costos son hundidos, solo el
// ingreso revierte en una devolución.
// ──────────────────────────────────────────────────────────────────────────────

// TestDeriveLineMetrics_Devolucion escenario de referencia: Revenue=1000,
// 2 unidades a costo 200, envío 80, devuelta. El ingreso neto cae a cero pero
// COGS y envío siguen cargados completos.
func TestDeriveLineMetrics_Devolucion(t *testing.T) {
	row := economics.LedgerRow{
		SalesLine:       salesLine("ORD-1", "TSHIRT-BLK-M", "Website", "2", "1000"),
		UnitCost:        dec("200"),
		CostSource:      economics.CostMatched,
		TotalCOGS:       dec("400"),
		FulfillmentCost: dec("80"),
		IsReturn:        true,
	}

	economics.DeriveLineMetrics(&row)

	assertDec(t, "0", row.NetRevenue, "una devolución anula el ingreso completo")
	assertDec(t, "-400", row.GrossProfit, "el COGS se carga aunque el ingreso sea cero")
	assertDec(t, "-480", row.Contribution1, "el envío ya se incurrió: también se resta")
}

// TestDeriveLineMetrics_SinDevolucion la misma línea sin devolver.
func TestDeriveLineMetrics_SinDevolucion(t *testing.T) {
	row := economics.LedgerRow{
		SalesLine:       salesLine("ORD-1", "TSHIRT-BLK-M", "Website", "2", "1000"),
		UnitCost:        dec("200"),
		CostSource:      economics.CostMatched,
		TotalCOGS:       dec("400"),
		FulfillmentCost: dec("80"),
	}

	economics.DeriveLineMetrics(&row)

	assertDec(t, "1000", row.NetRevenue)
	assertDec(t, "600", row.GrossProfit)
	assertDec(t, "520", row.Contribution1)
}

// TestDeriveLineMetrics_NetRevenueBinario NetRevenue solo puede ser 0 o el
// Revenue completo: no existe modelo de reembolso parcial.
func TestDeriveLineMetrics_NetRevenueBinario(t *testing.T) {
	for _, isReturn := range []bool{true, false} {
		row := economics.LedgerRow{
			SalesLine: salesLine("ORD-2", "TSHIRT-WHT-L", "Amazon", "1", "749.99"),
			IsReturn:  isReturn,
		}
		economics.DeriveLineMetrics(&row)

		ok := row.NetRevenue.IsZero() || row.NetRevenue.Equal(row.Revenue)
		assert.True(t, ok, "NetRevenue debe ser 0 o Revenue, se obtuvo %s", row.NetRevenue)
	}
}
