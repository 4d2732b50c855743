package economics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/economics"
)

// TestEstimateLTV_SinCustomerID sin columna de cliente el resultado es neutro
// en ceros, sin error: el LTV es opcional.
func TestEstimateLTV_SinCustomerID(t *testing.T) {
	ledger := economics.BuildLedger(
		[]economics.SalesLine{salesLine("ORD-1", "SKU-1", "Website", "1", "500")},
		nil, nil,
	)

	result := economics.EstimateLTV(ledger, economics.SalesSchema{CustomerID: economics.FieldDefaulted})

	assert.Equal(t, 0, result.Customers)
	assertDec(t, "0", result.AvgNetRevenue)
	assertDec(t, "0", result.AvgContribution1)
}

// TestEstimateLTV_PromediosPorCliente dos clientes: CUST-A con dos pedidos
// (400 + 600 netos) y CUST-B con uno (500). Promedios entre clientes.
func TestEstimateLTV_PromediosPorCliente(t *testing.T) {
	mkLine := func(orderID, customer, revenue string) economics.SalesLine {
		line := salesLine(orderID, "SKU-1", "Website", "1", revenue)
		line.CustomerID = customer
		return line
	}
	ledger := economics.BuildLedger(
		[]economics.SalesLine{
			mkLine("ORD-1", "CUST-A", "400"),
			mkLine("ORD-2", "CUST-A", "600"),
			mkLine("ORD-3", "CUST-B", "500"),
		},
		nil, nil,
	)

	result := economics.EstimateLTV(ledger, economics.SalesSchema{CustomerID: economics.FieldPresent})

	require.Equal(t, 2, result.Customers)
	assertDec(t, "750", result.AvgNetRevenue, "(1000 + 500) / 2 clientes")
	assertDec(t, "750", result.AvgContribution1, "sin COGS ni envío, CM1 == neto")
	assertDec(t, "1.5", result.AvgOrders, "(2 + 1) / 2 clientes")
}

// TestEstimateLTV_DevolucionesRestan el LTV usa ingreso NETO: un cliente que
// devuelve todo aporta cero ingreso pero sí costos hundidos.
func TestEstimateLTV_DevolucionesRestan(t *testing.T) {
	line := salesLine("ORD-1", "SKU-1", "Website", "1", "500")
	line.CustomerID = "CUST-A"
	logistics := map[string]economics.LogisticsEntry{
		"ORD-1": {Fulfillment: dec("80"), IsReturn: true},
	}

	ledger := economics.BuildLedger([]economics.SalesLine{line}, nil, logistics)
	result := economics.EstimateLTV(ledger, economics.SalesSchema{CustomerID: economics.FieldPresent})

	require.Equal(t, 1, result.Customers)
	assertDec(t, "0", result.AvgNetRevenue)
	assertDec(t, "-80", result.AvgContribution1, "el envío hundido queda cargado al cliente")
}

// TestEstimateLTV_FilasSinClienteSeIgnoran columna presente pero celdas
// vacías: esas filas no forman cliente.
func TestEstimateLTV_FilasSinClienteSeIgnoran(t *testing.T) {
	withCustomer := salesLine("ORD-1", "SKU-1", "Website", "1", "500")
	withCustomer.CustomerID = "CUST-A"
	anonymous := salesLine("ORD-2", "SKU-1", "Website", "1", "900")

	ledger := economics.BuildLedger([]economics.SalesLine{withCustomer, anonymous}, nil, nil)
	result := economics.EstimateLTV(ledger, economics.SalesSchema{CustomerID: economics.FieldPresent})

	assert.Equal(t, 1, result.Customers)
	assertDec(t, "500", result.AvgNetRevenue)
}
