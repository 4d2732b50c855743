package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/pkg/config"
	"github.com/jhoicas/Rentabilidad-api/pkg/logger"
)

func newUseCase() *usecase.EconomicsUseCase {
	cfg := config.PipelineConfig{RoundPlaces: 2}
	return usecase.NewEconomicsUseCase(cfg, logger.Nop())
}

// TestProcessRequest_JSONCompleto el cuerpo JSON con números y booleanos se
// convierte a celdas y atraviesa el pipeline completo.
func TestProcessRequest_JSONCompleto(t *testing.T) {
	uc := newUseCase()

	req := dto.ReportRequest{
		Sales: []map[string]any{
			{"Order_ID": "ORD-1", "Order_Date": "2024-01-05", "SKU": "SKU-1",
				"Channel": "Website", "Units_Sold": 2, "Revenue": 1000, "Customer_ID": "CUST-1"},
			{"Order_ID": "ORD-2", "Order_Date": "2024-01-12", "SKU": "SKU-1",
				"Channel": "Website", "Units_Sold": 1, "Revenue": 500.50, "Customer_ID": "CUST-2"},
		},
		Inventory: []map[string]any{
			{"SKU": "SKU-1", "Cost_Price": 200},
		},
		Logistics: []map[string]any{
			{"Order_ID": "ORD-2", "Fulfillment_Cost": 80, "Is_Return": true},
		},
	}

	report, err := uc.ProcessRequest(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID, "cada invocación lleva run_id")
	require.Len(t, report.Ledger, 2)

	ord2 := report.Ledger[1]
	assert.Equal(t, "ORD-2", ord2.OrderID)
	assert.True(t, ord2.IsReturn, "Is_Return=true del JSON debe resolverse")
	assert.Equal(t, "0", ord2.NetRevenue.String())
	assert.Equal(t, "-280", ord2.Contribution1.String(), "COGS 200 + envío 80 hundidos")

	assert.Equal(t, "1500.5", report.Summary.GrossRevenue.String())
	assert.Equal(t, "1000", report.Summary.NetRevenue.String())
	assert.Equal(t, 2, report.LTV.Customers)
}

// TestProcessRequest_EsquemaInvalido la falta de columnas obligatorias del
// JSON sale como error de dominio, para que el handler devuelva 400.
func TestProcessRequest_EsquemaInvalido(t *testing.T) {
	uc := newUseCase()

	req := dto.ReportRequest{
		Sales: []map[string]any{{"Order_ID": "ORD-1"}},
	}

	_, err := uc.ProcessRequest(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

// TestProcessRequest_RedondeoDeMontos los montos de la respuesta respetan
// RoundPlaces; los ratios van a 4 decimales.
func TestProcessRequest_RedondeoDeMontos(t *testing.T) {
	uc := newUseCase()

	req := dto.ReportRequest{
		Sales: []map[string]any{
			{"Order_ID": "ORD-1", "Order_Date": "2024-01-05", "SKU": "SKU-1",
				"Channel": "Website", "Units_Sold": 3, "Revenue": 1000},
		},
		Inventory: []map[string]any{
			{"SKU": "SKU-1", "Cost_Price": 33.333333},
		},
	}

	report, err := uc.ProcessRequest(context.Background(), req)
	require.NoError(t, err)

	// 33.333333 × 3 = 99.999999 → redondeado a 100.00
	assert.Equal(t, "100", report.Ledger[0].TotalCOGS.String())
}

// TestProcessRequest_WarningsLlegan las degradaciones del pipeline viajan en
// la respuesta.
func TestProcessRequest_WarningsLlegan(t *testing.T) {
	uc := newUseCase()

	req := dto.ReportRequest{
		Sales: []map[string]any{
			{"Order_ID": "ORD-1", "Order_Date": "2024-01-05", "SKU": "SKU-1",
				"Channel": "Website", "Units_Sold": 1, "Revenue": 500},
		},
		Logistics: []map[string]any{
			{"Pedido": "ORD-1"}, // sin Order_ID: join irresoluble
		},
	}

	report, err := uc.ProcessRequest(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Warnings)
}
