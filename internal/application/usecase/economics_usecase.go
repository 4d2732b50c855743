package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/economics"
	"github.com/jhoicas/Rentabilidad-api/pkg/config"
	"github.com/jhoicas/Rentabilidad-api/pkg/logger"
)

const ratioRoundPlaces = 4 // CAC/ROAS/porcentajes; los montos usan cfg.RoundPlaces

// EconomicsUseCase orquesta el pipeline de unit economics y mapea el resultado
// del dominio a los DTOs de la respuesta. Sin estado entre invocaciones: cada
// Process es una función pura de sus tablas.
type EconomicsUseCase struct {
	resolver *economics.ReturnResolver
	round    int32
	log      *logger.Logger
}

// NewEconomicsUseCase construye el caso de uso con la configuración del
// pipeline (sinónimos de devolución, redondeo).
func NewEconomicsUseCase(cfg config.PipelineConfig, log *logger.Logger) *EconomicsUseCase {
	round := int32(cfg.RoundPlaces)
	if round < 0 {
		round = 2
	}
	return &EconomicsUseCase{
		resolver: economics.NewReturnResolver(cfg.ReturnSynonyms),
		round:    round,
		log:      log,
	}
}

// Process ejecuta el motor sobre las tablas de la invocación y arma el
// reporte. El run_id correlaciona los logs de una misma invocación.
func (uc *EconomicsUseCase) Process(ctx context.Context, in economics.Inputs) (*dto.ReportDTO, error) {
	runID := uuid.NewString()
	log := uc.log.With().Str("run_id", runID).Logger()

	salesRows := 0
	if in.Sales != nil {
		salesRows = in.Sales.Len()
	}
	log.Info().
		Int("sales_rows", salesRows).
		Bool("has_inventory", in.Inventory != nil).
		Bool("has_marketing", in.Marketing != nil).
		Bool("has_logistics", in.Logistics != nil).
		Msg("procesando unit economics")

	result, err := economics.Process(in, uc.resolver)
	if err != nil {
		log.Warn().Err(err).Msg("pipeline rechazado")
		return nil, err
	}

	for _, warn := range result.Warnings.Messages() {
		log.Warn().Str("warning", warn).Msg("degradación de datos")
	}
	log.Info().
		Int("ledger_rows", len(result.Ledger)).
		Int("channel_month_rows", len(result.ChannelMonth)).
		Msg("reporte generado")

	return &dto.ReportDTO{
		RunID:        runID,
		Ledger:       uc.mapLedger(result.Ledger),
		ChannelMonth: uc.mapChannelMonth(result.ChannelMonth),
		Summary:      uc.mapSummary(result.Summary),
		LTV:          uc.mapLTV(result.LTV),
		Warnings:     result.Warnings.Messages(),
	}, nil
}

// ProcessRequest variante para el cuerpo JSON: convierte los arrays de objetos
// en tablas y delega en Process.
func (uc *EconomicsUseCase) ProcessRequest(ctx context.Context, req dto.ReportRequest) (*dto.ReportDTO, error) {
	in := economics.Inputs{
		Sales:     tableFromJSON(req.Sales),
		Inventory: tableFromJSON(req.Inventory),
		Marketing: tableFromJSON(req.Marketing),
		Logistics: tableFromJSON(req.Logistics),
	}
	return uc.Process(ctx, in)
}

// tableFromJSON convierte filas JSON (columna → valor) en una tabla de celdas
// de texto. nil si no hay filas (tabla opcional ausente).
func tableFromJSON(records []map[string]any) *dataset.Table {
	if len(records) == 0 {
		return nil
	}
	rows := make([]map[string]string, len(records))
	for i, rec := range records {
		row := make(map[string]string, len(rec))
		for k, v := range rec {
			row[k] = cellString(v)
		}
		rows[i] = row
	}
	return dataset.FromMaps(rows)
}

// cellString representa un valor JSON como celda. encoding/json decodifica
// todo número como float64; FormatFloat con precisión -1 evita colas binarias.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (uc *EconomicsUseCase) money(d decimal.Decimal) decimal.Decimal {
	return d.Round(uc.round)
}

func roundRatio(d decimal.Decimal) decimal.Decimal {
	return d.Round(ratioRoundPlaces)
}

func costSourceLabel(src economics.CostSource) string {
	if src == economics.CostMatched {
		return "matched"
	}
	return "defaulted"
}

func (uc *EconomicsUseCase) mapLedger(rows []economics.LedgerRow) []dto.LedgerRowDTO {
	out := make([]dto.LedgerRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LedgerRowDTO{
			OrderID:         r.OrderID,
			OrderDate:       r.OrderDate.Format("2006-01-02"),
			Month:           r.Month.Format("2006-01"),
			SKU:             r.SKU,
			Channel:         r.Channel,
			UnitsSold:       r.Units,
			Revenue:         uc.money(r.Revenue),
			CustomerID:      r.CustomerID,
			UnitCost:        uc.money(r.UnitCost),
			CostSource:      costSourceLabel(r.CostSource),
			TotalCOGS:       uc.money(r.TotalCOGS),
			FulfillmentCost: uc.money(r.FulfillmentCost),
			IsReturn:        r.IsReturn,
			ReturnReason:    r.ReturnReason,
			NetRevenue:      uc.money(r.NetRevenue),
			GrossProfit:     uc.money(r.GrossProfit),
			Contribution1:   uc.money(r.Contribution1),
		})
	}
	return out
}

func (uc *EconomicsUseCase) mapChannelMonth(rows []economics.ChannelMonthRow) []dto.ChannelMonthDTO {
	out := make([]dto.ChannelMonthDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ChannelMonthDTO{
			Channel:         r.Channel,
			Month:           r.Month.Format("2006-01"),
			Revenue:         uc.money(r.Revenue),
			NetRevenue:      uc.money(r.NetRevenue),
			TotalCOGS:       uc.money(r.TotalCOGS),
			FulfillmentCost: uc.money(r.FulfillmentCost),
			Contribution1:   uc.money(r.Contribution1),
			UnitsSold:       r.Units,
			Orders:          r.Orders,
			Returns:         r.Returns,
			Spend:           uc.money(r.Spend),
			Contribution2:   uc.money(r.Contribution2),
			CAC:             uc.money(r.CAC),
			ROAS:            roundRatio(r.ROAS),
			AOV:             uc.money(r.AOV),
			GrossMarginPct:  roundRatio(r.GrossMarginPct),
			CMPct:           roundRatio(r.CMPct),
			ReturnRate:      roundRatio(r.ReturnRate),
		})
	}
	return out
}

func (uc *EconomicsUseCase) mapSummary(s economics.Summary) dto.SummaryDTO {
	return dto.SummaryDTO{
		GrossRevenue: uc.money(s.GrossRevenue),
		NetRevenue:   uc.money(s.NetRevenue),
		TotalSpend:   uc.money(s.TotalSpend),
		TotalOrders:  s.TotalOrders,
		NetProfit:    uc.money(s.NetProfit),
		BlendedROAS:  roundRatio(s.BlendedROAS),
		BlendedCAC:   uc.money(s.BlendedCAC),
		BlendedCMPct: roundRatio(s.BlendedCMPct),
		ReturnRate:   roundRatio(s.ReturnRate),
	}
}

func (uc *EconomicsUseCase) mapLTV(l economics.LTVResult) dto.LTVDTO {
	return dto.LTVDTO{
		Customers:        l.Customers,
		AvgNetRevenue:    uc.money(l.AvgNetRevenue),
		AvgContribution1: uc.money(l.AvgContribution1),
		AvgOrders:        roundRatio(l.AvgOrders),
	}
}
