package dto

import "github.com/shopspring/decimal"

// ReportRequest cuerpo JSON alternativo a la subida multipart: las cuatro
// tablas como arrays de objetos columna → celda. Solo Sales es obligatoria.
type ReportRequest struct {
	Sales     []map[string]any `json:"sales"`
	Inventory []map[string]any `json:"inventory,omitempty"`
	Marketing []map[string]any `json:"marketing,omitempty"`
	Logistics []map[string]any `json:"logistics,omitempty"`
}

// LedgerRowDTO fila del ledger conciliado. Los nombres JSON replican el
// esquema de columnas de entrada para que la capa de display los muestre tal
// cual.
type LedgerRowDTO struct {
	OrderID         string          `json:"Order_ID"`
	OrderDate       string          `json:"Order_Date"` // YYYY-MM-DD
	Month           string          `json:"Month"`      // YYYY-MM
	SKU             string          `json:"SKU"`
	Channel         string          `json:"Channel"`
	UnitsSold       decimal.Decimal `json:"Units_Sold"`
	Revenue         decimal.Decimal `json:"Revenue"`
	CustomerID      string          `json:"Customer_ID,omitempty"`
	UnitCost        decimal.Decimal `json:"Unit_Cost"`
	CostSource      string          `json:"Cost_Source"` // matched | defaulted
	TotalCOGS       decimal.Decimal `json:"Total_COGS"`
	FulfillmentCost decimal.Decimal `json:"Fulfillment_Cost"`
	IsReturn        bool            `json:"Is_Return"`
	ReturnReason    string          `json:"Return_Reason,omitempty"`
	NetRevenue      decimal.Decimal `json:"Net_Revenue"`
	GrossProfit     decimal.Decimal `json:"Gross_Profit"`
	Contribution1   decimal.Decimal `json:"Contribution_Profit_1"`
}

// ChannelMonthDTO agregado por canal y mes con sus KPIs derivados.
// Los campos *_Pct y Return_Rate son proporciones 0–1.
type ChannelMonthDTO struct {
	Channel         string          `json:"Channel"`
	Month           string          `json:"Month"` // YYYY-MM
	Revenue         decimal.Decimal `json:"Revenue"`
	NetRevenue      decimal.Decimal `json:"Net_Revenue"`
	TotalCOGS       decimal.Decimal `json:"Total_COGS"`
	FulfillmentCost decimal.Decimal `json:"Fulfillment_Cost"`
	Contribution1   decimal.Decimal `json:"Contribution_Profit_1"`
	UnitsSold       decimal.Decimal `json:"Units_Sold"`
	Orders          int             `json:"Orders"`
	Returns         int             `json:"Returns"`
	Spend           decimal.Decimal `json:"Spend"`
	Contribution2   decimal.Decimal `json:"Contribution_Profit_2"`
	CAC             decimal.Decimal `json:"CAC"`
	ROAS            decimal.Decimal `json:"ROAS"`
	AOV             decimal.Decimal `json:"AOV"`
	GrossMarginPct  decimal.Decimal `json:"Gross_Margin_Pct"`
	CMPct           decimal.Decimal `json:"CM_Pct"`
	ReturnRate      decimal.Decimal `json:"Return_Rate"`
}

// SummaryDTO KPIs globales (mapeo plano métrica → valor del contrato).
type SummaryDTO struct {
	GrossRevenue decimal.Decimal `json:"Gross_Revenue"`
	NetRevenue   decimal.Decimal `json:"Net_Revenue"`
	TotalSpend   decimal.Decimal `json:"Total_Spend"`
	TotalOrders  int             `json:"Total_Orders"`
	NetProfit    decimal.Decimal `json:"Net_Profit"`
	BlendedROAS  decimal.Decimal `json:"Blended_ROAS"`
	BlendedCAC   decimal.Decimal `json:"Blended_CAC"`
	BlendedCMPct decimal.Decimal `json:"Blended_CM_Pct"`
	ReturnRate   decimal.Decimal `json:"Return_Rate"`
}

// LTVDTO aproximación de lifetime value por cliente.
type LTVDTO struct {
	Customers        int             `json:"Customers"`
	AvgNetRevenue    decimal.Decimal `json:"Avg_Net_Revenue"`
	AvgContribution1 decimal.Decimal `json:"Avg_Contribution_1"`
	AvgOrders        decimal.Decimal `json:"Avg_Orders_Per_Customer"`
}

// ReportDTO respuesta completa de una invocación del motor.
type ReportDTO struct {
	RunID        string            `json:"run_id"`
	Ledger       []LedgerRowDTO    `json:"ledger"`
	ChannelMonth []ChannelMonthDTO `json:"channel_month"`
	Summary      SummaryDTO        `json:"summary"`
	LTV          LTVDTO            `json:"ltv"`
	Warnings     []string          `json:"warnings"`
}
