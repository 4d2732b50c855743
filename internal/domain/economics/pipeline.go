package economics

// Result salida completa de una invocación del motor.
type Result struct {
	Ledger       []LedgerRow
	ChannelMonth []ChannelMonthRow
	Summary      Summary
	LTV          LTVResult
	Schema       SalesSchema
	Warnings     *Warnings
}

// Process ejecuta el pipeline completo, estrictamente de izquierda a derecha:
// normalización → merge de costos → ledger → agregado canal/mes → resumen →
// LTV. Función pura: mismas tablas, mismo resultado.
//
// Solo la tabla de ventas puede hacer fallar la invocación (esquema mínimo);
// toda otra ausencia degrada a ceros y se reporta en Warnings.
func Process(in Inputs, resolver *ReturnResolver) (*Result, error) {
	warnings := &Warnings{}

	sales, schema, err := NormalizeSales(in.Sales)
	if err != nil {
		return nil, err
	}

	costs := NormalizeInventory(in.Inventory, warnings)
	spend := NormalizeMarketing(in.Marketing, warnings)
	logistics := NormalizeLogistics(in.Logistics, resolver, warnings)

	ledger := BuildLedger(sales, costs, logistics)
	if n := DefaultedCostLines(ledger); n > 0 && in.Inventory != nil {
		warnings.Addf("%d líneas sin match de inventario: COGS en 0 (precisión degradada)", n)
	}

	channelMonth := AggregateChannelMonth(ledger, spend)

	return &Result{
		Ledger:       ledger,
		ChannelMonth: channelMonth,
		Summary:      Summarize(channelMonth),
		LTV:          EstimateLTV(ledger, schema),
		Schema:       schema,
		Warnings:     warnings,
	}, nil
}
