package domain

import "math"

type ParameterRecord struct {
	Title               string
	OptimizedValue      float64
	ActualValue         float64
	PreviousPeriodValue float64
	Unit                string
}

type KPIRecord struct {
	Title               string
	Value               float64
	PreviousPeriodValue float64
	TargetValue         float64
	Unit                string
}

// ParametersRow mirrors one row of the optimal-parameters table.
type ParametersRow struct {
	InventoryDaysOptimal  float64 // dias_inventario_optimo
	InventoryDaysActual   float64 // dias_inventario_real
	ReorderPointOptimal   float64 // punto_reorden (Vemio target)
	ReorderPointActual    float64 // punto_reorden_real
	OrderSizeOptimal      float64 // tamano_pedido_optimo
	OrderSizeActual       float64 // tamano_pedido_real
	OrderFrequencyOptimal float64 // frecuencia_optima
	OrderFrequencyActual  float64 // frecuencia_real
}

const (
	UnitDays     = "días"
	UnitUnits    = "unidades"
	UnitCurrency = "$"
	UnitPercent  = "%"
)

// previousPeriodFactor estimates the previous period from the actual value
// until the table carries historical data.
const previousPeriodFactor = 0.95

func ParameterRecordsFromRow(row ParametersRow) []ParameterRecord {
	prev := func(actual float64) float64 {
		return math.Round(actual * previousPeriodFactor)
	}
	return []ParameterRecord{
		{
			Title:               "Días de Inventario",
			OptimizedValue:      row.InventoryDaysOptimal,
			ActualValue:         row.InventoryDaysActual,
			PreviousPeriodValue: prev(row.InventoryDaysActual),
			Unit:                UnitDays,
		},
		{
			Title:               "Punto de Reorden",
			OptimizedValue:      row.ReorderPointOptimal,
			ActualValue:         row.ReorderPointActual,
			PreviousPeriodValue: prev(row.ReorderPointActual),
			Unit:                UnitUnits,
		},
		{
			Title:               "Tamaño de Pedido Óptimo",
			OptimizedValue:      row.OrderSizeOptimal,
			ActualValue:         row.OrderSizeActual,
			PreviousPeriodValue: prev(row.OrderSizeActual),
			Unit:                UnitUnits,
		},
		{
			Title:               "Frecuencia Óptima",
			OptimizedValue:      row.OrderFrequencyOptimal,
			ActualValue:         row.OrderFrequencyActual,
			PreviousPeriodValue: prev(row.OrderFrequencyActual),
			Unit:                UnitDays,
		},
	}
}

// DefaultParameterRecords is shown while the parameters load and when the fetch fails.
func DefaultParameterRecords() []ParameterRecord {
	return []ParameterRecord{
		{Title: "Días de Inventario", OptimizedValue: 45, ActualValue: 52, PreviousPeriodValue: 48, Unit: UnitDays},
		{Title: "Punto de Reorden", OptimizedValue: 120, ActualValue: 150, PreviousPeriodValue: 140, Unit: UnitUnits},
		{Title: "Tamaño de Pedido Óptimo", OptimizedValue: 500, ActualValue: 600, PreviousPeriodValue: 580, Unit: UnitUnits},
		{Title: "Frecuencia Óptima", OptimizedValue: 7, ActualValue: 10, PreviousPeriodValue: 9, Unit: UnitDays},
	}
}

func StaticKPIRecords() []KPIRecord {
	return []KPIRecord{
		{Title: "Ventas de unidades", Value: 12450, PreviousPeriodValue: 11800, TargetValue: 13000, Unit: UnitUnits},
		{Title: "Ventas en Valor", Value: 245680, PreviousPeriodValue: 232000, TargetValue: 260000, Unit: UnitCurrency},
		{Title: "Distribución Numérica", Value: 78.5, PreviousPeriodValue: 75.2, TargetValue: 80, Unit: UnitPercent},
		{Title: "Sell Through", Value: 65.2, PreviousPeriodValue: 62.8, TargetValue: 70, Unit: UnitPercent},
		{Title: "Días de Inventario", Value: 45, PreviousPeriodValue: 48, TargetValue: 45, Unit: UnitDays},
	}
}
