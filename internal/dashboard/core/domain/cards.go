package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type ParameterCard struct {
	Record    ParameterRecord
	Deviation Deviation
}

type KPICard struct {
	Record     KPIRecord
	Variation  Variation
	Projection float64 // 90-day, see ProjectForward
}

func BuildParameterCards(records []ParameterRecord) []ParameterCard {
	cards := make([]ParameterCard, 0, len(records))
	for _, r := range records {
		cards = append(cards, ParameterCard{
			Record:    r,
			Deviation: DeviationFromTarget(r.OptimizedValue, r.ActualValue),
		})
	}
	return cards
}

func BuildKPICards(records []KPIRecord) []KPICard {
	cards := make([]KPICard, 0, len(records))
	for _, r := range records {
		cards = append(cards, KPICard{
			Record:     r,
			Variation:  PeriodVariation(r.Value, r.PreviousPeriodValue),
			Projection: ProjectForward(r.Value, NinetyDayPeriods),
		})
	}
	return cards
}

// FormatKPIValue renders a KPI figure for display: "$245,680", "78.5%", "12,450".
func FormatKPIValue(v float64, unit string) string {
	switch unit {
	case UnitCurrency:
		return "$" + groupedNumber(v)
	case UnitPercent:
		return decimal.NewFromFloat(v).StringFixed(1) + "%"
	default:
		return groupedNumber(v)
	}
}

func groupedNumber(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// plainNumber renders a value with no grouping and no trailing zeros, e.g. "45" or "78.5".
func plainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
