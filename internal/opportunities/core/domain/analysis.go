package domain

import "strconv"

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// RootCauseCard is one of the ranked factors behind an opportunity.
type RootCauseCard struct {
	Rank               int
	Title              string
	Subtitle           string
	Trend              Trend
	Actual             float64
	Optimal            float64
	DeviationPercent   float64
	CorrelationPercent float64
	ImpactProgress     float64 // 0..100, bar width
}

// DeviationLabel renders the signed deviation, e.g. "-43%" or "+30%".
func (c RootCauseCard) DeviationLabel() string {
	s := strconv.FormatFloat(c.DeviationPercent, 'f', -1, 64) + "%"
	if c.DeviationPercent > 0 {
		return "+" + s
	}
	return s
}

func TopRootCauses() []RootCauseCard {
	return []RootCauseCard{
		{
			Rank:               1,
			Title:              "Dias Inventario",
			Subtitle:           "Autoservicio > Centro > Walmart",
			Trend:              TrendDown,
			Actual:             8,
			Optimal:            14,
			DeviationPercent:   -43,
			CorrelationPercent: 85,
			ImpactProgress:     85,
		},
		{
			Rank:               2,
			Title:              "Tamaño Pedido",
			Subtitle:           "Bebidas > RefreshCo",
			Trend:              TrendUp,
			Actual:             650,
			Optimal:            500,
			DeviationPercent:   30,
			CorrelationPercent: 78,
			ImpactProgress:     78,
		},
		{
			Rank:               3,
			Title:              "Distancia numérica",
			Subtitle:           "Conveniencia > Norte",
			Trend:              TrendNeutral,
			Actual:             72,
			Optimal:            85,
			DeviationPercent:   -15,
			CorrelationPercent: 65,
			ImpactProgress:     65,
		},
	}
}
