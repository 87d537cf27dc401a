package domain

import (
	"strconv"
	"strings"
)

type Priority string

const (
	PriorityCritical Priority = "Critica"
	PriorityHigh     Priority = "Alta"
	PriorityMedium   Priority = "Media"
)

// Color is the badge color of a priority.
func (p Priority) Color() string {
	switch p {
	case PriorityCritical:
		return "error"
	case PriorityHigh:
		return "warning"
	default:
		return "success"
	}
}

type RootCause struct {
	Type               string
	CorrelationPercent float64
	DeviationPercent   float64
	Detail             string // drill-down path, "Auto servicio > Centro > Walmart"
}

// DeviationLabel renders the stated deviation, e.g. "-43%" or "150%".
func (r RootCause) DeviationLabel() string {
	return strconv.FormatFloat(r.DeviationPercent, 'f', -1, 64) + "%"
}

// Path splits Detail into its drill-down segments.
func (r RootCause) Path() []string {
	parts := strings.Split(r.Detail, ">")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Opportunity struct {
	ID                  int
	Priority            Priority
	Title               string
	MonetaryValue       float64
	StoreCount          int
	SKUCount            int
	ShareOfTotalPercent float64
	RootCause           RootCause
}

// DisplayValue renders the value in thousands, e.g. "$250K".
func (o Opportunity) DisplayValue() string {
	return "$" + strconv.FormatFloat(o.MonetaryValue/1000, 'f', -1, 64) + "K"
}

func StaticOpportunities() []Opportunity {
	return []Opportunity{
		{
			ID:                  1,
			Priority:            PriorityCritical,
			Title:               "Venta Incremental",
			MonetaryValue:       250000,
			StoreCount:          25,
			SKUCount:            28,
			ShareOfTotalPercent: 36.3,
			RootCause: RootCause{
				Type:               "Dias Inventario",
				CorrelationPercent: 85,
				DeviationPercent:   -43,
				Detail:             "Auto servicio > Centro > Walmart",
			},
		},
		{
			ID:                  2,
			Priority:            PriorityHigh,
			Title:               "Riesgo de Agotados",
			MonetaryValue:       180000,
			StoreCount:          18,
			SKUCount:            22,
			ShareOfTotalPercent: 28.5,
			RootCause: RootCause{
				Type:               "Punto de Re-orden",
				CorrelationPercent: 92,
				DeviationPercent:   -50,
				Detail:             "Bebidas > RefreshCo",
			},
		},
		{
			ID:                  3,
			Priority:            PriorityMedium,
			Title:               "Riesgo de Caducidad",
			MonetaryValue:       95000,
			StoreCount:          12,
			SKUCount:            15,
			ShareOfTotalPercent: 15.2,
			RootCause: RootCause{
				Type:               "Dias Inventario",
				CorrelationPercent: 75,
				DeviationPercent:   150,
				Detail:             "Conveniencia > Norte",
			},
		},
	}
}

func FindOpportunity(id int) (Opportunity, bool) {
	for _, o := range StaticOpportunities() {
		if o.ID == id {
			return o, true
		}
	}
	return Opportunity{}, false
}

func TotalPotential(ops []Opportunity) float64 {
	var total float64
	for _, o := range ops {
		total += o.MonetaryValue
	}
	return total
}
