package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	// SeverityUndefined is reported when the target is zero.
	SeverityUndefined Severity = "undefined"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
	// DirectionUndefined is reported when the previous period is zero.
	DirectionUndefined Direction = "undefined"
)

// Deviation is the gap between an actual value and its optimization target.
type Deviation struct {
	MagnitudePercent float64  // |raw| rounded to one decimal
	IsAboveTarget    bool     // raw > 0
	Severity         Severity // error <= -10% < warning < 0% <= success
	Raw              float64
}

// Label renders the magnitude the way badges and exports show it, e.g. "15.6".
func (d Deviation) Label() string {
	return decimal.NewFromFloat(d.MagnitudePercent).StringFixed(1)
}

// SignedLabel renders the badge text, e.g. "+15.6%" or "-5.0%".
func (d Deviation) SignedLabel() string {
	sign := "-"
	if d.IsAboveTarget {
		sign = "+"
	}
	return sign + d.Label() + "%"
}

func DeviationFromTarget(target, actual float64) Deviation {
	if target == 0 {
		return Deviation{Severity: SeverityUndefined}
	}

	raw := (actual - target) / target * 100

	sev := SeveritySuccess
	switch {
	case raw <= -10:
		sev = SeverityError
	case raw < 0:
		sev = SeverityWarning
	}

	return Deviation{
		MagnitudePercent: roundOne(math.Abs(raw)),
		IsAboveTarget:    raw > 0,
		Severity:         sev,
		Raw:              raw,
	}
}

// Variation is the change between a value and the prior comparable period.
type Variation struct {
	Percent   float64
	Direction Direction
}

// Label renders the badge text: "+5.5%", "-3.2%" or "0.0%".
func (v Variation) Label() string {
	s := decimal.NewFromFloat(v.Percent).StringFixed(1) + "%"
	if v.Percent > 0 {
		return "+" + s
	}
	return s
}

func PeriodVariation(current, previous float64) Variation {
	if previous == 0 {
		return Variation{Direction: DirectionUndefined}
	}

	pct := (current - previous) / previous * 100

	dir := DirectionFlat
	switch {
	case pct > 0:
		dir = DirectionUp
	case pct < 0:
		dir = DirectionDown
	}
	return Variation{Percent: pct, Direction: dir}
}

// NinetyDayPeriods is the number of monthly periods in the 90-day projection.
const NinetyDayPeriods = 3

// ProjectForward is a placeholder linear extrapolation (value times periods).
// It is not a forecast and ignores trend and seasonality.
func ProjectForward(current float64, periodsAhead int) float64 {
	return current * float64(periodsAhead)
}

func roundOne(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
