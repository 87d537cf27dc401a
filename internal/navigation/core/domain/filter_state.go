package domain

import (
	"encoding/json"
)

type Axis int

const (
	AxisClient Axis = iota
	AxisProduct
	AxisSegmentation
)

var axisNames = [...]string{
	AxisClient:       "client",
	AxisProduct:      "product",
	AxisSegmentation: "segmentation",
}

func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return "unknown"
	}
	return axisNames[a]
}

func ParseAxis(s string) (Axis, bool) {
	for i, name := range axisNames {
		if name == s {
			return Axis(i), true
		}
	}
	return 0, false
}

type Level string

const (
	LevelChannel      Level = "canal"
	LevelGeography    Level = "geografia"
	LevelTree         Level = "arbol"
	LevelChain        Level = "cadena"
	LevelClient       Level = "cliente"
	LevelCategory     Level = "categoria"
	LevelBrand        Level = "marca"
	LevelSKU          Level = "sku"
	LevelSegmentation Level = "segmentacion"

	// LevelRoot is the "Inicio" crumb in front of every trail.
	LevelRoot Level = "root"
)

// axisLevels lists every axis in cascade order. A level's index is its depth.
var axisLevels = [...][]Level{
	AxisClient:       {LevelChannel, LevelGeography, LevelTree, LevelChain, LevelClient},
	AxisProduct:      {LevelCategory, LevelBrand, LevelSKU},
	AxisSegmentation: {LevelSegmentation},
}

var levelLabels = map[Level]string{
	LevelChannel:      "Canal",
	LevelGeography:    "Geografía",
	LevelTree:         "Árbol",
	LevelChain:        "Cadena",
	LevelClient:       "Cliente",
	LevelCategory:     "Categoría",
	LevelBrand:        "Marca",
	LevelSKU:          "SKU",
	LevelSegmentation: "Segmentación",
}

// Levels returns the levels of an axis in cascade order.
func Levels(a Axis) []Level {
	out := make([]Level, len(axisLevels[a]))
	copy(out, axisLevels[a])
	return out
}

// AllLevels returns every filter level in breadcrumb order.
func AllLevels() []Level {
	var out []Level
	for _, levels := range axisLevels {
		out = append(out, levels...)
	}
	return out
}

// Locate returns the axis and depth of a level. ok is false for root and unknown levels.
func (l Level) Locate() (axis Axis, depth int, ok bool) {
	for a, levels := range axisLevels {
		for d, lv := range levels {
			if lv == l {
				return Axis(a), d, true
			}
		}
	}
	return 0, 0, false
}

func (l Level) Label() string {
	return levelLabels[l]
}

func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	if l == LevelRoot {
		return l, true
	}
	if _, _, ok := l.Locate(); ok {
		return l, true
	}
	return "", false
}

type Segmentation string

const (
	SegmentationHot      Segmentation = "Hot"
	SegmentationBalanced Segmentation = "Balanceadas"
	SegmentationSlow     Segmentation = "Slow"
	SegmentationCritical Segmentation = "Críticas"
)

func ParseSegmentation(s string) (Segmentation, bool) {
	switch Segmentation(s) {
	case SegmentationHot, SegmentationBalanced, SegmentationSlow, SegmentationCritical:
		return Segmentation(s), true
	}
	return "", false
}

// FilterState holds one ordered slot array per axis. Slot i of an axis is only
// meaningful while slots 0..i-1 are set; writing slot i clears every slot after it.
//
// The zero value is the empty state. FilterState is a value type and is
// comparable with ==.
type FilterState struct {
	client       [5]string
	product      [3]string
	segmentation [1]string
}

func (s *FilterState) slots(a Axis) []string {
	switch a {
	case AxisClient:
		return s.client[:]
	case AxisProduct:
		return s.product[:]
	default:
		return s.segmentation[:]
	}
}

// Get returns the value selected at a level, or "" when unset.
func (s FilterState) Get(l Level) string {
	a, d, ok := l.Locate()
	if !ok {
		return ""
	}
	return s.slots(a)[d]
}

func (s FilterState) IsEmpty() bool {
	return s == FilterState{}
}

// Values returns the non-empty fields keyed by level.
func (s FilterState) Values() map[Level]string {
	out := make(map[Level]string)
	for _, l := range AllLevels() {
		if v := s.Get(l); v != "" {
			out[l] = v
		}
	}
	return out
}

// SetField sets level to value (an empty value clears it) and clears every
// deeper level of the same axis. Other axes are left as they are.
// Unknown levels return the state unchanged.
func SetField(s FilterState, l Level, value string) FilterState {
	a, d, ok := l.Locate()
	if !ok {
		return s
	}
	slots := s.slots(a)
	slots[d] = value
	clear(slots[d+1:])
	return s
}

// NavigateTo rewinds the state to a breadcrumb. The clicked level takes value,
// its ancestors keep their current values, deeper levels of the same axis are
// dropped and the other axes are preserved. LevelRoot clears everything.
func NavigateTo(s FilterState, l Level, value string) FilterState {
	if l == LevelRoot {
		return FilterState{}
	}
	return SetField(s, l, value)
}

func (s FilterState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *FilterState) UnmarshalJSON(b []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	next := FilterState{}
	// Apply in cascade order so a parent never clears a child read from the same payload.
	for _, l := range AllLevels() {
		if v := raw[string(l)]; v != "" {
			a, d, _ := l.Locate()
			next.slots(a)[d] = v
		}
	}
	*s = next
	return nil
}
