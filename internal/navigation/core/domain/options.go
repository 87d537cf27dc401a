package domain

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TimePeriod string

const (
	PeriodMonth       TimePeriod = "mes"
	PeriodQuarter     TimePeriod = "trimestre"
	PeriodThreeMonths TimePeriod = "3meses"
	PeriodSixMonths   TimePeriod = "6meses"
	PeriodYear        TimePeriod = "año"
)

const DefaultTimePeriod = PeriodMonth

var timePeriodOptions = []Option{
	{Value: string(PeriodMonth), Label: "Mes Actual"},
	{Value: string(PeriodQuarter), Label: "Trimestre Actual"},
	{Value: string(PeriodThreeMonths), Label: "Últimos 3 Meses"},
	{Value: string(PeriodSixMonths), Label: "Últimos 6 Meses"},
	{Value: string(PeriodYear), Label: "Año Actual"},
}

func ParseTimePeriod(s string) (TimePeriod, bool) {
	for _, o := range timePeriodOptions {
		if o.Value == s {
			return TimePeriod(s), true
		}
	}
	return "", false
}

func TimePeriodOptions() []Option {
	return append([]Option(nil), timePeriodOptions...)
}

// Catalogue values until the option lists come from the data source.
var levelOptions = map[Level][]Option{
	LevelChannel: {
		{Value: "retail", Label: "Retail"},
		{Value: "mayorista", Label: "Mayorista"},
		{Value: "online", Label: "Online"},
	},
	LevelGeography: {
		{Value: "norte", Label: "Norte"},
		{Value: "sur", Label: "Sur"},
		{Value: "centro", Label: "Centro"},
	},
	LevelTree: {
		{Value: "arbol1", Label: "Árbol 1"},
		{Value: "arbol2", Label: "Árbol 2"},
	},
	LevelChain: {
		{Value: "cadena1", Label: "Cadena 1"},
		{Value: "cadena2", Label: "Cadena 2"},
	},
	LevelClient: {
		{Value: "cliente1", Label: "Cliente 1"},
		{Value: "cliente2", Label: "Cliente 2"},
	},
	LevelCategory: {
		{Value: "cat1", Label: "Categoría 1"},
		{Value: "cat2", Label: "Categoría 2"},
	},
	LevelBrand: {
		{Value: "marca1", Label: "Marca 1"},
		{Value: "marca2", Label: "Marca 2"},
	},
	LevelSKU: {
		{Value: "sku1", Label: "SKU 1"},
		{Value: "sku2", Label: "SKU 2"},
	},
	LevelSegmentation: {
		{Value: string(SegmentationHot), Label: "Hot"},
		{Value: string(SegmentationBalanced), Label: "Balanceadas"},
		{Value: string(SegmentationSlow), Label: "Slow"},
		{Value: string(SegmentationCritical), Label: "Críticas"},
	},
}

// Options returns the selectable values of a level under the given state.
// A level whose parent is unset offers nothing, so a child select can never
// show a value inconsistent with its parent.
func Options(s FilterState, l Level) []Option {
	a, d, ok := l.Locate()
	if !ok {
		return []Option{}
	}
	if d > 0 && s.slots(a)[d-1] == "" {
		return []Option{}
	}
	return append([]Option{}, levelOptions[l]...)
}
