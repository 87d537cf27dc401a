package domain

import (
	"bytes"
	"encoding/csv"
	"time"
)

const (
	ExportParametersSection = "Parámetros de Optimización"
	ExportKPIsSection       = "Indicadores Clave (KPIs)"
	ExportContentType       = "text/csv; charset=utf-8"
)

var (
	exportParametersHeader = []string{"Parametro", "Optimizado", "Actual", "Desviacion"}
	exportKPIsHeader       = []string{"Indicador", "Valor", "Unidad"}
)

// BuildExportCSV writes the two dashboard sections. Parameter rows carry the
// deviation magnitude only; the severity is not exported.
func BuildExportCSV(parameters []ParameterRecord, kpis []KPIRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{ExportParametersSection}, exportParametersHeader}
	for _, p := range parameters {
		d := DeviationFromTarget(p.OptimizedValue, p.ActualValue)
		rows = append(rows, []string{
			p.Title,
			plainNumber(p.OptimizedValue) + " " + p.Unit,
			plainNumber(p.ActualValue) + " " + p.Unit,
			d.Label() + "%",
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	// csv.Writer has no notion of a blank separator line.
	buf.WriteString("\n")

	rows = [][]string{{ExportKPIsSection}, exportKPIsHeader}
	for _, k := range kpis {
		rows = append(rows, []string{k.Title, plainNumber(k.Value), k.Unit})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportFileName names the download after the UTC calendar day.
func ExportFileName(now time.Time) string {
	return "vemio_dashboard_" + now.UTC().Format(time.DateOnly) + ".csv"
}
