package domain_test

import (
	"strings"
	"testing"
	"time"

	"vemio-dashboard/internal/dashboard/core/domain"
)

func TestBuildExportCSV_SingleParameterRow(t *testing.T) {
	params := []domain.ParameterRecord{
		{Title: "Días de Inventario", OptimizedValue: 45, ActualValue: 52, Unit: "días"},
	}

	out, err := domain.BuildExportCSV(params, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(out), "Días de Inventario,45 días,52 días,15.6%\n") {
		t.Fatalf("expected parameter row in payload, got:\n%s", out)
	}
}

func TestBuildExportCSV_Layout(t *testing.T) {
	out, err := domain.BuildExportCSV(domain.DefaultParameterRecords(), domain.StaticKPIRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Parámetros de Optimización",
		"Parametro,Optimizado,Actual,Desviacion",
		"Días de Inventario,45 días,52 días,15.6%",
		"Punto de Reorden,120 unidades,150 unidades,25.0%",
		"Tamaño de Pedido Óptimo,500 unidades,600 unidades,20.0%",
		"Frecuencia Óptima,7 días,10 días,42.9%",
		"",
		"Indicadores Clave (KPIs)",
		"Indicador,Valor,Unidad",
		"Ventas de unidades,12450,unidades",
		"Ventas en Valor,245680,$",
		"Distribución Numérica,78.5,%",
		"Sell Through,65.2,%",
		"Días de Inventario,45,días",
	}, "\n") + "\n"

	if string(out) != want {
		t.Fatalf("unexpected payload:\n--- got ---\n%s\n--- want ---\n%s", out, want)
	}
}

func TestBuildExportCSV_QuotesTitlesWithCommas(t *testing.T) {
	params := []domain.ParameterRecord{
		{Title: "Stock, tienda", OptimizedValue: 10, ActualValue: 10, Unit: "unidades"},
	}

	out, err := domain.BuildExportCSV(params, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"Stock, tienda",10 unidades,10 unidades,0.0%`) {
		t.Fatalf("expected quoted title, got:\n%s", out)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("CST", -6*3600))

	if got := domain.ExportFileName(now); got != "vemio_dashboard_2026-03-10.csv" {
		t.Fatalf("expected UTC date in file name, got %s", got)
	}
}
