package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

// Historial vacío: centinelas, total 0 y 6 buckets en cero.
func TestAnalyzeHistory_SinEventos(t *testing.T) {
	now := ts(t, "2024-01-11T00:00:00Z")
	stats := AnalyzeHistory(now, nil)

	assert.Equal(t, 0, stats.Total)
	assert.Nil(t, stats.LastOrderDays, "sin eventos no hay última entrega")
	assert.Nil(t, stats.AvgCycleDays, "sin eventos no hay ciclo")
	require.Len(t, stats.Monthly, HistogramMonths)
	for _, b := range stats.Monthly {
		assert.Zero(t, b.Count)
	}
}

// Un solo evento: recencia calculada, ciclo aún insuficiente.
func TestAnalyzeHistory_UnEvento(t *testing.T) {
	now := ts(t, "2024-01-11T00:00:00Z")
	stats := AnalyzeHistory(now, []time.Time{ts(t, "2024-01-01T00:00:00Z")})

	assert.Equal(t, 1, stats.Total)
	require.NotNil(t, stats.LastOrderDays)
	assert.Equal(t, 10, *stats.LastOrderDays)
	assert.Nil(t, stats.AvgCycleDays, "un solo evento no alcanza para el ciclo promedio")
}

// Ciclo promedio: (último - primero) / (n - 1), redondeado.
func TestAnalyzeHistory_CicloPromedio(t *testing.T) {
	now := ts(t, "2024-02-01T00:00:00Z")
	events := []time.Time{
		ts(t, "2024-01-01T00:00:00Z"),
		ts(t, "2024-01-11T00:00:00Z"),
		ts(t, "2024-01-21T00:00:00Z"),
	}
	stats := AnalyzeHistory(now, events)

	assert.Equal(t, 3, stats.Total)
	require.NotNil(t, stats.AvgCycleDays)
	assert.Equal(t, 10, *stats.AvgCycleDays)
}

// El orden de entrada es irrelevante: se ordena antes de derivar.
func TestAnalyzeHistory_EntradaDesordenada(t *testing.T) {
	now := ts(t, "2024-02-01T00:00:00Z")
	events := []time.Time{
		ts(t, "2024-01-21T00:00:00Z"),
		ts(t, "2024-01-01T00:00:00Z"),
		ts(t, "2024-01-11T00:00:00Z"),
	}
	stats := AnalyzeHistory(now, events)

	require.NotNil(t, stats.AvgCycleDays)
	assert.Equal(t, 10, *stats.AvgCycleDays)
	require.NotNil(t, stats.LastOrderDays)
	assert.Equal(t, 11, *stats.LastOrderDays)
}

// Un evento con fecha futura no rompe: la recencia se reporta como 0.
func TestAnalyzeHistory_EventoFuturoNoRompe(t *testing.T) {
	now := ts(t, "2024-01-11T00:00:00Z")
	stats := AnalyzeHistory(now, []time.Time{ts(t, "2024-03-01T00:00:00Z")})

	require.NotNil(t, stats.LastOrderDays)
	assert.Equal(t, 0, *stats.LastOrderDays)
}

// Histograma por identidad de mes calendario (no ventanas móviles), más antiguo primero.
func TestAnalyzeHistory_HistogramaMensual(t *testing.T) {
	now := ts(t, "2024-06-15T00:00:00Z")
	events := []time.Time{
		ts(t, "2024-06-01T00:00:00Z"),
		ts(t, "2024-06-30T23:59:59Z"),
		ts(t, "2024-04-10T00:00:00Z"),
		ts(t, "2024-01-31T00:00:00Z"),
		ts(t, "2023-12-31T00:00:00Z"), // fuera de la ventana de 6 meses
	}
	stats := AnalyzeHistory(now, events)

	require.Len(t, stats.Monthly, 6)
	assert.Equal(t, time.January, stats.Monthly[0].Month, "el bucket más antiguo es enero")
	assert.Equal(t, 1, stats.Monthly[0].Count)
	assert.Equal(t, time.April, stats.Monthly[3].Month)
	assert.Equal(t, 1, stats.Monthly[3].Count)
	assert.Equal(t, time.June, stats.Monthly[5].Month, "el bucket más reciente es el mes actual")
	assert.Equal(t, 2, stats.Monthly[5].Count)

	total := 0
	for _, b := range stats.Monthly {
		total += b.Count
	}
	assert.Equal(t, 4, total, "diciembre de 2023 queda fuera de la ventana")
}

// El histograma se ancla bien incluso a fin de mes (sin desborde de AddDate).
func TestAnalyzeHistory_AnclaFinDeMes(t *testing.T) {
	now := ts(t, "2024-03-31T00:00:00Z")
	stats := AnalyzeHistory(now, nil)

	assert.Equal(t, time.October, stats.Monthly[0].Month)
	assert.Equal(t, 2023, stats.Monthly[0].Year)
	assert.Equal(t, time.March, stats.Monthly[5].Month)
	assert.Equal(t, 2024, stats.Monthly[5].Year)
}
