// Package analysis deriva estadísticas de cadencia de pedidos/entregas a partir
// del historial de eventos de un item. Funciones puras, sin I/O ni estado.
package analysis

import (
	"math"
	"sort"
	"time"
)

// HistogramMonths es el ancho fijo del histograma mensual: los últimos 6 meses
// calendario incluyendo el actual.
const HistogramMonths = 6

// MonthBucket cuenta los eventos cuyo (año, mes) calendario coincide con el bucket.
// No es una ventana móvil de 30 días: la identidad es el mes calendario.
type MonthBucket struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

// Stats resume el historial de eventos de reposición de un item.
//
// LastOrderDays y AvgCycleDays son nil cuando no hay datos suficientes:
// historial vacío para el primero, menos de dos eventos para el segundo.
// Son estados centinela ("sin datos", "calculando"), no errores.
type Stats struct {
	Total         int
	LastOrderDays *int
	AvgCycleDays  *int
	Monthly       [HistogramMonths]MonthBucket
}

// AnalyzeHistory calcula las estadísticas del historial anclado en now.
//
// Precondición: los timestamps provienen del adaptador de almacenamiento ya
// parseados; el filtrado de entradas malformadas ocurre en esa frontera, no aquí.
// El orden de events es irrelevante: se ordena una copia antes de derivar.
func AnalyzeHistory(now time.Time, events []time.Time) Stats {
	stats := Stats{
		Total:   len(events),
		Monthly: monthlyHistogram(now, events),
	}
	if len(events) == 0 {
		return stats
	}

	sorted := make([]time.Time, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	first := sorted[0]
	last := sorted[len(sorted)-1]

	// Eventos con fecha futura no se esperan pero no deben romper: se reporta 0.
	recency := wholeDays(last, now)
	if recency < 0 {
		recency = 0
	}
	stats.LastOrderDays = &recency

	if len(sorted) >= 2 {
		span := wholeDays(first, last)
		avg := int(math.Round(float64(span) / float64(len(sorted)-1)))
		stats.AvgCycleDays = &avg
	}
	return stats
}

// monthlyHistogram arma los 6 buckets mensuales (el más antiguo primero),
// recalculados en vivo en cada llamada, anclados a now.
func monthlyHistogram(now time.Time, events []time.Time) [HistogramMonths]MonthBucket {
	var buckets [HistogramMonths]MonthBucket

	// Anclar al primer día del mes evita el desborde de AddDate en fin de mes.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < HistogramMonths; i++ {
		m := anchor.AddDate(0, i-(HistogramMonths-1), 0)
		buckets[i] = MonthBucket{Year: m.Year(), Month: m.Month()}
		for _, ev := range events {
			if ev.Year() == m.Year() && ev.Month() == m.Month() {
				buckets[i].Count++
			}
		}
	}
	return buckets
}

// wholeDays devuelve los días completos transcurridos de from a to (piso).
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
