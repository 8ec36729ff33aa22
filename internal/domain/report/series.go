// Package report construye los reportes diarios de cierre por stream y mantiene
// la serie histórica diaria de cada item. Lógica pura: la persistencia vive en
// internal/infrastructure/postgres.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// MaxDailyStats acota la serie diaria por item a un año de entradas.
const MaxDailyStats = 365

// DateKey devuelve la clave de idempotencia del día calendario de t.
// Dos guardados en el mismo día local producen la misma clave.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DisplayDate devuelve la fecha localizada sin ceros a la izquierda, ej. "2026/8/30".
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// TotalAssets suma el valor de inventario de todos los items, incluidos los que
// no aparecen como línea del reporte.
func TotalAssets(items []*entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.AssetValue())
	}
	return total
}

// Build arma el reporte de cierre del día para un stream.
//
// Solo entran como línea los items con presencia real: unidades cerradas en
// stock, o una botella abierta a medio consumir en los streams con nivel. Los
// items agotados sin botella abierta quedan fuera, pero sí cuentan para el
// total de activos (que ya es cero para ellos).
func Build(stream entity.Stream, items []*entity.Item, totalAssets decimal.Decimal, now time.Time) *entity.DailyReport {
	lines := make([]entity.ReportLine, 0, len(items))
	for _, item := range items {
		if !lineWorthy(stream, item) {
			continue
		}
		lines = append(lines, entity.ReportLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Stock:    item.StockUnits,
			OrderQty: item.OrderQty,
		})
	}
	return &entity.DailyReport{
		Stream:      stream,
		DateKey:     DateKey(now),
		Date:        DisplayDate(now),
		TotalAssets: totalAssets,
		Lines:       lines,
		CreatedAt:   now,
	}
}

func lineWorthy(stream entity.Stream, item *entity.Item) bool {
	if item.StockUnits > 0 {
		return true
	}
	return stream.TracksLevel() && item.StockLevel < 100
}

// MergeDailyStat incorpora el punto del día a la serie de un item.
//
// Si ya existe una entrada con la misma fecha se reemplaza en su lugar (guardar
// dos veces el mismo día no duplica); si no, se agrega al final. Cuando la serie
// supera MaxDailyStats se descartan las entradas más antiguas del frente: la
// serie se construye en orden cronológico, así que el frente es lo más viejo.
func MergeDailyStat(series []entity.DailyStat, stat entity.DailyStat) []entity.DailyStat {
	for i := range series {
		if series[i].Date == stat.Date {
			merged := make([]entity.DailyStat, len(series))
			copy(merged, series)
			merged[i] = stat
			return merged
		}
	}
	merged := make([]entity.DailyStat, 0, len(series)+1)
	merged = append(merged, series...)
	merged = append(merged, stat)
	if len(merged) > MaxDailyStats {
		merged = merged[len(merged)-MaxDailyStats:]
	}
	return merged
}
