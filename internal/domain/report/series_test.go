package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

func TestDateKey_EstablePorDia(t *testing.T) {
	morning := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	night := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2026-08-30", DateKey(morning))
	assert.Equal(t, DateKey(morning), DateKey(night), "misma fecha local, misma clave")
}

func TestDisplayDate_SinCeros(t *testing.T) {
	assert.Equal(t, "2026/8/30", DisplayDate(time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2026/12/1", DisplayDate(time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
}

func stockItem(id, name string, units, level, orderQty int, cost int64) *entity.Item {
	return &entity.Item{
		ID:         id,
		Name:       name,
		StockUnits: units,
		StockLevel: level,
		OrderQty:   orderQty,
		PriceCost:  decimal.NewFromInt(cost),
	}
}

// Solo entran como línea los items con stock o botella abierta; los agotados no.
func TestBuild_FiltraLineas(t *testing.T) {
	items := []*entity.Item{
		stockItem("a", "銘柄A", 3, 100, 2, 3000),
		stockItem("b", "銘柄B", 0, 40, 0, 5000), // solo botella abierta
		stockItem("c", "銘柄C", 0, 100, 0, 2000),
	}
	for _, it := range items {
		it.Stream = entity.StreamSake
	}
	now := time.Date(2026, 8, 30, 21, 0, 0, 0, time.Local)

	r := Build(entity.StreamSake, items, TotalAssets(items), now)

	require.Len(t, r.Lines, 2)
	assert.Equal(t, "a", r.Lines[0].ItemID)
	assert.Equal(t, 3, r.Lines[0].Stock)
	assert.Equal(t, 2, r.Lines[0].OrderQty)
	assert.Equal(t, "b", r.Lines[1].ItemID)
	assert.Equal(t, "2026-08-30", r.DateKey)
	assert.Equal(t, "2026/8/30", r.Date)
	// 3×3000 + 5000×40% = 11000
	assert.True(t, r.TotalAssets.Equal(decimal.NewFromInt(11000)), "obtuvo %s", r.TotalAssets)
}

// En streams sin nivel, una "botella abierta" no cuenta: solo importa el stock.
func TestBuild_StreamSinNivel(t *testing.T) {
	item := stockItem("x", "おしぼり", 0, 40, 0, 100)
	item.Stream = entity.StreamShelf
	now := time.Date(2026, 8, 30, 21, 0, 0, 0, time.Local)

	r := Build(entity.StreamShelf, []*entity.Item{item}, TotalAssets([]*entity.Item{item}), now)
	assert.Empty(t, r.Lines)
}

func TestMergeDailyStat_AgregaYReemplaza(t *testing.T) {
	series := []entity.DailyStat{
		{Date: "2026/8/28", Stock: 5, OrderQty: 0},
		{Date: "2026/8/29", Stock: 4, OrderQty: 1},
	}

	merged := MergeDailyStat(series, entity.DailyStat{Date: "2026/8/30", Stock: 3, OrderQty: 2})
	require.Len(t, merged, 3)
	assert.Equal(t, "2026/8/30", merged[2].Date)

	// Mismo día de nuevo: reemplaza en su posición, sin duplicar.
	merged = MergeDailyStat(merged, entity.DailyStat{Date: "2026/8/30", Stock: 2, OrderQty: 0})
	require.Len(t, merged, 3)
	assert.Equal(t, 2, merged[2].Stock)
	assert.Equal(t, 0, merged[2].OrderQty)
	assert.Equal(t, "2026/8/28", merged[0].Date, "las entradas anteriores no se tocan")
}

func TestMergeDailyStat_NoMutaLaEntrada(t *testing.T) {
	series := []entity.DailyStat{{Date: "2026/8/29", Stock: 4}}
	MergeDailyStat(series, entity.DailyStat{Date: "2026/8/29", Stock: 1})
	assert.Equal(t, 4, series[0].Stock, "el slice original queda intacto")
}

// Al superar el año de entradas se descartan las más antiguas del frente.
func TestMergeDailyStat_CotaDeUnAnio(t *testing.T) {
	day := time.Date(2025, 8, 30, 0, 0, 0, 0, time.Local)
	series := make([]entity.DailyStat, 0, MaxDailyStats)
	for i := 0; i < MaxDailyStats; i++ {
		series = append(series, entity.DailyStat{Date: DisplayDate(day.AddDate(0, 0, i)), Stock: i})
	}

	next := entity.DailyStat{Date: DisplayDate(day.AddDate(0, 0, MaxDailyStats)), Stock: 999}
	merged := MergeDailyStat(series, next)

	require.Len(t, merged, MaxDailyStats)
	assert.Equal(t, series[1].Date, merged[0].Date, "la entrada más vieja se descarta")
	assert.Equal(t, next.Date, merged[MaxDailyStats-1].Date)
}

func TestRenderText_FormatoCompleto(t *testing.T) {
	r := &entity.DailyReport{
		Stream:      entity.StreamSake,
		DateKey:     "2026-08-30",
		Date:        "2026/8/30",
		TotalAssets: decimal.NewFromInt(1234567),
		Lines: []entity.ReportLine{
			{ItemID: "a", Name: "銘柄A", Stock: 3, OrderQty: 2},
			{ItemID: "b", Name: "銘柄B", Stock: 1},
		},
	}

	text := RenderText(r, "作成: cellar-pro")

	assert.True(t, strings.HasPrefix(text, "【在庫日報】2026/8/30"), "obtuvo %q", text)
	assert.Contains(t, text, "資産総額: ¥1,234,567")
	assert.Contains(t, text, "・銘柄A　在庫:3　発注:2")
	assert.Contains(t, text, "・銘柄B　在庫:1")
	assert.NotContains(t, text, "銘柄B　在庫:1　発注", "sin pedido pendiente no se imprime 発注")
	assert.True(t, strings.HasSuffix(text, "作成: cellar-pro\n"))
}

func TestRenderText_SinLineas(t *testing.T) {
	r := &entity.DailyReport{
		Stream:      entity.StreamWine,
		Date:        "2026/8/30",
		TotalAssets: decimal.Zero,
	}
	text := RenderText(r, "")
	assert.Contains(t, text, "対象商品なし")
	assert.NotContains(t, text, "作成:")
}

func TestRenderStockText_SoloConStock(t *testing.T) {
	items := []*entity.Item{
		stockItem("a", "銘柄A", 3, 80, 0, 3000),
		stockItem("b", "銘柄B", 0, 40, 0, 5000), // sin unidades: no sale
	}
	now := time.Date(2026, 8, 30, 21, 0, 0, 0, time.Local)

	text := RenderStockText(entity.StreamSake, items, now, "作成: cellar-pro")

	assert.True(t, strings.HasPrefix(text, "【在庫日報】 2026/8/30"), "obtuvo %q", text)
	assert.Contains(t, text, "銘柄A: 3本 (残80%)")
	assert.NotContains(t, text, "銘柄B")
	assert.True(t, strings.HasSuffix(text, "作成: cellar-pro"))
}

func TestRenderStockText_StreamSinNivel(t *testing.T) {
	items := []*entity.Item{stockItem("x", "割り箸", 12, 100, 0, 100)}
	now := time.Date(2026, 8, 30, 21, 0, 0, 0, time.Local)

	text := RenderStockText(entity.StreamShelf, items, now, "")
	assert.Contains(t, text, "割り箸: 12\n")
	assert.NotContains(t, text, "残", "sin nivel no se imprime el porcentaje")
}

// La serie de un item siempre queda en orden cronológico mientras los merges
// lleguen en orden de días; el reemplazo de hoy no altera ese orden.
func TestMergeDailyStat_OrdenCronologico(t *testing.T) {
	var series []entity.DailyStat
	for i := 1; i <= 5; i++ {
		series = MergeDailyStat(series, entity.DailyStat{Date: fmt.Sprintf("2026/8/%d", i), Stock: i})
	}
	series = MergeDailyStat(series, entity.DailyStat{Date: "2026/8/5", Stock: 50})

	require.Len(t, series, 5)
	for i := 1; i <= 5; i++ {
		assert.Equal(t, fmt.Sprintf("2026/8/%d", i), series[i-1].Date)
	}
	assert.Equal(t, 50, series[4].Stock)
}
