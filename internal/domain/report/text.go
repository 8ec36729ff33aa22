package report

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// yen agrupa los dígitos al estilo japonés (¥1,234,567).
var yen = message.NewPrinter(language.Japanese)

var streamLabels = map[entity.Stream]string{
	entity.StreamSake:  "日本酒・焼酎",
	entity.StreamWine:  "ワイン",
	entity.StreamOther: "その他ドリンク",
	entity.StreamShelf: "棚在庫",
}

// RenderText produce la versión de texto plano del reporte, lista para copiar
// y pegar en el chat del equipo. El footer viene de configuración.
func RenderText(r *entity.DailyReport, footer string) string {
	var b strings.Builder

	b.WriteString("【在庫日報】")
	b.WriteString(r.Date)
	if label, ok := streamLabels[r.Stream]; ok {
		b.WriteString("（")
		b.WriteString(label)
		b.WriteString("）")
	}
	b.WriteString("\n")
	b.WriteString(yen.Sprintf("資産総額: ¥%d\n", r.TotalAssets.IntPart()))
	b.WriteString("----------------\n")

	if len(r.Lines) == 0 {
		b.WriteString("対象商品なし\n")
	}
	for _, line := range r.Lines {
		b.WriteString("・")
		b.WriteString(line.Name)
		b.WriteString(yen.Sprintf("　在庫:%d", line.Stock))
		if line.OrderQty > 0 {
			b.WriteString(yen.Sprintf("　発注:%d", line.OrderQty))
		}
		b.WriteString("\n")
	}

	if footer != "" {
		b.WriteString("----------------\n")
		b.WriteString(footer)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStockText produce el parte de stock en vivo: solo items con unidades en
// stock, con el nivel restante de la botella abierta. A diferencia de
// RenderText no depende de un reporte guardado.
func RenderStockText(stream entity.Stream, items []*entity.Item, now time.Time, footer string) string {
	var b strings.Builder

	b.WriteString("【在庫日報】 ")
	b.WriteString(DisplayDate(now))
	b.WriteString("\n----------------------------\n")

	for _, item := range items {
		if item.StockUnits <= 0 {
			continue
		}
		if stream.TracksLevel() {
			b.WriteString(yen.Sprintf("%s: %d本 (残%d%%)\n", item.Name, item.StockUnits, item.StockLevel))
		} else {
			b.WriteString(yen.Sprintf("%s: %d\n", item.Name, item.StockUnits))
		}
	}

	b.WriteString("----------------------------\n")
	b.WriteString(footer)
	return b.String()
}
