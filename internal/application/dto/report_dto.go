package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// ReportResponse un reporte diario guardado.
type ReportResponse struct {
	Stream      string              `json:"stream"`
	DateKey     string              `json:"date_key"`
	Date        string              `json:"date"`
	TotalAssets decimal.Decimal     `json:"total_assets"`
	Lines       []entity.ReportLine `json:"lines"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ReportListResponse reportes recientes de un stream, el más nuevo primero.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// TextReportResponse parte de texto plano listo para copiar.
type TextReportResponse struct {
	Text string `json:"text"`
}
