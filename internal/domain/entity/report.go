package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportLine es el snapshot de un item dentro de un reporte diario.
type ReportLine struct {
	ItemID   string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	OrderQty int    `json:"order_qty"`
}

// DailyReport es el registro de cierre de un día para un stream.
//
// DateKey (día calendario ISO en hora local) es la identidad estable del
// documento: guardar dos veces el mismo día sobrescribe el reporte anterior
// en lugar de duplicarlo. Date es la representación localizada para mostrar.
type DailyReport struct {
	Stream      Stream
	DateKey     string // "2006-01-02", clave de idempotencia por día
	Date        string // fecha localizada, ej. "2026/8/30"
	TotalAssets decimal.Decimal
	Lines       []ReportLine
	CreatedAt   time.Time
}
