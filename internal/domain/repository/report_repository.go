package repository

import (
	"context"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// ReportRepository define el puerto de persistencia de los reportes diarios.
type ReportRepository interface {
	// Upsert guarda el reporte del día: si ya existe uno con el mismo
	// (stream, date_key) lo sobrescribe en lugar de duplicarlo.
	Upsert(ctx context.Context, report *entity.DailyReport) error
	GetByDateKey(ctx context.Context, stream entity.Stream, dateKey string) (*entity.DailyReport, error)
	// ListRecent devuelve hasta limit reportes del stream, el más reciente primero.
	ListRecent(ctx context.Context, stream entity.Stream, limit int) ([]*entity.DailyReport, error)
}
