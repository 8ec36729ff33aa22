package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para los items de inventario (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, stream entity.Stream, id string) (*entity.Item, error)
	GetByName(ctx context.Context, stream entity.Stream, name string) (*entity.Item, error)
	ListByStream(ctx context.Context, stream entity.Stream) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// UpdateStock ajusta las unidades cerradas en delta, con piso en 0, y
	// devuelve el valor resultante.
	UpdateStock(ctx context.Context, stream entity.Stream, id string, delta int) (int, error)
	UpdateStockLevel(ctx context.Context, stream entity.Stream, id string, level int) error
	AppendOrderEvent(ctx context.Context, stream entity.Stream, id string, at time.Time) error
	// ReplaceDailyStats sobrescribe la serie diaria completa del item.
	ReplaceDailyStats(ctx context.Context, stream entity.Stream, id string, stats []entity.DailyStat) error
	Delete(ctx context.Context, stream entity.Stream, id string) error
}
