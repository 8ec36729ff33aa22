package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, stream, kind, name, tags, sales_talk, country, region, vintage, grape,
	rank, pairing_hint, axis_x, axis_y, price_cost, price_sell,
	stock_units, stock_level, order_qty, image_url, order_history, daily_stats,
	created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
// Todos los streams comparten la tabla items; la columna stream separa las colecciones.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un item nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Stream, item.Kind, item.Name, item.Tags, item.SalesTalk,
		item.Country, item.Region, item.Vintage, item.Grape,
		item.Rank, item.PairingHint, item.AxisX, item.AxisY, item.PriceCost, item.PriceSell,
		item.StockUnits, item.StockLevel, item.OrderQty, item.ImageURL, item.OrderHistory, item.DailyStats,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item del stream.
func (r *ItemRepo) GetByID(ctx context.Context, stream entity.Stream, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE stream = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, stream, id))
}

// GetByName obtiene un item del stream por nombre exacto.
func (r *ItemRepo) GetByName(ctx context.Context, stream entity.Stream, name string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE stream = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, stream, name))
}

// ListByStream devuelve todos los items del stream ordenados por nombre.
func (r *ItemRepo) ListByStream(ctx context.Context, stream entity.Stream) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE stream = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, stream)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update sobrescribe los campos editables del item. Stock, nivel, historial y
// serie diaria tienen sus propias operaciones.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET kind = $3, name = $4, tags = $5, sales_talk = $6,
			country = $7, region = $8, vintage = $9, grape = $10,
			rank = $11, pairing_hint = $12, axis_x = $13, axis_y = $14,
			price_cost = $15, price_sell = $16, order_qty = $17, image_url = $18, updated_at = $19
		WHERE stream = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		item.Stream, item.ID, item.Kind, item.Name, item.Tags, item.SalesTalk,
		item.Country, item.Region, item.Vintage, item.Grape,
		item.Rank, item.PairingHint, item.AxisX, item.AxisY,
		item.PriceCost, item.PriceSell, item.OrderQty, item.ImageURL, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock ajusta las unidades en delta con piso en cero, atómico en la DB.
func (r *ItemRepo) UpdateStock(ctx context.Context, stream entity.Stream, id string, delta int) (int, error) {
	query := `
		UPDATE items SET stock_units = GREATEST(stock_units + $3, 0), updated_at = now()
		WHERE stream = $1 AND id = $2
		RETURNING stock_units`
	var units int
	err := r.q.QueryRow(ctx, query, stream, id, delta).Scan(&units)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("update stock: %w", err)
	}
	return units, nil
}

// UpdateStockLevel fija el porcentaje restante de la botella abierta.
func (r *ItemRepo) UpdateStockLevel(ctx context.Context, stream entity.Stream, id string, level int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET stock_level = $3, updated_at = now() WHERE stream = $1 AND id = $2`,
		stream, id, level,
	)
	if err != nil {
		return fmt.Errorf("update stock level: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendOrderEvent agrega un timestamp al historial de reposición.
func (r *ItemRepo) AppendOrderEvent(ctx context.Context, stream entity.Stream, id string, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET order_history = array_append(order_history, $3), updated_at = now()
		 WHERE stream = $1 AND id = $2`,
		stream, id, at,
	)
	if err != nil {
		return fmt.Errorf("append order event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceDailyStats sobrescribe la serie diaria completa del item.
func (r *ItemRepo) ReplaceDailyStats(ctx context.Context, stream entity.Stream, id string, stats []entity.DailyStat) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET daily_stats = $3, updated_at = now() WHERE stream = $1 AND id = $2`,
		stream, id, stats,
	)
	if err != nil {
		return fmt.Errorf("replace daily stats: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el item del stream.
func (r *ItemRepo) Delete(ctx context.Context, stream entity.Stream, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM items WHERE stream = $1 AND id = $2`, stream, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	item, err := r.scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *ItemRepo) scanItem(row pgx.Row) (*entity.Item, error) {
	var item entity.Item
	err := row.Scan(
		&item.ID, &item.Stream, &item.Kind, &item.Name, &item.Tags, &item.SalesTalk,
		&item.Country, &item.Region, &item.Vintage, &item.Grape,
		&item.Rank, &item.PairingHint, &item.AxisX, &item.AxisY, &item.PriceCost, &item.PriceSell,
		&item.StockUnits, &item.StockLevel, &item.OrderQty, &item.ImageURL, &item.OrderHistory, &item.DailyStats,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &item, nil
}
