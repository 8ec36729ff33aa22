package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo caché lateral de URLs de imagen por stream, sobre PostgreSQL.
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// GetAll devuelve el mapa itemID -> URL del stream.
func (r *ImageRepo) GetAll(ctx context.Context, stream entity.Stream) (map[string]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT item_id, url FROM item_images WHERE stream = $1`, stream)
	if err != nil {
		return nil, fmt.Errorf("list item images: %w", err)
	}
	defer rows.Close()

	images := make(map[string]string)
	for rows.Next() {
		var itemID, url string
		if err := rows.Scan(&itemID, &url); err != nil {
			return nil, fmt.Errorf("scan item image: %w", err)
		}
		images[itemID] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list item images: %w", err)
	}
	return images, nil
}

// Put registra o reemplaza la URL del item.
func (r *ImageRepo) Put(ctx context.Context, stream entity.Stream, itemID, url string) error {
	query := `
		INSERT INTO item_images (stream, item_id, url, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (stream, item_id)
		DO UPDATE SET url = EXCLUDED.url, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, stream, itemID, url); err != nil {
		return fmt.Errorf("put item image: %w", err)
	}
	return nil
}
