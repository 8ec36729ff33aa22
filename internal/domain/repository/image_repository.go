package repository

import (
	"context"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// ImageRepository define el puerto de la caché lateral de imágenes por stream.
// Guarda solo URLs (strings); la subida de binarios queda fuera del sistema.
type ImageRepository interface {
	// GetAll devuelve el mapa itemID -> URL del stream. Mapa vacío si no hay nada.
	GetAll(ctx context.Context, stream entity.Stream) (map[string]string, error)
	Put(ctx context.Context, stream entity.Stream, itemID, url string) error
}
