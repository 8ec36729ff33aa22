package usecase

import (
	"context"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// TxRunner ejecuta un callback con un repositorio de items atado a una
// transacción: o entra todo el lote o no entra nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(items repository.ItemRepository) error) error
}

// ReportPDFGenerator renderiza un reporte diario como documento PDF.
type ReportPDFGenerator interface {
	Generate(report *entity.DailyReport) ([]byte, error)
}
