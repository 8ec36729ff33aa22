package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// ImportUseCase carga masiva de items en un stream, en una sola transacción.
type ImportUseCase struct {
	tx  TxRunner
	now func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(tx TxRunner) *ImportUseCase {
	return &ImportUseCase{tx: tx, now: time.Now}
}

// Import crea los items del lote. Los nombres que ya existen en el stream se
// saltan (no es error); cualquier otra falla revierte el lote completo.
func (uc *ImportUseCase) Import(ctx context.Context, stream entity.Stream, in dto.ImportItemsRequest) (*dto.ImportItemsResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	out := &dto.ImportItemsResponse{}
	err := uc.tx.Run(ctx, func(items repository.ItemRepository) error {
		for _, req := range in.Items {
			if req.Name == "" {
				return domain.ErrInvalidInput
			}
			existing, err := items.GetByName(ctx, stream, req.Name)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if existing != nil {
				out.Skipped = append(out.Skipped, req.Name)
				continue
			}
			if err := items.Create(ctx, newItemFromRequest(stream, req, uc.now())); err != nil {
				return err
			}
			out.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
