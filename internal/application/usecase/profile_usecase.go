package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/analysis"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
	"github.com/tu-usuario/cellar-pro/internal/domain/tasting"
	"github.com/tu-usuario/cellar-pro/internal/domain/trivia"
)

// ProfileUseCase arma el perfil de venta de un item: clasificación de sabor,
// maridajes sugeridos, notas de conocimiento y cadencia de reposición.
type ProfileUseCase struct {
	repo repository.ItemRepository
	now  func() time.Time
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ItemRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, now: time.Now}
}

// GetProfile clasifica el item y reúne todo lo que el personal necesita para venderlo.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, stream entity.Stream, id string) (*dto.ProfileResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	item, err := uc.repo.GetByID(ctx, stream, id)
	if err != nil {
		return nil, err
	}

	profile := tasting.BuildProfile(item)
	stats := analysis.AnalyzeHistory(uc.now(), item.OrderHistory)

	return &dto.ProfileResponse{
		ItemID:   item.ID,
		Type:     profile.Type,
		Pairings: profile.Pairings,
		Trivia:   trivia.List(item),
		History:  toHistoryResponse(stats),
	}, nil
}

func toHistoryResponse(stats analysis.Stats) dto.HistoryResponse {
	out := dto.HistoryResponse{
		Total:     stats.Total,
		LastOrder: "なし",
		Cycle:     "データなし",
		Monthly:   stats.Monthly[:],
	}
	if stats.LastOrderDays != nil {
		if *stats.LastOrderDays == 0 {
			out.LastOrder = "今日"
		} else {
			out.LastOrder = fmt.Sprintf("%d日前", *stats.LastOrderDays)
		}
		out.Cycle = "算出中"
	}
	if stats.AvgCycleDays != nil {
		out.Cycle = fmt.Sprintf("平均%d日", *stats.AvgCycleDays)
	}
	return out
}
