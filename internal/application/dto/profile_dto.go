package dto

import (
	"github.com/tu-usuario/cellar-pro/internal/domain/analysis"
	"github.com/tu-usuario/cellar-pro/internal/domain/tasting"
	"github.com/tu-usuario/cellar-pro/internal/domain/trivia"
)

// HistoryResponse cadencia de reposición lista para mostrar. LastOrder y Cycle
// son etiquetas en japonés; las cifras crudas van en los campos numéricos.
type HistoryResponse struct {
	Total     int                   `json:"total"`
	LastOrder string                `json:"last_order"` // "今日" / "N日前" / "なし"
	Cycle     string                `json:"cycle"`      // "平均N日" / "算出中" / "データなし"
	Monthly   []analysis.MonthBucket `json:"monthly"`
}

// ProfileResponse perfil completo de un item: clasificación de sabor,
// maridajes, notas de conocimiento y cadencia de pedidos.
type ProfileResponse struct {
	ItemID   string            `json:"item_id"`
	Type     tasting.Info      `json:"type_info"`
	Pairings []tasting.Pairing `json:"roles"`
	Trivia   []trivia.Note     `json:"trivia"`
	History  HistoryResponse   `json:"history"`
}
