package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// CreateItemRequest entrada para crear un item en un stream.
type CreateItemRequest struct {
	Kind      entity.Kind `json:"kind" validate:"required"`
	Name      string      `json:"name" validate:"required,min=1,max=200"`
	Tags      []string    `json:"tags"`
	SalesTalk string      `json:"sales_talk"`

	Country string `json:"country"`
	Region  string `json:"region"`
	Vintage string `json:"vintage"`
	Grape   string `json:"grape"`

	Rank        string `json:"rank" validate:"omitempty,oneof=Matsu Take Ume"`
	PairingHint string `json:"pairing_hint"`

	// nil = punto medio del mapa de sabor (50).
	AxisX *int `json:"axis_x" validate:"omitempty,min=0,max=100"`
	AxisY *int `json:"axis_y" validate:"omitempty,min=0,max=100"`

	PriceCost decimal.Decimal `json:"price_cost"`
	PriceSell decimal.Decimal `json:"price_sell"`

	StockUnits int  `json:"stock_units" validate:"min=0"`
	StockLevel *int `json:"stock_level" validate:"omitempty,min=0,max=100"` // nil = 100 (sin abrir)

	ImageURL string `json:"image_url"`
}

// UpdateItemRequest entrada para actualizar un item; solo los campos presentes cambian.
// El stock y el nivel tienen sus propias operaciones.
type UpdateItemRequest struct {
	Kind      *entity.Kind `json:"kind"`
	Name      *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Tags      []string     `json:"tags"`
	SalesTalk *string      `json:"sales_talk"`

	Country *string `json:"country"`
	Region  *string `json:"region"`
	Vintage *string `json:"vintage"`
	Grape   *string `json:"grape"`

	Rank        *string `json:"rank" validate:"omitempty,oneof=Matsu Take Ume"`
	PairingHint *string `json:"pairing_hint"`

	AxisX *int `json:"axis_x" validate:"omitempty,min=0,max=100"`
	AxisY *int `json:"axis_y" validate:"omitempty,min=0,max=100"`

	PriceCost *decimal.Decimal `json:"price_cost"`
	PriceSell *decimal.Decimal `json:"price_sell"`

	OrderQty *int `json:"order_qty" validate:"omitempty,min=0"`

	ImageURL *string `json:"image_url"`
}

// StockActionRequest ajusta unidades cerradas de a una (+1 entrada, -1 salida).
type StockActionRequest struct {
	Delta int `json:"delta" validate:"required,oneof=1 -1"`
}

// LevelRequest fija el porcentaje restante de la botella abierta.
type LevelRequest struct {
	Level int `json:"level" validate:"min=0,max=100"`
}

// ReplenishmentRequest registra un evento de reposición. At permite retro-datar;
// nil usa la hora del servidor.
type ReplenishmentRequest struct {
	At *time.Time `json:"at"`
}

// ImportItemsRequest carga masiva de items en un stream.
type ImportItemsRequest struct {
	Items []CreateItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ImportItemsResponse resultado de la carga masiva.
type ImportItemsResponse struct {
	Created int      `json:"created"`
	Skipped []string `json:"skipped,omitempty"` // nombres ya existentes en el stream
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID        string      `json:"id"`
	Stream    string      `json:"stream"`
	Kind      entity.Kind `json:"kind"`
	Name      string      `json:"name"`
	Tags      []string    `json:"tags"`
	SalesTalk string      `json:"sales_talk,omitempty"`

	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	Vintage string `json:"vintage,omitempty"`
	Grape   string `json:"grape,omitempty"`

	Rank        string `json:"rank,omitempty"`
	PairingHint string `json:"pairing_hint,omitempty"`

	AxisX int `json:"axis_x"`
	AxisY int `json:"axis_y"`

	PriceCost decimal.Decimal `json:"price_cost"`
	PriceSell decimal.Decimal `json:"price_sell"`

	StockUnits int `json:"stock_units"`
	StockLevel int `json:"stock_level"`
	OrderQty   int `json:"order_qty"`

	ImageURL   string          `json:"image_url,omitempty"`
	AssetValue decimal.Decimal `json:"asset_value"`

	DailyStats []entity.DailyStat `json:"daily_stats,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemListResponse listado completo de un stream con su valor de inventario.
type ItemListResponse struct {
	Items       []ItemResponse  `json:"items"`
	TotalAssets decimal.Decimal `json:"total_assets"`
}

// StockResponse salida de un ajuste de stock.
type StockResponse struct {
	ID         string `json:"id"`
	StockUnits int    `json:"stock_units"`
}
