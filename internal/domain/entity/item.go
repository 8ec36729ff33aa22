package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind clasifica el tipo de producto. Determina qué reglas de clasificación
// de sabor aplican (ver internal/domain/tasting).
type Kind string

const (
	KindSake          Kind = "Sake"
	KindShochu        Kind = "Shochu"
	KindLiqueur       Kind = "Liqueur"
	KindWineRed       Kind = "WineRed"
	KindWineWhite     Kind = "WineWhite"
	KindWineSparkling Kind = "WineSparkling"
	KindWineRose      Kind = "WineRose"
	KindWineOrange    Kind = "WineOrange"
	KindOtherBeverage Kind = "OtherBeverage"
	KindGenericGood   Kind = "GenericGood"
)

// DailyStat es un punto de la serie diaria de un item: el stock y la cantidad
// pedida registrados al guardar el reporte de un día. A lo más una entrada por fecha.
type DailyStat struct {
	Date     string `json:"date"` // fecha localizada, ej. "2026/8/30"
	Stock    int    `json:"stock"`
	OrderQty int    `json:"order_qty"`
}

// Item representa un producto vendible de un stream de inventario.
//
// StockUnits cuenta unidades cerradas; StockLevel es el porcentaje restante (0-100)
// de la unidad abierta, 100 = sin abrir. OrderHistory acumula un timestamp por cada
// evento de reposición; no se garantiza orden, los consumidores ordenan antes de
// derivar estadísticas. DailyStats mantiene como máximo una entrada por fecha y
// está acotada a 365 entradas (ver internal/domain/report).
type Item struct {
	ID        string
	Stream    Stream
	Kind      Kind
	Name      string
	Tags      []string
	SalesTalk string // notas de venta en texto libre; señal para el clasificador

	// Metadata opcional de vino (vacía en otros streams).
	Country string
	Region  string
	Vintage string
	Grape   string

	Rank        string // rango comercial: Matsu / Take / Ume
	PairingHint string // maridaje sugerido manualmente (texto libre)

	// Posición en el mapa de sabor 2D (seco/dulce × ligero/aromático), 0-100.
	// (50,50) es el punto medio conceptual; se aplica como default al crear.
	AxisX int
	AxisY int

	PriceCost decimal.Decimal
	PriceSell decimal.Decimal

	StockUnits int
	StockLevel int // 0-100, porcentaje restante de la unidad abierta
	OrderQty   int // cantidad pendiente de pedido (snapshot en reportes)

	ImageURL string // URL de imagen propia del item; la caché lateral tiene prioridad

	OrderHistory []time.Time
	DailyStats   []DailyStat

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssetValue devuelve el valor de inventario del item: unidades cerradas a costo
// pleno más la fracción restante de la unidad abierta (solo streams con nivel).
func (i *Item) AssetValue() decimal.Decimal {
	value := i.PriceCost.Mul(decimal.NewFromInt(int64(i.StockUnits)))
	if i.Stream.TracksLevel() && i.StockLevel < 100 {
		open := i.PriceCost.Mul(decimal.NewFromInt(int64(i.StockLevel))).Div(decimal.NewFromInt(100))
		value = value.Add(open.Round(0))
	}
	return value
}

// IsWine indica si el kind corresponde a una categoría de vino.
func (k Kind) IsWine() bool {
	switch k {
	case KindWineRed, KindWineWhite, KindWineSparkling, KindWineRose, KindWineOrange:
		return true
	}
	return false
}
