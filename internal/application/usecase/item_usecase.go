package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/report"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD y de stock para los items de un stream.
type ItemUseCase struct {
	repo   repository.ItemRepository
	images repository.ImageRepository
	now    func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, images repository.ImageRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, images: images, now: time.Now}
}

// List devuelve todos los items del stream con el valor total de inventario.
// La caché lateral de imágenes tiene prioridad sobre la URL propia del item.
func (uc *ItemUseCase) List(ctx context.Context, stream entity.Stream) (*dto.ItemListResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	items, err := uc.repo.ListByStream(ctx, stream)
	if err != nil {
		return nil, err
	}
	cache, err := uc.images.GetAll(ctx, stream)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{
		Items:       make([]dto.ItemResponse, 0, len(items)),
		TotalAssets: report.TotalAssets(items),
	}
	for _, item := range items {
		if url, ok := cache[item.ID]; ok && url != "" {
			item.ImageURL = url
		}
		out.Items = append(out.Items, toItemResponse(item))
	}
	return out, nil
}

// GetByID obtiene un item del stream.
func (uc *ItemUseCase) GetByID(ctx context.Context, stream entity.Stream, id string) (*dto.ItemResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	item, err := uc.repo.GetByID(ctx, stream, id)
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Create crea un item nuevo en el stream. Nombres duplicados se rechazan.
func (uc *ItemUseCase) Create(ctx context.Context, stream entity.Stream, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	existing, err := uc.repo.GetByName(ctx, stream, in.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	item := newItemFromRequest(stream, in, uc.now())
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update aplica cambios parciales; stock y nivel tienen sus propias operaciones.
func (uc *ItemUseCase) Update(ctx context.Context, stream entity.Stream, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	item, err := uc.repo.GetByID(ctx, stream, id)
	if err != nil {
		return nil, err
	}
	applyItemUpdate(item, in)
	item.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Delete elimina el item del stream.
func (uc *ItemUseCase) Delete(ctx context.Context, stream entity.Stream, id string) error {
	if !stream.Valid() {
		return domain.ErrUnknownStream
	}
	return uc.repo.Delete(ctx, stream, id)
}

// AdjustStock mueve las unidades cerradas de a una, con piso en cero.
func (uc *ItemUseCase) AdjustStock(ctx context.Context, stream entity.Stream, id string, in dto.StockActionRequest) (*dto.StockResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	if in.Delta != 1 && in.Delta != -1 {
		return nil, domain.ErrInvalidInput
	}
	units, err := uc.repo.UpdateStock(ctx, stream, id, in.Delta)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ID: id, StockUnits: units}, nil
}

// SetLevel fija el porcentaje restante de la botella abierta. Solo tiene
// sentido en los streams que manejan nivel (sake y vino).
func (uc *ItemUseCase) SetLevel(ctx context.Context, stream entity.Stream, id string, in dto.LevelRequest) error {
	if !stream.Valid() {
		return domain.ErrUnknownStream
	}
	if !stream.TracksLevel() {
		return domain.ErrInvalidInput
	}
	if in.Level < 0 || in.Level > 100 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStockLevel(ctx, stream, id, in.Level)
}

// AddReplenishment registra un evento de reposición; At permite retro-datar.
func (uc *ItemUseCase) AddReplenishment(ctx context.Context, stream entity.Stream, id string, in dto.ReplenishmentRequest) error {
	if !stream.Valid() {
		return domain.ErrUnknownStream
	}
	at := uc.now()
	if in.At != nil {
		at = *in.At
	}
	return uc.repo.AppendOrderEvent(ctx, stream, id, at)
}

// PutImage registra la URL de imagen del item en la caché lateral del stream.
func (uc *ItemUseCase) PutImage(ctx context.Context, stream entity.Stream, id, url string) error {
	if !stream.Valid() {
		return domain.ErrUnknownStream
	}
	if url == "" {
		return domain.ErrInvalidInput
	}
	if _, err := uc.repo.GetByID(ctx, stream, id); err != nil {
		return err
	}
	return uc.images.Put(ctx, stream, id, url)
}

// ListImages devuelve la caché de imágenes del stream (itemID -> URL).
func (uc *ItemUseCase) ListImages(ctx context.Context, stream entity.Stream) (map[string]string, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	return uc.images.GetAll(ctx, stream)
}

func newItemFromRequest(stream entity.Stream, in dto.CreateItemRequest, now time.Time) *entity.Item {
	item := &entity.Item{
		ID:          uuid.New().String(),
		Stream:      stream,
		Kind:        in.Kind,
		Name:        in.Name,
		Tags:        in.Tags,
		SalesTalk:   in.SalesTalk,
		Country:     in.Country,
		Region:      in.Region,
		Vintage:     in.Vintage,
		Grape:       in.Grape,
		Rank:        in.Rank,
		PairingHint: in.PairingHint,
		AxisX:       50,
		AxisY:       50,
		PriceCost:   in.PriceCost,
		PriceSell:   in.PriceSell,
		StockUnits:  in.StockUnits,
		StockLevel:  100,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.AxisX != nil {
		item.AxisX = *in.AxisX
	}
	if in.AxisY != nil {
		item.AxisY = *in.AxisY
	}
	// El nivel de botella solo existe donde el stream lo maneja; en el resto
	// se ignora el valor del caller para no dejar estado inalcanzable.
	if in.StockLevel != nil && stream.TracksLevel() {
		item.StockLevel = *in.StockLevel
	}
	return item
}

func applyItemUpdate(item *entity.Item, in dto.UpdateItemRequest) {
	if in.Kind != nil {
		item.Kind = *in.Kind
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Tags != nil {
		item.Tags = in.Tags
	}
	if in.SalesTalk != nil {
		item.SalesTalk = *in.SalesTalk
	}
	if in.Country != nil {
		item.Country = *in.Country
	}
	if in.Region != nil {
		item.Region = *in.Region
	}
	if in.Vintage != nil {
		item.Vintage = *in.Vintage
	}
	if in.Grape != nil {
		item.Grape = *in.Grape
	}
	if in.Rank != nil {
		item.Rank = *in.Rank
	}
	if in.PairingHint != nil {
		item.PairingHint = *in.PairingHint
	}
	if in.AxisX != nil {
		item.AxisX = *in.AxisX
	}
	if in.AxisY != nil {
		item.AxisY = *in.AxisY
	}
	if in.PriceCost != nil {
		item.PriceCost = *in.PriceCost
	}
	if in.PriceSell != nil {
		item.PriceSell = *in.PriceSell
	}
	if in.OrderQty != nil {
		item.OrderQty = *in.OrderQty
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
}

func toItemResponse(item *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          item.ID,
		Stream:      string(item.Stream),
		Kind:        item.Kind,
		Name:        item.Name,
		Tags:        item.Tags,
		SalesTalk:   item.SalesTalk,
		Country:     item.Country,
		Region:      item.Region,
		Vintage:     item.Vintage,
		Grape:       item.Grape,
		Rank:        item.Rank,
		PairingHint: item.PairingHint,
		AxisX:       item.AxisX,
		AxisY:       item.AxisY,
		PriceCost:   item.PriceCost,
		PriceSell:   item.PriceSell,
		StockUnits:  item.StockUnits,
		StockLevel:  item.StockLevel,
		OrderQty:    item.OrderQty,
		ImageURL:    item.ImageURL,
		AssetValue:  item.AssetValue(),
		DailyStats:  item.DailyStats,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
