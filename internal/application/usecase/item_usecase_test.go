package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func newItemUC() (*ItemUseCase, *fakeItemRepo, *fakeImageRepo) {
	repo := newFakeItemRepo()
	images := newFakeImageRepo()
	uc := NewItemUseCase(repo, images)
	uc.now = fixedClock("2026-08-30T12:00:00Z")
	return uc, repo, images
}

func TestItemCreate_AplicaDefaults(t *testing.T) {
	uc, _, _ := newItemUC()
	ctx := context.Background()

	resp, err := uc.Create(ctx, entity.StreamSake, dto.CreateItemRequest{
		Kind: entity.KindSake,
		Name: "田酒 特別純米",
		Tags: []string{"純米"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 50, resp.AxisX, "punto medio del mapa de sabor")
	assert.Equal(t, 50, resp.AxisY)
	assert.Equal(t, 100, resp.StockLevel, "sin abrir")
	assert.Equal(t, 0, resp.StockUnits)
}

// El nivel de botella solo aplica a sake y wine; en los demás streams el valor
// del caller se ignora para que el item no quede con un nivel incorregible.
func TestItemCreate_NivelSoloDondeAplica(t *testing.T) {
	uc, _, _ := newItemUC()
	ctx := context.Background()
	nivel := 50

	estante, err := uc.Create(ctx, entity.StreamShelf, dto.CreateItemRequest{
		Kind:       entity.KindGenericGood,
		Name:       "割り箸",
		StockLevel: &nivel,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, estante.StockLevel, "shelf no maneja nivel")

	vino, err := uc.Create(ctx, entity.StreamWine, dto.CreateItemRequest{
		Kind:       entity.KindWineRed,
		Name:       "シャトー・メルロー",
		StockLevel: &nivel,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, vino.StockLevel)
}

func TestItemCreate_NombreDuplicado(t *testing.T) {
	uc, _, _ := newItemUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, entity.StreamSake, dto.CreateItemRequest{Kind: entity.KindSake, Name: "田酒"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, entity.StreamSake, dto.CreateItemRequest{Kind: entity.KindSake, Name: "田酒"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El mismo nombre en otro stream sí es válido.
	_, err = uc.Create(ctx, entity.StreamOther, dto.CreateItemRequest{Kind: entity.KindOtherBeverage, Name: "田酒"})
	assert.NoError(t, err)
}

func TestItemCreate_StreamDesconocido(t *testing.T) {
	uc, _, _ := newItemUC()
	_, err := uc.Create(context.Background(), entity.Stream("freezer"), dto.CreateItemRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrUnknownStream)
}

// El stock se mueve de a una unidad y nunca baja de cero.
func TestItemAdjustStock_PisoEnCero(t *testing.T) {
	uc, repo, _ := newItemUC()
	ctx := context.Background()
	seedItem(t, repo, entity.StreamSake, "a", "銘柄A", 1, 100, 3000)

	resp, err := uc.AdjustStock(ctx, entity.StreamSake, "a", dto.StockActionRequest{Delta: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockUnits)

	resp, err = uc.AdjustStock(ctx, entity.StreamSake, "a", dto.StockActionRequest{Delta: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockUnits, "el piso es cero, no es error")

	_, err = uc.AdjustStock(ctx, entity.StreamSake, "a", dto.StockActionRequest{Delta: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo ±1")
}

// El nivel de botella abierta solo existe en sake y vino.
func TestItemSetLevel_SoloStreamsConNivel(t *testing.T) {
	uc, repo, _ := newItemUC()
	ctx := context.Background()
	seedItem(t, repo, entity.StreamSake, "a", "銘柄A", 1, 100, 3000)

	require.NoError(t, uc.SetLevel(ctx, entity.StreamSake, "a", dto.LevelRequest{Level: 40}))
	item, err := repo.GetByID(ctx, entity.StreamSake, "a")
	require.NoError(t, err)
	assert.Equal(t, 40, item.StockLevel)

	err = uc.SetLevel(ctx, entity.StreamShelf, "a", dto.LevelRequest{Level: 40})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemAddReplenishment_ConRetroData(t *testing.T) {
	uc, repo, _ := newItemUC()
	ctx := context.Background()
	seedItem(t, repo, entity.StreamSake, "a", "銘柄A", 1, 100, 3000)

	require.NoError(t, uc.AddReplenishment(ctx, entity.StreamSake, "a", dto.ReplenishmentRequest{}))

	backdate := ts(t, "2026-08-01T10:00:00Z")
	require.NoError(t, uc.AddReplenishment(ctx, entity.StreamSake, "a", dto.ReplenishmentRequest{At: &backdate}))

	item, err := repo.GetByID(ctx, entity.StreamSake, "a")
	require.NoError(t, err)
	require.Len(t, item.OrderHistory, 2)
	assert.Equal(t, ts(t, "2026-08-30T12:00:00Z"), item.OrderHistory[0], "sin At usa el reloj del servidor")
	assert.Equal(t, backdate, item.OrderHistory[1])
}

// La caché lateral de imágenes pisa la URL propia del item en los listados.
func TestItemList_CacheDeImagenesGana(t *testing.T) {
	uc, repo, images := newItemUC()
	ctx := context.Background()
	seedItem(t, repo, entity.StreamSake, "a", "銘柄A", 2, 100, 3000)
	seedItem(t, repo, entity.StreamSake, "b", "銘柄B", 1, 100, 2000)
	require.NoError(t, images.Put(ctx, entity.StreamSake, "a", "https://cdn.example.com/a.webp"))

	list, err := uc.List(ctx, entity.StreamSake)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "https://cdn.example.com/a.webp", list.Items[0].ImageURL)
	assert.Empty(t, list.Items[1].ImageURL)
	// 2×3000 + 1×2000
	assert.True(t, list.TotalAssets.Equal(decimal.NewFromInt(8000)), "obtuvo %s", list.TotalAssets)
}

func TestItemPutImage_ExigeItemExistente(t *testing.T) {
	uc, _, _ := newItemUC()
	err := uc.PutImage(context.Background(), entity.StreamSake, "nope", "https://cdn.example.com/x.webp")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUpdate_CambiosParciales(t *testing.T) {
	uc, repo, _ := newItemUC()
	ctx := context.Background()
	seedItem(t, repo, entity.StreamWine, "w", "シャトーA", 3, 100, 8000)

	rank := "Matsu"
	grape := "Pinot Noir"
	resp, err := uc.Update(ctx, entity.StreamWine, "w", dto.UpdateItemRequest{Rank: &rank, Grape: &grape})
	require.NoError(t, err)
	assert.Equal(t, "Matsu", resp.Rank)
	assert.Equal(t, "Pinot Noir", resp.Grape)
	assert.Equal(t, "シャトーA", resp.Name, "los campos ausentes no cambian")
	assert.Equal(t, 3, resp.StockUnits, "el stock no se toca por Update")
}

func TestItemDelete(t *testing.T) {
	uc, repo, _ := newItemUC()
	ctx := context.Background()
	seedItem(t, repo, entity.StreamSake, "a", "銘柄A", 1, 100, 3000)

	require.NoError(t, uc.Delete(ctx, entity.StreamSake, "a"))
	_, err := repo.GetByID(ctx, entity.StreamSake, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, entity.StreamSake, "a"), domain.ErrNotFound)
}
