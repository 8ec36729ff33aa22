package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC    *usecase.ItemUseCase
	ImportUC  *usecase.ImportUseCase
	ProfileUC *usecase.ProfileUseCase
	ReportUC  *usecase.ReportUseCase
}

// Router registra las rutas de la API. Todas las colecciones cuelgan del
// stream: /api/streams/:stream/...
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	stream := api.Group("/streams/:stream")

	// Items
	items := stream.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.ImportUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Post("/import", itemHandler.Import)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/stock", itemHandler.AdjustStock)
	items.Put("/:id/level", itemHandler.SetLevel)
	items.Post("/:id/replenishments", itemHandler.AddReplenishment)

	// Perfil de venta (clasificación + maridajes + notas + cadencia)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	items.Get("/:id/profile", profileHandler.GetProfile)

	// Caché lateral de imágenes
	images := stream.Group("/images")
	images.Get("/", itemHandler.ListImages)
	images.Put("/:itemID", itemHandler.PutImage)

	// Reportes diarios
	reports := stream.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/", reportHandler.Save)
	reports.Get("/", reportHandler.ListRecent)
	reports.Get("/text", reportHandler.Text)
	reports.Get("/:dateKey/pdf", reportHandler.PDF)
}
