package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// streamParam extrae el stream de la ruta; la validación ocurre en el use case.
func streamParam(c *fiber.Ctx) entity.Stream {
	return entity.Stream(c.Params("stream"))
}

// respondError mapea los errores sentinela del dominio a códigos HTTP.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnknownStream):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_STREAM", Message: "stream desconocido"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya existe en este stream"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// ItemHandler maneja las peticiones HTTP de items e imágenes.
type ItemHandler struct {
	uc       *usecase.ItemUseCase
	importUC *usecase.ImportUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, importUC *usecase.ImportUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, importUC: importUC}
}

// List godoc
// @Summary      Listar items del stream
// @Tags         items
// @Produce      json
// @Param        stream  path  string  true  "Stream (sake|wine|other|shelf)"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), streamParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind y name son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), streamParam(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Carga masiva de items
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        body  body  dto.ImportItemsRequest  true  "Lote de items"
// @Success      200   {object}  dto.ImportItemsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/import [post]
func (h *ItemHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.importUC.Import(c.Context(), streamParam(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         items
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        id      path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), streamParam(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        id      path  string  true  "ID del item"
// @Param        body  body  dto.UpdateItemRequest  true  "Cambios parciales"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), streamParam(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         items
// @Param        stream  path  string  true  "Stream"
// @Param        id      path  string  true  "ID del item"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), streamParam(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Ajustar stock (±1, piso en 0)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        id      path  string  true  "ID del item"
// @Param        body  body  dto.StockActionRequest  true  "Delta ±1"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id}/stock [post]
func (h *ItemHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.Context(), streamParam(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetLevel godoc
// @Summary      Fijar nivel de botella abierta (0-100)
// @Tags         items
// @Accept       json
// @Param        stream  path  string  true  "Stream (solo sake|wine)"
// @Param        id      path  string  true  "ID del item"
// @Param        body  body  dto.LevelRequest  true  "Nivel restante"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id}/level [put]
func (h *ItemHandler) SetLevel(c *fiber.Ctx) error {
	var in dto.LevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetLevel(c.Context(), streamParam(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddReplenishment godoc
// @Summary      Registrar evento de reposición
// @Tags         items
// @Accept       json
// @Param        stream  path  string  true  "Stream"
// @Param        id      path  string  true  "ID del item"
// @Param        body  body  dto.ReplenishmentRequest  false  "At opcional para retro-datar"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id}/replenishments [post]
func (h *ItemHandler) AddReplenishment(c *fiber.Ctx) error {
	var in dto.ReplenishmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.AddReplenishment(c.Context(), streamParam(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListImages godoc
// @Summary      Listar caché de imágenes del stream
// @Tags         images
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Success      200  {object}  map[string]string
// @Router       /api/streams/{stream}/images [get]
func (h *ItemHandler) ListImages(c *fiber.Ctx) error {
	out, err := h.uc.ListImages(c.Context(), streamParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PutImage godoc
// @Summary      Registrar URL de imagen de un item
// @Tags         images
// @Accept       json
// @Param        stream  path  string  true  "Stream"
// @Param        itemID  path  string  true  "ID del item"
// @Param        body  body  object{url=string}  true  "URL de la imagen"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/images/{itemID} [put]
func (h *ItemHandler) PutImage(c *fiber.Ctx) error {
	var in struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.PutImage(c.Context(), streamParam(c), c.Params("itemID"), in.URL); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
