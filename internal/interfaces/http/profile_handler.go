package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
)

// ProfileHandler maneja la consulta del perfil de venta de un item.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile godoc
// @Summary      Perfil de venta del item
// @Description  Clasificación de sabor, maridajes sugeridos, notas de conocimiento y cadencia de reposición.
// @Tags         profile
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        id      path  string  true  "ID del item"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/items/{id}/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Context(), streamParam(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
