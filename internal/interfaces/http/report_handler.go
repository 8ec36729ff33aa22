package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
)

// ReportHandler maneja el cierre diario y las lecturas de reportes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Save godoc
// @Summary      Cerrar el día del stream
// @Description  Guarda el reporte del día (sobrescribe si ya existe) y alimenta la serie diaria de cada item.
// @Tags         reports
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/reports [post]
func (h *ReportHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.Context(), streamParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListRecent godoc
// @Summary      Reportes recientes del stream
// @Tags         reports
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Param        limit   query  int  false  "Cantidad máxima"  default(10)
// @Success      200  {object}  dto.ReportListResponse
// @Router       /api/streams/{stream}/reports [get]
func (h *ReportHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.Context(), streamParam(c), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Text godoc
// @Summary      Parte de stock en texto plano
// @Description  Snapshot en vivo del stock, listo para copiar al chat del equipo.
// @Tags         reports
// @Produce      json
// @Param        stream  path  string  true  "Stream"
// @Success      200  {object}  dto.TextReportResponse
// @Router       /api/streams/{stream}/reports/text [get]
func (h *ReportHandler) Text(c *fiber.Ctx) error {
	out, err := h.uc.Text(c.Context(), streamParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte de un día en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        stream   path  string  true  "Stream"
// @Param        dateKey  path  string  true  "Día (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/streams/{stream}/reports/{dateKey}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PDF(c.Context(), streamParam(c), c.Params("dateKey"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
