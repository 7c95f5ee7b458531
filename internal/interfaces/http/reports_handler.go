package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alset-systems/erp-api/internal/application/reports"
)

// ReportsHandler maneja las peticiones HTTP de reportes.
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Build godoc
// @Summary      Generar reporte
// @Tags         reports
// @Produce      json
// @Param        type  path   string  true   "sales | inventory | movements | invoices | payroll"
// @Param        from  query  string  false  "Desde YYYY-MM-DD"
// @Param        to    query  string  false  "Hasta YYYY-MM-DD"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{type} [get]
func (h *ReportsHandler) Build(c *fiber.Ctx) error {
	out, err := h.uc.Build(c.UserContext(), c.Params("type"), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CSV godoc
// @Summary      Descargar reporte en CSV
// @Tags         reports
// @Produce      text/csv
// @Param        type  path   string  true   "sales | inventory | movements | invoices | payroll"
// @Param        from  query  string  false  "Desde YYYY-MM-DD"
// @Param        to    query  string  false  "Hasta YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{type}/csv [get]
func (h *ReportsHandler) CSV(c *fiber.Ctx) error {
	data, filename, err := h.uc.CSV(c.UserContext(), c.Params("type"), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
