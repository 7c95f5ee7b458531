package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alset-systems/erp-api/internal/application/analytics"
)

// AnalyticsHandler maneja las peticiones HTTP de analíticas.
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      KPIs del tablero
// @Tags         analytics
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), c.QueryInt("days", 30))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Analíticas del negocio
// @Description  Rankings y márgenes sobre ventas cerradas, más el indicador de salud.
// @Tags         analytics
// @Produce      json
// @Param        from  query  string  false  "Desde YYYY-MM-DD"
// @Param        to    query  string  false  "Hasta YYYY-MM-DD"
// @Success      200  {object}  dto.AnalyticsSummaryResponse
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
