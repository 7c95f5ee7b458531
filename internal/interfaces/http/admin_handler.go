package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/alset-systems/erp-api/internal/application/backup"
	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/settings"
)

// AdminHandler maneja la configuración del negocio y los respaldos.
type AdminHandler struct {
	settings *settings.UseCase
	backup   *backup.UseCase
	validate *validator.Validate
}

// NewAdminHandler construye el handler.
func NewAdminHandler(settingsUC *settings.UseCase, backupUC *backup.UseCase) *AdminHandler {
	return &AdminHandler{settings: settingsUC, backup: backupUC, validate: validator.New()}
}

// GetSettings godoc
// @Summary      Configuración vigente
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.settings.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Actualizar configuración
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "Configuración"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.settings.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar respaldo del negocio
// @Tags         backup
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/backup/export [get]
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	data, err := h.backup.Export(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respaldo.json"`)
	return c.Send(data)
}

// Import godoc
// @Summary      Importar respaldo del negocio
// @Description  Reemplaza el documento completo; las secciones ausentes del
// @Description  respaldo quedan en su valor por defecto.
// @Tags         backup
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	if err := h.backup.Import(c.UserContext(), c.Body()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
