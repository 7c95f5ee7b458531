package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/alset-systems/erp-api/internal/application/attendance"
	"github.com/alset-systems/erp-api/internal/application/dto"
)

// AttendanceHandler maneja las peticiones HTTP de asistencia.
type AttendanceHandler struct {
	uc       *attendance.UseCase
	validate *validator.Validate
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, validate: validator.New()}
}

// CheckIn godoc
// @Summary      Registrar entrada
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckRequest  true  "Empleado y fecha (vacía = hoy)"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      409   {object}  dto.ErrorResponse  "Ya existe registro del día"
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CheckIn(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Registrar salida
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckRequest  true  "Empleado y fecha (vacía = hoy)"
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      404   {object}  dto.ErrorResponse  "Sin check-in previo"
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var in dto.CheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CheckOut(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de asistencia
// @Tags         attendance
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar asistencia de una fecha
// @Tags         attendance
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (vacía = hoy)"
// @Success      200  {array}  dto.AttendanceResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de asistencia de una fecha
// @Tags         attendance
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (vacía = hoy)"
// @Success      200  {object}  dto.AttendanceSummaryResponse
// @Router       /api/attendance/summary [get]
func (h *AttendanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.DailySummary(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
