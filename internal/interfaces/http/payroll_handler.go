package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/payroll"
)

// PayrollHandler maneja las peticiones HTTP de empleados y nómina.
type PayrollHandler struct {
	uc       *payroll.UseCase
	validate *validator.Validate
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.UseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc, validate: validator.New()}
}

// CreateEmployee godoc
// @Summary      Crear empleado
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *PayrollHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CreateEmployee(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmployee godoc
// @Summary      Actualizar empleado
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Empleado"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *PayrollHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.UpdateEmployee(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteEmployee godoc
// @Summary      Eliminar empleado
// @Tags         payroll
// @Param        id  path  string  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *PayrollHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEmployees godoc
// @Summary      Listar empleados
// @Tags         payroll
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *PayrollHandler) ListEmployees(c *fiber.Ctx) error {
	out, err := h.uc.ListEmployees(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Run godoc
// @Summary      Correr nómina
// @Description  Genera un recibo por empleado con la deducción global indicada.
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RunPayrollRequest  true  "Parámetros de la corrida"
// @Success      201   {array}  dto.PayslipResponse
// @Failure      409   {object}  dto.ErrorResponse  "Sin empleados"
// @Router       /api/payroll/runs [post]
func (h *PayrollHandler) Run(c *fiber.Ctx) error {
	var in dto.RunPayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Run(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayslips godoc
// @Summary      Listar recibos de nómina
// @Tags         payroll
// @Produce      json
// @Success      200  {array}  dto.PayslipResponse
// @Router       /api/payroll/payslips [get]
func (h *PayrollHandler) ListPayslips(c *fiber.Ctx) error {
	out, err := h.uc.ListPayslips(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeletePayslip godoc
// @Summary      Eliminar recibo de nómina
// @Tags         payroll
// @Param        id  path  string  true  "ID del recibo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/payslips/{id} [delete]
func (h *PayrollHandler) DeletePayslip(c *fiber.Ctx) error {
	if err := h.uc.DeletePayslip(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
