package dto

// CheckRequest body para check-in y check-out de asistencia.
// Date vacío = hoy.
type CheckRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date"`
}

// AttendanceResponse registro de asistencia con el empleado resuelto.
type AttendanceResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out,omitempty"`
	LateMinutes  int    `json:"late_minutes"`
}

// AttendanceSummaryResponse resumen del día.
type AttendanceSummaryResponse struct {
	Date    string `json:"date"`
	Records int    `json:"records"`
	Late    int    `json:"late"`    // registros con minutos tarde > 0
	Open    int    `json:"open"`    // sin check-out
}
