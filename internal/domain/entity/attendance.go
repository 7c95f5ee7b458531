package entity

// AttendanceRecord registra el check-in/check-out de un empleado en una fecha.
// Un empleado tiene a lo más un registro por fecha. CheckOut vacío = jornada
// abierta. LateMinutes se calcula contra la hora límite de entrada (09:05).
type AttendanceRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	EmployeeID  string `json:"employee_id"`
	CheckIn     string `json:"check_in"`            // HH:MM
	CheckOut    string `json:"check_out,omitempty"` // HH:MM
	LateMinutes int    `json:"late_minutes"`
}
