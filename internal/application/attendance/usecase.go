// Package attendance registra la asistencia diaria de los empleados.
// Un empleado tiene a lo más un registro por fecha; la entrada después de la
// hora límite (09:05) acumula minutos de retardo.
package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// Hora límite de entrada sin retardo.
const (
	CutoffHour   = 9
	CutoffMinute = 5
)

// UseCase registro de asistencia. now es inyectable para las pruebas.
type UseCase struct {
	ledger storage.Ledger
	now    func() time.Time
}

// NewUseCase construye el caso de uso con el reloj del sistema.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger, now: time.Now}
}

// NewUseCaseWithClock construye el caso de uso con un reloj fijo (pruebas).
func NewUseCaseWithClock(ledger storage.Ledger, now func() time.Time) *UseCase {
	return &UseCase{ledger: ledger, now: now}
}

// CheckIn registra la entrada del empleado en la fecha indicada (vacía = hoy).
// Un segundo check-in el mismo día es ErrDuplicate.
func (uc *UseCase) CheckIn(ctx context.Context, in dto.CheckRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	date := in.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	var out dto.AttendanceResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		if ds.EmployeeByID(in.EmployeeID) == nil {
			return domain.ErrNotFound
		}
		if recordFor(ds, in.EmployeeID, date) != nil {
			return domain.ErrDuplicate
		}
		rec := entity.AttendanceRecord{
			ID:          uuid.New().String(),
			Date:        date,
			EmployeeID:  in.EmployeeID,
			CheckIn:     now.Format("15:04"),
			LateMinutes: lateMinutes(now),
		}
		ds.Attendance = append(ds.Attendance, rec)
		out = response(ds, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckOut cierra la jornada del empleado en la fecha indicada (vacía = hoy).
// Sin check-in previo es ErrNotFound; la jornada ya cerrada es ErrInvalidState.
func (uc *UseCase) CheckOut(ctx context.Context, in dto.CheckRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	date := in.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	var out dto.AttendanceResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		rec := recordFor(ds, in.EmployeeID, date)
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.CheckOut != "" {
			return domain.ErrInvalidState
		}
		rec.CheckOut = now.Format("15:04")
		out = response(ds, *rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un registro de asistencia por id.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Attendance {
			if ds.Attendance[i].ID == id {
				ds.Attendance = append(ds.Attendance[:i], ds.Attendance[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// List devuelve los registros de una fecha (vacía = hoy).
func (uc *UseCase) List(ctx context.Context, date string) ([]dto.AttendanceResponse, error) {
	if date == "" {
		date = uc.now().Format("2006-01-02")
	}
	out := []dto.AttendanceResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		for _, rec := range ds.Attendance {
			if rec.Date != date {
				continue
			}
			out = append(out, response(ds, rec))
		}
		return nil
	})
	return out, err
}

// DailySummary resume la fecha: registros, retardos y jornadas abiertas.
func (uc *UseCase) DailySummary(ctx context.Context, date string) (*dto.AttendanceSummaryResponse, error) {
	if date == "" {
		date = uc.now().Format("2006-01-02")
	}
	out := dto.AttendanceSummaryResponse{Date: date}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		for _, rec := range ds.Attendance {
			if rec.Date != date {
				continue
			}
			out.Records++
			if rec.LateMinutes > 0 {
				out.Late++
			}
			if rec.CheckOut == "" {
				out.Open++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// lateMinutes minutos después de la hora límite; 0 si llegó a tiempo.
func lateMinutes(now time.Time) int {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), CutoffHour, CutoffMinute, 0, 0, now.Location())
	if !now.After(cutoff) {
		return 0
	}
	return int(now.Sub(cutoff) / time.Minute)
}

func recordFor(ds *entity.Dataset, employeeID, date string) *entity.AttendanceRecord {
	for i := range ds.Attendance {
		if ds.Attendance[i].EmployeeID == employeeID && ds.Attendance[i].Date == date {
			return &ds.Attendance[i]
		}
	}
	return nil
}

func response(ds *entity.Dataset, rec entity.AttendanceRecord) dto.AttendanceResponse {
	name := "—"
	if emp := ds.EmployeeByID(rec.EmployeeID); emp != nil {
		name = emp.Name
	}
	return dto.AttendanceResponse{
		ID:           rec.ID,
		Date:         rec.Date,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: name,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		LateMinutes:  rec.LateMinutes,
	}
}
