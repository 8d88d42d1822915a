package handlers

import (
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/types"
	"gorm.io/datatypes"
)

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(types.DateLayout)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toEmployeeResponse(e *models.Employee) types.EmployeeResponse {
	return types.EmployeeResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		FullName:    e.FullName,
		Department:  e.Department,
		Designation: e.Designation,
		Phone:       e.Phone,
		Address:     e.Address,
	}
}

func toAttendanceResponses(records []models.Attendance) []types.AttendanceResponse {
	response := make([]types.AttendanceResponse, 0, len(records))

	for _, r := range records {
		response = append(response, types.AttendanceResponse{
			ID:             r.ID,
			EmployeeID:     r.EmployeeID,
			AttendanceDate: formatDate(r.AttendanceDate),
			CheckIn:        formatTime(r.CheckIn),
			CheckOut:       formatTime(r.CheckOut),
			WorkMinutes:    r.WorkMinutes,
		})
	}

	return response
}

func toLeaveResponses(leaves []models.LeaveRequest) []types.LeaveResponse {
	response := make([]types.LeaveResponse, 0, len(leaves))

	for _, l := range leaves {
		response = append(response, types.LeaveResponse{
			ID:         l.ID,
			EmployeeID: l.EmployeeID,
			LeaveType:  l.LeaveType,
			StartDate:  formatDate(l.StartDate),
			EndDate:    formatDate(l.EndDate),
			Reason:     l.Reason,
			Status:     l.Status,
			AppliedOn:  formatDate(l.AppliedOn),
		})
	}

	return response
}

func toPayrollResponse(p *models.Payroll) types.PayrollResponse {
	return types.PayrollResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		Month:        p.Month,
		Year:         p.Year,
		PresentDays:  p.PresentDays,
		TotalDays:    p.TotalDays,
		BaseSalary:   p.BaseSalary.InexactFloat64(),
		SalaryAmount: p.SalaryAmount.InexactFloat64(),
		Status:       p.Status,
	}
}

func toPayrollResponses(payrolls []models.Payroll) []types.PayrollResponse {
	response := make([]types.PayrollResponse, 0, len(payrolls))

	for i := range payrolls {
		response = append(response, toPayrollResponse(&payrolls[i]))
	}

	return response
}
