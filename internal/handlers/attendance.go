package handlers

import (
	"net/http"
	"time"

	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/dayflow-dev/dayflow/internal/utils"
	"github.com/gin-gonic/gin"
)

type SummaryQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=1,max=9999"`
}

type AttendanceHandler struct {
	Attendance *services.AttendanceService
	Employees  *services.EmployeeService
}

func dateRangeQuery(ctx *gin.Context) (services.DateRange, bool) {
	from, err := utils.GetDateQuery(ctx, "start_date")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.DateRange{}, false
	}

	to, err := utils.GetDateQuery(ctx, "end_date")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.DateRange{}, false
	}

	return services.DateRange{From: from, To: to}, true
}

// profileID resolves the caller's employee id without creating a profile.
func profileID(ctx *gin.Context, employees *services.EmployeeService) (uint, bool) {
	userID, ok := currentUser(ctx)
	if !ok {
		return 0, false
	}

	employee, err := employees.ResolveProfile(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return 0, false
	}

	return employee.ID, true
}

func (h *AttendanceHandler) CheckIn(ctx *gin.Context) {
	employeeID, ok := profileID(ctx, h.Employees)
	if !ok {
		return
	}

	record, err := h.Attendance.CheckIn(ctx.Request.Context(), employeeID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Check-in successful",
		"check_in_time": record.CheckIn.Format(time.RFC3339),
	})
}

func (h *AttendanceHandler) CheckOut(ctx *gin.Context) {
	employeeID, ok := profileID(ctx, h.Employees)
	if !ok {
		return
	}

	record, err := h.Attendance.CheckOut(ctx.Request.Context(), employeeID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":        "Check-out successful",
		"check_out_time": record.CheckOut.Format(time.RFC3339),
		"work_minutes":   *record.WorkMinutes,
	})
}

func (h *AttendanceHandler) GetMyAttendance(ctx *gin.Context) {
	employeeID, ok := profileID(ctx, h.Employees)
	if !ok {
		return
	}

	dates, ok := dateRangeQuery(ctx)
	if !ok {
		return
	}

	records, err := h.Attendance.List(ctx.Request.Context(), employeeID, dates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAttendanceResponses(records))
}

func (h *AttendanceHandler) GetAllAttendance(ctx *gin.Context) {
	dates, ok := dateRangeQuery(ctx)
	if !ok {
		return
	}

	records, err := h.Attendance.ListAll(ctx.Request.Context(), dates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAttendanceResponses(records))
}

func (h *AttendanceHandler) GetMySummary(ctx *gin.Context) {
	var query SummaryQuery

	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	employeeID, ok := profileID(ctx, h.Employees)
	if !ok {
		return
	}

	summary, err := h.Attendance.Summary(ctx.Request.Context(), employeeID, query.Month, query.Year)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.AttendanceSummaryResponse{
		Month:                summary.Month,
		Year:                 summary.Year,
		TotalWorkingDays:     summary.TotalWorkingDays,
		PresentDays:          summary.PresentDays,
		AttendancePercentage: summary.AttendancePercentage,
	})
}
