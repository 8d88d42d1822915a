package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handlers groups the per-domain handlers mounted by the router.
type Handlers struct {
	Auth       *AuthHandler
	Employees  *EmployeeHandler
	Attendance *AttendanceHandler
	Leaves     *LeaveHandler
	Payroll    *PayrollHandler
	DB         Pinger
}

func New(
	authService *services.AuthService,
	employeeService *services.EmployeeService,
	attendanceService *services.AttendanceService,
	leaveService *services.LeaveService,
	payrollService *services.PayrollService,
	db Pinger,
) *Handlers {
	return &Handlers{
		Auth:       &AuthHandler{Auth: authService},
		Employees:  &EmployeeHandler{Employees: employeeService},
		Attendance: &AttendanceHandler{Attendance: attendanceService, Employees: employeeService},
		Leaves:     &LeaveHandler{Leaves: leaveService, Employees: employeeService},
		Payroll:    &PayrollHandler{Payroll: payrollService, Employees: employeeService},
		DB:         db,
	}
}

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindValidation, services.KindConflict:
		return http.StatusBadRequest
	case services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error) {
	var svcErr *services.Error

	if errors.As(err, &svcErr) {
		ctx.JSON(statusForKind(svcErr.Kind), gin.H{"error": svcErr.Detail})
		return
	}

	log.Printf("[%s] %s %s failed: %v", utils.GetRequestID(ctx), ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func currentUser(ctx *gin.Context) (uint, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}

	return userID, true
}

func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := utils.GetIDParam(ctx, name)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}

	return id, true
}
