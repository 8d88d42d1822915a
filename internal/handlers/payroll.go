package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/dayflow-dev/dayflow/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GeneratePayrollRequest binds from a JSON body or from query/form values.
type GeneratePayrollRequest struct {
	EmployeeID uint        `json:"employee_id" form:"employee_id" binding:"required"`
	Month      int         `json:"month" form:"month" binding:"required,min=1,max=12"`
	Year       int         `json:"year" form:"year" binding:"required,min=1,max=9999"`
	BaseSalary json.Number `json:"base_salary" form:"base_salary" binding:"required"`
}

type PayrollHandler struct {
	Payroll   *services.PayrollService
	Employees *services.EmployeeService
}

func periodQuery(ctx *gin.Context) (month, year *int, ok bool) {
	month, err := utils.GetIntQuery(ctx, "month")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	year, err = utils.GetIntQuery(ctx, "year")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	return month, year, true
}

func (h *PayrollHandler) GeneratePayroll(ctx *gin.Context) {
	var req GeneratePayrollRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	baseSalary, err := decimal.NewFromString(req.BaseSalary.String())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_salary"})
		return
	}

	payroll, err := h.Payroll.Generate(ctx.Request.Context(), services.PayrollRequest{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: baseSalary,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPayrollResponse(payroll))
}

func (h *PayrollHandler) GetMyPayroll(ctx *gin.Context) {
	month, year, ok := periodQuery(ctx)
	if !ok {
		return
	}

	employeeID, ok := profileID(ctx, h.Employees)
	if !ok {
		return
	}

	payrolls, err := h.Payroll.ListMine(ctx.Request.Context(), employeeID, month, year)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPayrollResponses(payrolls))
}

func (h *PayrollHandler) GetAllPayroll(ctx *gin.Context) {
	month, year, ok := periodQuery(ctx)
	if !ok {
		return
	}

	employeeID, err := utils.GetUintQuery(ctx, "employee_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payrolls, err := h.Payroll.ListAll(ctx.Request.Context(), stores.PayrollFilter{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPayrollResponses(payrolls))
}
