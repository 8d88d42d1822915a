package handlers

import (
	"net/http"

	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" form:"full_name"`
	Department  *string `json:"department" form:"department"`
	Designation *string `json:"designation" form:"designation"`
	Phone       *string `json:"phone" form:"phone"`
	Address     *string `json:"address" form:"address"`
}

func (r UpdateProfileRequest) toUpdate() services.ProfileUpdate {
	return services.ProfileUpdate{
		FullName:    r.FullName,
		Department:  r.Department,
		Designation: r.Designation,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

type EmployeeHandler struct {
	Employees *services.EmployeeService
}

// bindProfileUpdate reads the fields from a JSON body, or from the query
// string when the body is empty.
func bindProfileUpdate(ctx *gin.Context) (UpdateProfileRequest, bool) {
	var req UpdateProfileRequest

	bind := ctx.ShouldBind
	if ctx.Request.ContentLength == 0 {
		bind = ctx.ShouldBindQuery
	}

	if err := bind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return req, false
	}

	return req, true
}

func (h *EmployeeHandler) GetMyProfile(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	employee, err := h.Employees.EnsureProfile(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	req, ok := bindProfileUpdate(ctx)
	if !ok {
		return
	}

	employee, err := h.Employees.UpdateOwnProfile(ctx.Request.Context(), userID, req.toUpdate())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) UpdateEmployee(ctx *gin.Context) {
	employeeID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	req, ok := bindProfileUpdate(ctx)
	if !ok {
		return
	}

	employee, err := h.Employees.UpdateProfile(ctx.Request.Context(), employeeID, req.toUpdate())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) GetEmployee(ctx *gin.Context) {
	employeeID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	employee, err := h.Employees.GetEmployee(ctx.Request.Context(), employeeID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) ListEmployees(ctx *gin.Context) {
	employees, err := h.Employees.ListEmployees(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.EmployeeResponse, 0, len(employees))
	for i := range employees {
		response = append(response, toEmployeeResponse(&employees[i]))
	}

	ctx.JSON(http.StatusOK, response)
}
