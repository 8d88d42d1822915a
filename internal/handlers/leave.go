package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
)

type ApplyLeaveRequest struct {
	LeaveType string  `json:"leave_type" binding:"required,leavetype"`
	StartDate string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    *string `json:"reason"`
}

type LeaveHandler struct {
	Leaves    *services.LeaveService
	Employees *services.EmployeeService
}

func (h *LeaveHandler) ApplyLeave(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req ApplyLeaveRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	// both already validated by the datetime tag
	start, _ := time.Parse(types.DateLayout, req.StartDate)
	end, _ := time.Parse(types.DateLayout, req.EndDate)

	employee, err := h.Employees.EnsureProfile(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	leave, err := h.Leaves.Apply(ctx.Request.Context(), employee.ID, services.LeaveApplication{
		LeaveType: req.LeaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.LeaveDecisionResponse{
		Message: "Leave request submitted",
		LeaveID: leave.ID,
		Status:  leave.Status,
	})
}

func (h *LeaveHandler) ApproveLeave(ctx *gin.Context) {
	h.decide(ctx, h.Leaves.Approve, "Leave approved")
}

func (h *LeaveHandler) RejectLeave(ctx *gin.Context) {
	h.decide(ctx, h.Leaves.Reject, "Leave rejected")
}

type leaveDecision func(ctx context.Context, leaveID uint) (*models.LeaveRequest, error)

func (h *LeaveHandler) decide(ctx *gin.Context, decision leaveDecision, message string) {
	leaveID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	leave, err := decision(ctx.Request.Context(), leaveID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.LeaveDecisionResponse{
		Message: message,
		LeaveID: leave.ID,
		Status:  leave.Status,
	})
}

func (h *LeaveHandler) GetMyLeaves(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	employee, err := h.Employees.EnsureProfile(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	leaves, err := h.Leaves.ListMine(ctx.Request.Context(), employee.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toLeaveResponses(leaves))
}

func (h *LeaveHandler) GetAllLeaves(ctx *gin.Context) {
	leaves, err := h.Leaves.ListAll(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toLeaveResponses(leaves))
}
