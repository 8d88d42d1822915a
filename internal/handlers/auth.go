package handlers

import (
	"net/http"

	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required"`
	Role     types.Role `json:"role" binding:"required,role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	user, err := h.Auth.Signup(ctx.Request.Context(), req.Email, req.Password, req.Role)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.SignupResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
		Role:    types.Role(user.Role),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	token, role, err := h.Auth.Login(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        role,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	user, err := h.Auth.CurrentUser(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  types.Role(user.Role),
	})
}
