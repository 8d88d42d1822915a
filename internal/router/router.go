package router

import (
	"time"

	"github.com/dayflow-dev/dayflow/internal/handlers"
	"github.com/dayflow-dev/dayflow/internal/middleware"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *handlers.Handlers, authenticator middleware.Authenticator) *gin.Engine {
	handlers.RegisterValidators()

	// RequestID writes the access log line, so gin's default logger is left out.
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", types.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", types.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authenticated := middleware.AuthMiddleware(authenticator)
	adminOnly := middleware.AdminOnly()

	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
	}

	r.GET("/me", authenticated, h.Auth.Me)

	employees := r.Group("/employees", authenticated)
	{
		employees.GET("/me", h.Employees.GetMyProfile)
		employees.PUT("/me", h.Employees.UpdateMyProfile)

		employees.GET("", adminOnly, h.Employees.ListEmployees)
		employees.GET("/:id", adminOnly, h.Employees.GetEmployee)
		employees.PUT("/:id", adminOnly, h.Employees.UpdateEmployee)
	}

	attendance := r.Group("/attendance", authenticated)
	{
		attendance.POST("/check-in", h.Attendance.CheckIn)
		attendance.POST("/check-out", h.Attendance.CheckOut)
		attendance.GET("/me", h.Attendance.GetMyAttendance)
		attendance.GET("/me/summary", h.Attendance.GetMySummary)
		attendance.GET("/all", adminOnly, h.Attendance.GetAllAttendance)
	}

	leaves := r.Group("/leaves", authenticated)
	{
		leaves.POST("/apply", h.Leaves.ApplyLeave)
		leaves.GET("/me", h.Leaves.GetMyLeaves)
		leaves.GET("/all", adminOnly, h.Leaves.GetAllLeaves)
		leaves.PUT("/:id/approve", adminOnly, h.Leaves.ApproveLeave)
		leaves.PUT("/:id/reject", adminOnly, h.Leaves.RejectLeave)
	}

	payroll := r.Group("/payroll", authenticated)
	{
		payroll.POST("/generate", adminOnly, h.Payroll.GeneratePayroll)
		payroll.GET("/me", h.Payroll.GetMyPayroll)
		payroll.GET("/all", adminOnly, h.Payroll.GetAllPayroll)
	}

	return r
}
