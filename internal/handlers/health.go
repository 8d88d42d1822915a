package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Dayflow HRMS API is running"})
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	status, database := http.StatusOK, "ok"

	if h.DB != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.DB.PingContext(pingCtx); err != nil {
			log.Printf("Health check database ping failed: %v", err)
			status, database = http.StatusServiceUnavailable, "unavailable"
		}
	}

	c.JSON(status, gin.H{
		"status":    http.StatusText(status),
		"database":  database,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
