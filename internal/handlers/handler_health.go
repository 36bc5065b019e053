package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/dto"
	"github.com/SscSPs/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthCheck godoc
// @Summary Health check
// @Description Reports whether the service can reach its database
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func healthCheck(healthService portssvc.HealthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if healthService != nil {
			if err := healthService.Check(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Health check failed")
				c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{OK: false})
				return
			}
		}
		c.JSON(http.StatusOK, dto.HealthResponse{OK: true})
	}
}
