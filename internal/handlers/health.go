package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/config"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/services"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// Health handles GET /api/health
// @Summary Service health
// @Description Database connectivity plus the remote report store when configured
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
