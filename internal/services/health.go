package services

import (
	"fmt"

	"github.com/apex/log"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/config"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	ReportStore  string            `json:"reportStore,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.WithError(err).Error("health check failed - database connection")
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.WithError(err).Error("health check failed - database ping")
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check the remote archive record store when configured
	if cfg.ArchiveStoreURL != "" {
		if err := utils.PingReportStore(cfg.ArchiveStoreURL); err != nil {
			result.Status = "unhealthy"
			result.ReportStore = "unreachable"
			result.Details["report_store_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Report store ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; Report store ping failed: %v", err)
			}
			log.WithError(err).Error("health check failed - report store ping")
		} else {
			result.ReportStore = "ok"
			result.Details["report_store_url"] = cfg.ArchiveStoreURL
		}
	}

	if result.Status == "healthy" {
		log.Info("health check passed - all systems operational")
	}

	return result
}
