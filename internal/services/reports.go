package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// ReportCache is the in-process cache of per-user archived report listings.
// A reconciled archive invalidates the owning user's entry so subsequent
// views reflect the new record.
type ReportCache struct {
	mu      sync.Mutex
	entries map[string][]models.ArchivedReport
}

// NewReportCache creates an empty cache.
func NewReportCache() *ReportCache {
	return &ReportCache{entries: make(map[string][]models.ArchivedReport)}
}

// Get returns the cached listing for a user, if any.
func (c *ReportCache) Get(userID string) ([]models.ArchivedReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	reports, ok := c.entries[userID]
	return reports, ok
}

// Put stores a listing.
func (c *ReportCache) Put(userID string, reports []models.ArchivedReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = reports
}

// Invalidate drops a user's cached listing.
func (c *ReportCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}

// ListArchivedReports returns a user's archived reports, newest first,
// serving from cache when warm.
func ListArchivedReports(db *gorm.DB, cache *ReportCache, userID string) ([]models.ArchivedReport, error) {
	if cache != nil {
		if reports, ok := cache.Get(userID); ok {
			return reports, nil
		}
	}

	var reports []models.ArchivedReport
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.CommentBefore("select", "archived_reports_list")).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	if cache != nil {
		cache.Put(userID, reports)
	}
	return reports, nil
}

// GetArchivedReport loads one archived report.
func GetArchivedReport(db *gorm.DB, id string) (*models.ArchivedReport, error) {
	var report models.ArchivedReport
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("id = ?", id).
		First(&report).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &report, nil
}

// ArchiveStore is the persistence collaborator of the archive workflow. The
// workflow picks the method deterministically from whether an inspection id
// is present, never from a flag. Both methods return the stored record and
// whether the call was an idempotent replay of an already archived
// inspection.
type ArchiveStore interface {
	CreateArchivedReport(ctx context.Context, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error)
	ArchiveInspection(ctx context.Context, inspectionID string, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error)
}

// GormArchiveStore implements ArchiveStore over the database. Replay safety
// rests on the unique inspection-id index of archived_reports: a second
// archive of the same inspection returns the stored record, flagged as
// already archived, and never writes a duplicate.
type GormArchiveStore struct {
	DB *gorm.DB
}

// CreateArchivedReport stores a standalone archived report.
func (s *GormArchiveStore) CreateArchivedReport(ctx context.Context, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Status = "archived"
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, false, err
	}
	return rec, false, nil
}

// ArchiveInspection archives a known inspection, reconciling the
// already-archived outcome.
func (s *GormArchiveStore) ArchiveInspection(ctx context.Context, inspectionID string, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error) {
	var result *models.ArchivedReport
	already := false

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ArchivedReport
		err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Where("inspection_id = ?", inspectionID).
			First(&existing).Error

		if err == nil {
			// Strict no-op replay: the stored snapshot is returned
			// untouched.
			result = &existing
			already = true
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.InspectionID = &inspectionID
		rec.Status = "archived"
		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		update := tx.Model(&models.Inspection{}).Where("id = ?", inspectionID).
			Update("status", "archived")
		if update.Error != nil {
			return update.Error
		}

		result = rec
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, already, nil
}
