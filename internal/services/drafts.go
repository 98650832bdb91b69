package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SelectedFormsDraftKey is the fixed draft key the orchestrator persists its
// selected sub-form list under, so a selection survives a reload before the
// parent inspection row exists.
const SelectedFormsDraftKey = "multi-inspection-selected-forms"

// FormDraftKey returns the draft key for one checklist's partial save.
func FormDraftKey(formID string) string {
	return "form:" + formID
}

// SaveDraft upserts a draft entry. The store is last-write-wins per
// (sessionKey, draftKey) pair; there is no locking.
func SaveDraft(db *gorm.DB, sessionKey, draftKey string, value interface{}) error {
	payload := models.NewJSON(value)

	var existing models.FormDraft
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("session_key = ? AND draft_key = ?", sessionKey, draftKey).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		draft := models.FormDraft{
			ID:         uuid.NewString(),
			SessionKey: sessionKey,
			DraftKey:   draftKey,
			Value:      payload,
		}
		return db.Create(&draft).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&existing).Update("value", payload).Error
}

// GetDraft loads a draft entry into out, or returns "not found".
func GetDraft(db *gorm.DB, sessionKey, draftKey string, out interface{}) error {
	var draft models.FormDraft
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("session_key = ? AND draft_key = ?", sessionKey, draftKey).
		First(&draft).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("not found")
		}
		return err
	}
	return draft.Value.Decode(out)
}

// DeleteDraft removes a draft entry. Deleting an absent entry is not an
// error.
func DeleteDraft(db *gorm.DB, sessionKey, draftKey string) error {
	return db.Where("session_key = ? AND draft_key = ?", sessionKey, draftKey).
		Delete(&models.FormDraft{}).Error
}
