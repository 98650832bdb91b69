package models

import (
	"time"
)

// FormDraft is one entry of the durable draft store: a last-write-wins
// key-value row scoped by the caller's session key. It backs partial saves
// and the orchestrator's selected-forms persistence before the parent
// inspection row exists.
type FormDraft struct {
	ID         string `gorm:"primaryKey;type:char(36)"`
	SessionKey string `gorm:"size:128;not null;index:idx_session_draft,unique"`
	DraftKey   string `gorm:"size:128;not null;index:idx_session_draft,unique"`
	Value      JSON   `gorm:"type:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name for FormDraft
func (FormDraft) TableName() string {
	return "form_drafts"
}
