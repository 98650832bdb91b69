package models

import (
	"time"
)

// ArchivedReport is the immutable point-in-time snapshot produced by a
// successful archive: form data, signatures, general information and the
// generated PDF, denormalized so later edits to the live inspection cannot
// touch it. The unique InspectionID index is what makes archive replay
// idempotent at the store level.
type ArchivedReport struct {
	ID              string  `gorm:"primaryKey;type:char(36)"`
	UserID          string  `gorm:"type:char(36);not null;index"`
	InspectionID    *string `gorm:"type:char(36);uniqueIndex"`
	FormID          string  `gorm:"size:64;not null"`
	FormTitle       string  `gorm:"size:255;not null"`
	PropertyName    string  `gorm:"size:255;not null"`
	PropertyAddress string  `gorm:"size:512"` // legacy flattened string
	AddressStreet   string  `gorm:"size:255"`
	AddressCity     string  `gorm:"size:128"`
	AddressState    string  `gorm:"size:64"`
	AddressZip      string  `gorm:"size:32"`
	InspectionDate  string  `gorm:"size:10;not null"` // canonical YYYY-MM-DD
	FormData        string  `gorm:"type:text"`        // serialized raw form snapshot
	Signatures      string  `gorm:"type:text"`        // serialized signature blocks
	PDFData         string  `gorm:"type:longtext"`    // base64 payload
	GeneralInfo     JSON    `gorm:"type:json"`
	Status          string  `gorm:"size:32;not null;default:archived"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name for ArchivedReport
func (ArchivedReport) TableName() string {
	return "archived_reports"
}
