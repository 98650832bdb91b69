package models

import (
	"time"
)

// Inspection is the parent record of one multi-system inspection visit: a set
// of independently schemaed sub-forms attached to one company and property.
// Progress is derived from the completed/selected ratio and never set
// directly by callers.
type Inspection struct {
	ID               string `gorm:"primaryKey;type:char(36)"`
	UserID           string `gorm:"type:char(36);not null;index"`
	CompanyID        string `gorm:"type:char(36);not null"`
	FacilityName     string `gorm:"size:255;not null"`
	Address          string `gorm:"size:512;not null"`
	SelectedFormIDs  JSON   `gorm:"type:json"`
	CompletedFormIDs JSON   `gorm:"type:json"`
	Progress         int    `gorm:"not null;default:0"`
	Status           string `gorm:"size:32;not null;default:draft"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the table name for Inspection
func (Inspection) TableName() string {
	return "inspections"
}

// Company is the owning customer of properties and inspections. Branding is
// resolved and handed to the report renderer.
type Company struct {
	ID            string `gorm:"primaryKey;type:char(36)"`
	Name          string `gorm:"size:255;not null;uniqueIndex"`
	LogoURL       string `gorm:"size:512"`
	ShowLogo      bool   `gorm:"not null;default:true"`
	PrimaryColor  string `gorm:"size:16"`
	ContactEmail  string `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the table name for Company
func (Company) TableName() string {
	return "companies"
}
