package helpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"gorm.io/gorm"
)

// CreateTestCompany seeds a company and returns its id.
func CreateTestCompany(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	company := models.Company{
		ID:           uuid.NewString(),
		Name:         name,
		ShowLogo:     true,
		PrimaryColor: "#b91c1c",
	}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("Failed to create company: %v", err)
	}
	return company.ID
}

// CreateTestInspection seeds a draft inspection with the given form selection
// and returns its id.
func CreateTestInspection(t *testing.T, db *gorm.DB, userID, companyID string, formIDs []string) string {
	t.Helper()
	inspection := models.Inspection{
		ID:              uuid.NewString(),
		UserID:          userID,
		CompanyID:       companyID,
		FacilityName:    "Depósito Central",
		Address:         "Av. Industrial, 1200",
		SelectedFormIDs: models.NewJSON(formIDs),
		Status:          "draft",
	}
	if err := db.Create(&inspection).Error; err != nil {
		t.Fatalf("Failed to create inspection: %v", err)
	}
	return inspection.ID
}

// CompletedFormValues returns a value map that satisfies every required
// general-information and signature field of the standard checklists.
func CompletedFormValues() map[string]interface{} {
	return map[string]interface{}{
		"property_name":       "Depósito Central",
		"property_address":    "Av. Industrial, 1200",
		"building_type":       "warehouse",
		"inspection_date":     "2024-03-15",
		"inspection_type":     "quarterly",
		"inspector_name":      "Carlos Pereira",
		"inspector_license":   "SP-44821",
		"inspector_signature": "data:image/png;base64,iVBORw0KGgo=",
		"inspector_sign_date": "2024-03-15",
		"client_signature":    "data:image/png;base64,iVBORw0KGgo=",
		"client_sign_date":    "2024-03-15",
	}
}
