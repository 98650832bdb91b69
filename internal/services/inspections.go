package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/forms"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InspectionInput is the caller-facing payload for creating or patching the
// parent inspection.
type InspectionInput struct {
	ID              string   `json:"id,omitempty"`
	UserID          string   `json:"userId"`
	CompanyID       string   `json:"companyId"`
	FacilityName    string   `json:"facilityName"`
	Address         string   `json:"address"`
	SelectedFormIDs []string `json:"selectedFormIds"`
}

// validateParentFields is the single shared gate for both create and patch:
// it raises one structured error identifying exactly which fields are
// missing rather than failing on the first.
func validateParentFields(in *InspectionInput) error {
	var missing []string
	if strings.TrimSpace(in.CompanyID) == "" {
		missing = append(missing, "companyId")
	}
	if strings.TrimSpace(in.FacilityName) == "" {
		missing = append(missing, "facilityName")
	}
	if strings.TrimSpace(in.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) == 0 {
		return nil
	}
	return &types.CustomError{
		Code:    fiber.StatusBadRequest,
		Message: fmt.Sprintf("Campos obrigatórios ausentes: %s", strings.Join(missing, ", ")),
		Type:    "inspection.validation.parent",
	}
}

// SelectInspectionForms persists the chosen sub-form set under the fixed
// draft key. Re-selecting the same set is a no-op write; the selection must
// survive a reload even before the parent inspection exists.
func SelectInspectionForms(db *gorm.DB, sessionKey string, formIDs []string) error {
	return SaveDraft(db, sessionKey, SelectedFormsDraftKey, formIDs)
}

// SelectedInspectionForms reads back the persisted selection for a session.
func SelectedInspectionForms(db *gorm.DB, sessionKey string) ([]string, error) {
	var ids []string
	if err := GetDraft(db, sessionKey, SelectedFormsDraftKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateOrUpdateInspection creates the parent inspection when no id is known
// yet, otherwise patches the existing row. Both paths share the parent-field
// validation.
func CreateOrUpdateInspection(db *gorm.DB, in *InspectionInput) (string, error) {
	if err := validateParentFields(in); err != nil {
		return "", err
	}

	if in.ID == "" {
		insp := models.Inspection{
			ID:               uuid.NewString(),
			UserID:           in.UserID,
			CompanyID:        in.CompanyID,
			FacilityName:     in.FacilityName,
			Address:          in.Address,
			SelectedFormIDs:  models.NewJSON(in.SelectedFormIDs),
			CompletedFormIDs: models.NewJSON([]string{}),
			Status:           string(forms.StatusDraft),
		}
		if err := db.Create(&insp).Error; err != nil {
			return "", err
		}
		log.WithField("inspectionId", insp.ID).Info("created parent inspection")
		return insp.ID, nil
	}

	updates := map[string]interface{}{
		"company_id":    in.CompanyID,
		"facility_name": in.FacilityName,
		"address":       in.Address,
	}
	if in.SelectedFormIDs != nil {
		updates["selected_form_ids"] = models.NewJSON(in.SelectedFormIDs)
	}
	result := db.Model(&models.Inspection{}).Where("id = ?", in.ID).Updates(updates)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", fmt.Errorf("not found")
	}
	return in.ID, nil
}

// GetInspection loads one parent inspection.
func GetInspection(db *gorm.DB, id string) (*models.Inspection, error) {
	var insp models.Inspection
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("id = ?", id).
		First(&insp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &insp, nil
}

// MultiFormInspection is the in-memory orchestrator aggregate over one
// inspection visit's sub-forms. Sub-form completion is one-way: there is no
// uncomplete operation, and reopening a completed checklist for edits does
// not revert its completion.
type MultiFormInspection struct {
	ID              string
	UserID          string
	CompanyID       string
	FacilityName    string
	Address         string
	SelectedFormIDs []string
	completed       map[string]struct{}
	Progress        int
	Status          forms.Status
}

// NewMultiFormInspection builds the aggregate for a fresh visit.
func NewMultiFormInspection(userID string, selected []string) *MultiFormInspection {
	return &MultiFormInspection{
		UserID:          userID,
		SelectedFormIDs: selected,
		completed:       make(map[string]struct{}),
		Status:          forms.StatusDraft,
	}
}

// LoadMultiFormInspection rehydrates the aggregate from a persisted row.
func LoadMultiFormInspection(db *gorm.DB, id string) (*MultiFormInspection, error) {
	insp, err := GetInspection(db, id)
	if err != nil {
		return nil, err
	}

	var selected, completed []string
	if err := insp.SelectedFormIDs.Decode(&selected); err != nil {
		return nil, err
	}
	if err := insp.CompletedFormIDs.Decode(&completed); err != nil {
		return nil, err
	}

	m := &MultiFormInspection{
		ID:              insp.ID,
		UserID:          insp.UserID,
		CompanyID:       insp.CompanyID,
		FacilityName:    insp.FacilityName,
		Address:         insp.Address,
		SelectedFormIDs: selected,
		completed:       make(map[string]struct{}, len(completed)),
		Progress:        insp.Progress,
		Status:          forms.Status(insp.Status),
	}
	for _, id := range completed {
		m.completed[id] = struct{}{}
	}
	return m, nil
}

// CompletedFormIDs returns the completed set in sorted order.
func (m *MultiFormInspection) CompletedFormIDs() []string {
	out := make([]string, 0, len(m.completed))
	for id := range m.completed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsComplete reports whether one sub-form was marked complete.
func (m *MultiFormInspection) IsComplete(formID string) bool {
	_, ok := m.completed[formID]
	return ok
}

// computeProgress derives the aggregate percentage from the completed and
// selected counts.
func (m *MultiFormInspection) computeProgress() int {
	if len(m.SelectedFormIDs) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(m.completed)) / float64(len(m.SelectedFormIDs))))
}

// isSelected reports whether a form id belongs to the inspection's selection.
func (m *MultiFormInspection) isSelected(formID string) bool {
	for _, id := range m.SelectedFormIDs {
		if id == formID {
			return true
		}
	}
	return false
}

// MarkSubFormComplete records one sub-form as complete, recomputes progress
// and patches the parent row, flipping parent status to completed at 100%.
// Only ids in the inspection's selection count toward progress, keeping the
// percentage inside [0,100]. Repeated completion of the same form is a no-op,
// so an inspection that reached completed is never rewritten by a replay.
// When the persistence patch fails the in-memory completion survives (the
// user's marking must not be lost to a transient failure; a retried save is
// expected), and the error is returned so the caller can notify.
func (m *MultiFormInspection) MarkSubFormComplete(db *gorm.DB, formID string) error {
	if !m.isSelected(formID) {
		return &types.CustomError{
			Code:    fiber.StatusNotFound,
			Message: "Formulário não faz parte desta inspeção: " + formID,
			Type:    "inspection.completion.form",
		}
	}
	if m.IsComplete(formID) {
		return nil
	}

	m.completed[formID] = struct{}{}
	m.Progress = m.computeProgress()
	if m.Progress == 100 {
		m.Status = forms.StatusCompleted
	}

	updates := map[string]interface{}{
		"completed_form_ids": models.NewJSON(m.CompletedFormIDs()),
		"progress":           m.Progress,
		"status":             string(m.Status),
	}
	result := db.Model(&models.Inspection{}).Where("id = ?", m.ID).Updates(updates)
	if result.Error != nil {
		log.WithError(result.Error).WithFields(log.Fields{
			"inspectionId": m.ID,
			"formId":       formID,
		}).Error("failed to persist sub-form completion")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}
