package services

import (
	"strings"
	"testing"

	"github.com/tolentino2025/FireSafeITM-sub001/internal/forms"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"
)

func TestCreateInspectionValidatesParentFields(t *testing.T) {
	db := setupDB(t)

	_, err := CreateOrUpdateInspection(db, &InspectionInput{UserID: "user-1"})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	ce, ok := err.(*types.CustomError)
	if !ok {
		t.Fatalf("Expected CustomError, got %T", err)
	}
	// All missing fields are reported in one pass.
	for _, field := range []string{"companyId", "facilityName", "address"} {
		if !strings.Contains(ce.Message, field) {
			t.Errorf("Error should name %s: %s", field, ce.Message)
		}
	}

	// One missing field still fails with only that field named.
	_, err = CreateOrUpdateInspection(db, &InspectionInput{
		UserID:       "user-1",
		CompanyID:    "co-1",
		FacilityName: "Depósito Central",
	})
	ce = err.(*types.CustomError)
	if !strings.Contains(ce.Message, "address") || strings.Contains(ce.Message, "companyId") {
		t.Errorf("Unexpected message: %s", ce.Message)
	}
}

func TestCreateAndPatchInspection(t *testing.T) {
	db := setupDB(t)

	id, err := CreateOrUpdateInspection(db, &InspectionInput{
		UserID:          "user-1",
		CompanyID:       "co-1",
		FacilityName:    "Depósito Central",
		Address:         "Av. Industrial, 1200",
		SelectedFormIDs: []string{"sprinkler-systems", "fire-pump"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == "" {
		t.Fatal("Create must return the new id")
	}

	// Patch an existing row.
	_, err = CreateOrUpdateInspection(db, &InspectionInput{
		ID:           id,
		UserID:       "user-1",
		CompanyID:    "co-1",
		FacilityName: "Depósito Central - Ala B",
		Address:      "Av. Industrial, 1200",
	})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	insp, err := GetInspection(db, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if insp.FacilityName != "Depósito Central - Ala B" {
		t.Errorf("Patch did not apply: %s", insp.FacilityName)
	}

	// Patch without SelectedFormIDs must not clear the stored selection.
	var selected []string
	if err := insp.SelectedFormIDs.Decode(&selected); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(selected) != 2 {
		t.Errorf("Selection should survive a partial patch, got %v", selected)
	}

	// Patching an unknown id is a not-found error.
	_, err = CreateOrUpdateInspection(db, &InspectionInput{
		ID:           "no-such-id",
		CompanyID:    "co-1",
		FacilityName: "X",
		Address:      "Y",
	})
	if err == nil || err.Error() != "not found" {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestMultiFormProgress(t *testing.T) {
	db := setupDB(t)

	selected := []string{"sprinkler-systems", "standpipe-hose", "fire-pump", "water-tank"}
	id, err := CreateOrUpdateInspection(db, &InspectionInput{
		UserID:          "user-1",
		CompanyID:       "co-1",
		FacilityName:    "Depósito Central",
		Address:         "Av. Industrial, 1200",
		SelectedFormIDs: selected,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	m, err := LoadMultiFormInspection(db, id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Progress != 0 || m.Status != forms.StatusDraft {
		t.Fatalf("Fresh inspection: progress=%d status=%s", m.Progress, m.Status)
	}

	if err := m.MarkSubFormComplete(db, "sprinkler-systems"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if m.Progress != 25 {
		t.Errorf("1 of 4 complete should be 25, got %d", m.Progress)
	}
	if m.Status != forms.StatusDraft {
		t.Errorf("Partial inspection stays draft, got %s", m.Status)
	}

	// Completing the same form twice is idempotent.
	if err := m.MarkSubFormComplete(db, "sprinkler-systems"); err != nil {
		t.Fatalf("Repeat complete failed: %v", err)
	}
	if m.Progress != 25 {
		t.Errorf("Repeat completion must not change progress, got %d", m.Progress)
	}

	for _, formID := range selected[1:] {
		if err := m.MarkSubFormComplete(db, formID); err != nil {
			t.Fatalf("Complete %s failed: %v", formID, err)
		}
	}
	if m.Progress != 100 || m.Status != forms.StatusCompleted {
		t.Errorf("All complete: progress=%d status=%s", m.Progress, m.Status)
	}

	// The persisted row reflects the aggregate.
	reloaded, err := LoadMultiFormInspection(db, id)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Progress != 100 || reloaded.Status != forms.StatusCompleted {
		t.Errorf("Persisted: progress=%d status=%s", reloaded.Progress, reloaded.Status)
	}
	if got := reloaded.CompletedFormIDs(); len(got) != 4 {
		t.Errorf("Expected 4 completed form ids, got %v", got)
	}
}

func TestMarkSubFormCompleteRejectsUnselectedForm(t *testing.T) {
	db := setupDB(t)

	id, err := CreateOrUpdateInspection(db, &InspectionInput{
		UserID:          "user-1",
		CompanyID:       "co-1",
		FacilityName:    "Depósito Central",
		Address:         "Av. Industrial, 1200",
		SelectedFormIDs: []string{"sprinkler-systems", "fire-pump"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	m, err := LoadMultiFormInspection(db, id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	err = m.MarkSubFormComplete(db, "water-tank")
	if err == nil {
		t.Fatal("Expected rejection of a form outside the selection")
	}
	if _, ok := err.(*types.CustomError); !ok {
		t.Fatalf("Expected CustomError, got %T", err)
	}
	if m.Progress != 0 || m.IsComplete("water-tank") {
		t.Errorf("Rejected completion must not change the aggregate: progress=%d", m.Progress)
	}

	// Complete the whole selection, then verify nothing can push past 100.
	for _, formID := range []string{"sprinkler-systems", "fire-pump"} {
		if err := m.MarkSubFormComplete(db, formID); err != nil {
			t.Fatalf("Complete %s failed: %v", formID, err)
		}
	}
	if err := m.MarkSubFormComplete(db, "standpipe-hose"); err == nil {
		t.Error("Completed inspection must still reject unselected forms")
	}
	if err := m.MarkSubFormComplete(db, "fire-pump"); err != nil {
		t.Fatalf("Valid replay failed: %v", err)
	}
	if m.Progress != 100 || m.Status != forms.StatusCompleted {
		t.Errorf("Replay must leave the completed aggregate untouched: %d/%s", m.Progress, m.Status)
	}

	reloaded, err := LoadMultiFormInspection(db, id)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Progress != 100 {
		t.Errorf("Persisted progress must stay at 100, got %d", reloaded.Progress)
	}
	if got := reloaded.CompletedFormIDs(); len(got) != 2 {
		t.Errorf("Completed set must hold only selected forms, got %v", got)
	}
}

func TestMarkSubFormCompleteSurvivesPersistFailure(t *testing.T) {
	db := setupDB(t)

	m := NewMultiFormInspection("user-1", []string{"sprinkler-systems", "fire-pump"})
	m.ID = "never-persisted"

	err := m.MarkSubFormComplete(db, "sprinkler-systems")
	if err == nil {
		t.Fatal("Expected persistence failure for unknown row")
	}
	// The in-memory completion is kept so a retried save can succeed.
	if !m.IsComplete("sprinkler-systems") {
		t.Error("In-memory completion must survive a failed persist")
	}
	if m.Progress != 50 {
		t.Errorf("Progress must reflect the kept completion, got %d", m.Progress)
	}
}

func TestSelectedFormsRoundTrip(t *testing.T) {
	db := setupDB(t)

	if err := SelectInspectionForms(db, "sess-1", []string{"fire-pump", "water-tank"}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	got, err := SelectedInspectionForms(db, "sess-1")
	if err != nil {
		t.Fatalf("Read back failed: %v", err)
	}
	if len(got) != 2 || got[0] != "fire-pump" {
		t.Errorf("Unexpected selection: %v", got)
	}

	// Re-selecting replaces, not appends.
	if err := SelectInspectionForms(db, "sess-1", []string{"sprinkler-systems"}); err != nil {
		t.Fatalf("Re-select failed: %v", err)
	}
	got, _ = SelectedInspectionForms(db, "sess-1")
	if len(got) != 1 || got[0] != "sprinkler-systems" {
		t.Errorf("Expected replaced selection, got %v", got)
	}
}
