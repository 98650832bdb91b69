package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistryRejectsDuplicateSchemaID(t *testing.T) {
	a := &FormSchema{ID: "dup", Title: "A"}
	b := &FormSchema{ID: "dup", Title: "B"}

	_, err := NewRegistry(a, b)
	if err == nil {
		t.Fatal("Expected duplicate schema id error")
	}
	if !strings.Contains(err.Error(), "dup") {
		t.Errorf("Error should name the offending id: %v", err)
	}
}

func TestNewRegistryRejectsDuplicateFieldID(t *testing.T) {
	s := &FormSchema{
		ID:    "bad",
		Title: "Bad",
		Sections: []FormSection{
			{ID: "one", Fields: []FormField{{ID: "x", Type: FieldTextInput}}},
			{ID: "two", Fields: []FormField{{ID: "x", Type: FieldTextInput}}},
		},
	}

	if _, err := NewRegistry(s); err == nil {
		t.Fatal("Expected duplicate field id error")
	}
}

func TestNewRegistryRejectsDuplicateIncludeFieldID(t *testing.T) {
	s := &FormSchema{
		ID:    "bad",
		Title: "Bad",
		Sections: []FormSection{
			{ID: "one", Fields: []FormField{
				{ID: "x", Type: FieldRadioTristate, Include: &IncludeField{ID: "x_psi", Type: FieldNumericInput}},
				{ID: "x_psi", Type: FieldNumericInput},
			}},
		},
	}

	if _, err := NewRegistry(s); err == nil {
		t.Fatal("Expected duplicate include field id error")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := DefaultRegistry()
	if _, err := r.Get("no-such-form"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Expected ErrSchemaNotFound, got %v", err)
	}
}

func TestDefaultRegistryContents(t *testing.T) {
	r := DefaultRegistry()

	wantOrder := []string{FormSprinkler, FormStandpipe, FormFirePump, FormWaterTank}
	list := r.List()
	if len(list) != len(wantOrder) {
		t.Fatalf("Expected %d schemas, got %d", len(wantOrder), len(list))
	}
	for i, s := range list {
		if s.ID != wantOrder[i] {
			t.Errorf("List order at %d: expected %s, got %s", i, wantOrder[i], s.ID)
		}
		if !r.Has(s.ID) {
			t.Errorf("Has(%s) should be true", s.ID)
		}
	}
}

func TestEveryChecklistCarriesGeneralInfoAndSignatures(t *testing.T) {
	for _, s := range DefaultRegistry().List() {
		if s.Section("general-info") == nil {
			t.Errorf("%s: missing general-info section", s.ID)
		}
		sig := s.Section("signatures")
		if sig == nil {
			t.Errorf("%s: missing signatures section", s.ID)
			continue
		}
		for _, f := range sig.Fields {
			if !f.Required {
				t.Errorf("%s: signature field %s must be required", s.ID, f.ID)
			}
		}
	}
}

func TestFrequencyIsValid(t *testing.T) {
	valid := []Frequency{
		FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly,
		FrequencySemiannually, FrequencyAnnually, FrequencyFiveYears,
	}
	for _, f := range valid {
		if !f.IsValid() {
			t.Errorf("%s should be valid", f)
		}
	}
	for _, f := range []Frequency{"", "daily", "biweekly"} {
		if f.IsValid() {
			t.Errorf("%q should be invalid", f)
		}
	}
}

func TestFieldLabelFallsBackToID(t *testing.T) {
	s := SprinklerSchema()
	if got := s.FieldLabel("gauges_condition"); got != "Manômetros em boas condições" {
		t.Errorf("Unexpected label: %s", got)
	}
	if got := s.FieldLabel("gauges_pressure_psi"); got != "Pressão (psi)" {
		t.Errorf("Include field labels must resolve, got: %s", got)
	}
	if got := s.FieldLabel("unknown_field"); got != "unknown_field" {
		t.Errorf("Unknown field should fall back to id, got: %s", got)
	}
}
