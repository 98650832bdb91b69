package schema

// Frequency is the inspection cadence tag that gates which sections of a
// checklist are visible for a given inspection.
type Frequency string

const (
	FrequencyWeekly       Frequency = "weekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencySemiannually Frequency = "semiannually"
	FrequencyAnnually     Frequency = "annually"
	FrequencyFiveYears    Frequency = "5-years"
)

// IsValid returns true if the frequency is a recognized value.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly,
		FrequencySemiannually, FrequencyAnnually, FrequencyFiveYears:
		return true
	}
	return false
}

// FieldType enumerates the input kinds a checklist field can render as.
type FieldType string

const (
	FieldRadioTristate    FieldType = "radio-tristate"
	FieldTextInput        FieldType = "text-input"
	FieldNumericInput     FieldType = "numeric-input"
	FieldDateInput        FieldType = "date-input"
	FieldSingleSelect     FieldType = "single-select"
	FieldMultiLineText    FieldType = "multi-line-text"
	FieldBooleanCheckbox  FieldType = "boolean-checkbox"
	FieldSignature        FieldType = "signature"
	FieldSectionHeader    FieldType = "section-header"
	FieldSubsectionHeader FieldType = "subsection-header"
)

// IncludeField is an optional companion sub-field attached to a checklist
// field, e.g. a numeric reading captured next to a pass/fail radio.
type IncludeField struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// FormField is one entry in a checklist section. Field ids are unique within
// their schema only; cross-schema references must carry the schema id too.
type FormField struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Type     FieldType     `json:"type"`
	Required bool          `json:"required"`
	Options  []string      `json:"options,omitempty"`
	Include  *IncludeField `json:"include,omitempty"`
}

// FormSection is an ordered group of fields. A section with ConditionalDisplay
// set is visible only when the inspection's selected frequency is in
// RequiredFrequencies; with no required frequencies the section always shows.
type FormSection struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Fields              []FormField `json:"fields"`
	RequiredFrequencies []Frequency `json:"requiredFrequencies,omitempty"`
	ConditionalDisplay  bool        `json:"conditionalDisplay,omitempty"`
}

// RequiresFrequency reports whether freq is in the section's required set.
func (s *FormSection) RequiresFrequency(freq Frequency) bool {
	for _, f := range s.RequiredFrequencies {
		if f == freq {
			return true
		}
	}
	return false
}

// RequiredFieldIDs returns the ids of the section's required fields, in
// declaration order.
func (s *FormSection) RequiredFieldIDs() []string {
	var ids []string
	for _, f := range s.Fields {
		if f.Required {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// FormSchema is the declarative description of one inspection checklist.
// Schemas are immutable after registration and versioned by a version string.
type FormSchema struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Version  string        `json:"version"`
	Sections []FormSection `json:"sections"`
}

// Section returns the section with the given id, or nil.
func (s *FormSchema) Section(id string) *FormSection {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// FieldLabel returns the human label for a field id, falling back to the id
// itself when the field is unknown.
func (s *FormSchema) FieldLabel(fieldID string) string {
	for i := range s.Sections {
		for _, f := range s.Sections[i].Fields {
			if f.ID == fieldID {
				return f.Label
			}
			if f.Include != nil && f.Include.ID == fieldID {
				return f.Include.Label
			}
		}
	}
	return fieldID
}
