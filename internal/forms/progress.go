package forms

import (
	"math"
	"strings"

	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
)

// Milestone is one named step in a checklist's progress. Milestone predicates
// are hand-declared domain conditions, deliberately not derived from the
// schema's required flags: a section can be "complete enough to proceed"
// without every optional field populated.
type Milestone struct {
	ID        string
	Predicate func(*FormState) bool
}

// SectionVisible reports whether a section renders for the selected frequency:
// sections without conditional display always show, otherwise the frequency
// must be in the section's required set.
func SectionVisible(section *schema.FormSection, freq schema.Frequency) bool {
	if !section.ConditionalDisplay {
		return true
	}
	if len(section.RequiredFrequencies) == 0 {
		return true
	}
	return section.RequiresFrequency(freq)
}

// Progress counts satisfied milestones against the total and rounds to the
// nearest integer percent. Adding a satisfied milestone to a state never
// lowers the result.
func Progress(milestones []Milestone, state *FormState) int {
	if len(milestones) == 0 {
		return 0
	}
	done := 0
	for _, m := range milestones {
		if m.Predicate(state) {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(milestones))))
}

// CanAdvance reports whether the current section's schema-required fields are
// all populated. It is independent of the coarser milestone percentage and
// only considers the section when it is visible for the selected frequency.
func CanAdvance(s *schema.FormSchema, sectionID string, state *FormState) bool {
	section := s.Section(sectionID)
	if section == nil {
		return true
	}
	if !SectionVisible(section, state.SelectedFrequency) {
		return true
	}
	for _, id := range section.RequiredFieldIDs() {
		if valueMissing(state.Values[id]) {
			return false
		}
	}
	return true
}

// MilestonesFor returns the ordered milestone list for a schema id. Every
// checklist shares the general-info and final-signature milestones and adds
// one milestone per declared system section.
func MilestonesFor(s *schema.FormSchema) []Milestone {
	ms := []Milestone{
		{
			ID: "general-info-complete",
			Predicate: func(f *FormState) bool {
				return stringValue(f.Values["property_name"]) != "" &&
					stringValue(f.Values["property_address"]) != "" &&
					stringValue(f.Values["inspector_name"]) != ""
			},
		},
	}

	for i := range s.Sections {
		sec := s.Sections[i]
		if sec.ID == "general-info" || sec.ID == "signatures" {
			continue
		}
		id := sec.ID
		ms = append(ms, Milestone{
			ID: id + "-complete",
			Predicate: func(f *FormState) bool {
				if !SectionVisible(&sec, f.SelectedFrequency) {
					// Hidden sections count as satisfied so a weekly
					// inspection can reach 100 without annual items.
					return true
				}
				return f.SectionComplete(id)
			},
		})
	}

	ms = append(ms, Milestone{
		ID: "final-signatures-complete",
		Predicate: func(f *FormState) bool {
			return f.SignaturesComplete()
		},
	})

	return ms
}

func valueMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
