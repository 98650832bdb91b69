package forms

import (
	"strings"

	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
)

// Status is the lifecycle state of a form or inspection.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// SignerRole identifies who produced a signature block.
type SignerRole string

const (
	RoleInspector SignerRole = "inspector"
	RoleClient    SignerRole = "client"
)

// SignatureBlock holds one captured signature. SignatureImage is an opaque
// blob reference (data URI or object key) and stays empty until captured.
type SignatureBlock struct {
	SignerName     string     `json:"signerName"`
	SignerDate     string     `json:"signerDate"`
	SignatureImage string     `json:"signatureImage"`
	Role           SignerRole `json:"role"`
}

// Complete reports whether the block carries both an image and a signer name.
func (s SignatureBlock) Complete() bool {
	return strings.TrimSpace(s.SignerName) != "" && s.SignatureImage != ""
}

// PropertyRef identifies the inspected property by name and address.
type PropertyRef struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// FormState is the mutable per-inspection form session state. It is owned
// exclusively by the active editing session and persisted on explicit save.
type FormState struct {
	SchemaID            string                 `json:"schemaId"`
	Values              map[string]interface{} `json:"values"`
	SelectedFrequency   schema.Frequency       `json:"selectedFrequency"`
	CompletedSectionIDs map[string]struct{}    `json:"-"`
	CompanyID           string                 `json:"companyId,omitempty"`
	Property            PropertyRef            `json:"property"`
	Status              Status                 `json:"status"`
	InspectorSignature  SignatureBlock         `json:"inspectorSignature"`
	ClientSignature     SignatureBlock         `json:"clientSignature"`
}

// NewFormState creates a draft state for one checklist.
func NewFormState(schemaID string, freq schema.Frequency) *FormState {
	return &FormState{
		SchemaID:            schemaID,
		Values:              make(map[string]interface{}),
		SelectedFrequency:   freq,
		CompletedSectionIDs: make(map[string]struct{}),
		Status:              StatusDraft,
	}
}

// SetValue records a field value.
func (f *FormState) SetValue(fieldID string, value interface{}) {
	if f.Values == nil {
		f.Values = make(map[string]interface{})
	}
	f.Values[fieldID] = value
}

// MarkSectionComplete records a section as complete. Sections never revert to
// incomplete; later edits to a completed section keep it complete.
func (f *FormState) MarkSectionComplete(sectionID string) {
	if f.CompletedSectionIDs == nil {
		f.CompletedSectionIDs = make(map[string]struct{})
	}
	f.CompletedSectionIDs[sectionID] = struct{}{}
}

// SectionComplete reports whether a section was marked complete.
func (f *FormState) SectionComplete(sectionID string) bool {
	_, ok := f.CompletedSectionIDs[sectionID]
	return ok
}

// SignaturesComplete reports whether both required signature blocks are
// present, the finalization invariant for an archive.
func (f *FormState) SignaturesComplete() bool {
	return f.InspectorSignature.Complete() && f.ClientSignature.Complete()
}

// Clone returns a deep copy of the state. The archive workflow snapshots the
// live state before any collaborator call so a failed attempt is provably
// non-destructive.
func (f *FormState) Clone() *FormState {
	c := *f
	c.Values = make(map[string]interface{}, len(f.Values))
	for k, v := range f.Values {
		c.Values[k] = v
	}
	c.CompletedSectionIDs = make(map[string]struct{}, len(f.CompletedSectionIDs))
	for k := range f.CompletedSectionIDs {
		c.CompletedSectionIDs[k] = struct{}{}
	}
	return &c
}
