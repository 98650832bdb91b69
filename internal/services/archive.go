package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/forms"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/pdf"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
)

// WorkflowState names the archive state machine's states. A run moves
// strictly forward: Idle, Validating, GeneratingPdf, Persisting, Reconciling,
// then one terminal state.
type WorkflowState string

const (
	StateIdle          WorkflowState = "idle"
	StateValidating    WorkflowState = "validating"
	StateGeneratingPdf WorkflowState = "generating-pdf"
	StatePersisting    WorkflowState = "persisting"
	StateReconciling   WorkflowState = "reconciling"
	StateSuccessNew    WorkflowState = "success"
	StateSuccessReplay WorkflowState = "success-already-archived"
	StateFailed        WorkflowState = "failed"
)

// genericArchiveMessage is the fallback when a persistence failure carries no
// parseable message.
const genericArchiveMessage = "Não foi possível arquivar o relatório"

// ArchiveError is a persistence failure with an optional machine code.
type ArchiveError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error implements the error interface.
func (e *ArchiveError) Error() string {
	return e.UserMessage()
}

// UserMessage renders the displayed text, appending the machine code in
// brackets when present.
func (e *ArchiveError) UserMessage() string {
	if e.Code != "" {
		return fmt.Sprintf("%s [%s]", e.Message, e.Code)
	}
	return e.Message
}

// DecodeErrorBody leniently extracts message and code from an error response
// body. Both fields are optional; an unparseable body or a missing message
// degrades to the generic archive failure message instead of failing.
func DecodeErrorBody(body []byte) *ArchiveError {
	var parsed ArchiveError
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		parsed.Message = genericArchiveMessage
	}
	return &parsed
}

func asArchiveError(err error) *ArchiveError {
	var ae *ArchiveError
	if errors.As(err, &ae) {
		return ae
	}
	return &ArchiveError{Message: genericArchiveMessage}
}

// ArchiveRequest is one archive attempt's full input. State is read-only for
// the workflow: no path mutates it, so a failed attempt leaves the live form
// untouched for retry.
type ArchiveRequest struct {
	UserID       string
	InspectionID string // empty: create endpoint; set: archive-inspection endpoint
	SessionKey   string
	State        *forms.FormState
	Validator    forms.CustomValidator
	Branding     pdf.Branding
	Logo         pdf.LogoConfig
}

// ArchiveResult is the terminal outcome of one run.
type ArchiveResult struct {
	State            WorkflowState
	ValidationErrors []string
	Record           *models.ArchivedReport
	Already          bool
	Err              *ArchiveError
}

// ArchiveWorkflow coordinates validation, PDF generation, persistence and
// reconciliation for one finalized checklist. Instances are stateless across
// runs; concurrency safety across double-submissions rests on the store's
// idempotence, not on workflow-level mutual exclusion.
type ArchiveWorkflow struct {
	Registry *schema.Registry
	Renderer pdf.Renderer
	Store    ArchiveStore
	Cache    *ReportCache
	Notifier Notifier
	Delays   PacingDelays
	// DraftCleanup clears the session's draft entry on success; nil skips.
	DraftCleanup func(sessionKey, draftKey string) error
}

// Run executes one archive attempt. Validation failures and collaborator
// errors are converted to user-facing results here; Run never panics through
// a collaborator failure and never re-throws past the workflow boundary.
func (w *ArchiveWorkflow) Run(ctx context.Context, req *ArchiveRequest) *ArchiveResult {
	notifier := w.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	formSchema, err := w.Registry.Get(req.State.SchemaID)
	if err != nil {
		notifier.Error("Arquivamento", genericArchiveMessage)
		return &ArchiveResult{State: StateFailed, Err: &ArchiveError{Message: genericArchiveMessage, Code: "E_SCHEMA"}}
	}

	// Validating. The error list starts empty on every attempt.
	logCtx := log.WithFields(log.Fields{"formId": req.State.SchemaID, "inspectionId": req.InspectionID})
	logCtx.Info("archive: validating")

	required, labels := requiredFieldsFor(formSchema, req.State)
	validationErrors := forms.Validate(required, labels, req.State.Values, req.Validator)
	if len(validationErrors) > 0 {
		// Terminal for this attempt; the form stays editable and the
		// full list is surfaced.
		notifier.Error("Validação", joinForNotice(validationErrors))
		return &ArchiveResult{State: StateFailed, ValidationErrors: validationErrors}
	}

	// GeneratingPdf.
	logCtx.Info("archive: generating pdf")
	notifier.Progress(1, 3, "Gerando documento...")

	generalInfo := forms.BuildGeneralInformation(req.State, req.Branding.CompanyName)
	doc := pdf.Document{
		Title:       formSchema.Title,
		FormData:    req.State.Values,
		GeneralInfo: generalInfo,
		Inspector:   req.State.InspectorSignature,
		Client:      req.State.ClientSignature,
		Branding:    req.Branding,
		Logo:        req.Logo,
	}
	pdfData, err := pdf.RenderBase64(ctx, w.Renderer, doc)
	if err != nil {
		// Renderer errors surface verbatim; no partial record exists.
		logCtx.WithError(err).Error("archive: pdf generation failed")
		notifier.Error("Geração do PDF", err.Error())
		return &ArchiveResult{State: StateFailed, Err: &ArchiveError{Message: err.Error(), Code: "E_RENDER"}}
	}

	// Persisting.
	logCtx.Info("archive: persisting")
	notifier.Progress(2, 3, "Enviando relatório...")

	record, err := buildArchiveRecord(req, formSchema, generalInfo, pdfData)
	if err != nil {
		notifier.Error("Arquivamento", genericArchiveMessage)
		return &ArchiveResult{State: StateFailed, Err: &ArchiveError{Message: genericArchiveMessage, Code: "E_SNAPSHOT"}}
	}

	var stored *models.ArchivedReport
	var already bool
	if req.InspectionID != "" {
		stored, already, err = w.Store.ArchiveInspection(ctx, req.InspectionID, record)
	} else {
		stored, already, err = w.Store.CreateArchivedReport(ctx, record)
	}
	if err != nil {
		ae := asArchiveError(err)
		logCtx.WithError(err).Error("archive: persistence failed")
		notifier.Error("Arquivamento", ae.UserMessage())
		return &ArchiveResult{State: StateFailed, Err: ae}
	}

	// Reconciling.
	logCtx.WithField("already", already).Info("archive: reconciling")
	notifier.Progress(3, 3, "Finalizando...")

	if w.Cache != nil {
		w.Cache.Invalidate(req.UserID)
	}
	if w.DraftCleanup != nil && req.SessionKey != "" {
		if err := w.DraftCleanup(req.SessionKey, FormDraftKey(req.State.SchemaID)); err != nil {
			// Draft cleanup is fire-and-forget; a failure never blocks
			// the reconciled outcome.
			logCtx.WithError(err).Warn("archive: draft cleanup failed")
		}
	}

	pause(w.Delays.Outcome)
	terminal := StateSuccessNew
	if already {
		terminal = StateSuccessReplay
		notifier.Info("Relatório já arquivado", "Esta inspeção já havia sido arquivada; nenhum novo registro foi criado.")
	} else {
		notifier.Success("Relatório arquivado", "O relatório de inspeção foi arquivado com sucesso.")
	}

	pause(w.Delays.Navigate)
	notifier.Navigate("/reports")

	return &ArchiveResult{State: terminal, Record: stored, Already: already}
}

// requiredFieldsFor collects the schema-required field ids of every section
// visible for the state's selected frequency, in declaration order, plus
// their labels.
func requiredFieldsFor(s *schema.FormSchema, state *forms.FormState) ([]string, map[string]string) {
	var ids []string
	labels := make(map[string]string)
	for i := range s.Sections {
		sec := &s.Sections[i]
		if !forms.SectionVisible(sec, state.SelectedFrequency) {
			continue
		}
		for _, f := range sec.Fields {
			if f.Required {
				ids = append(ids, f.ID)
				labels[f.ID] = f.Label
			}
		}
	}
	return ids, labels
}

// buildArchiveRecord assembles the denormalized snapshot row: serialized raw
// form values, serialized signatures, the base64 document and the general
// information summary.
func buildArchiveRecord(req *ArchiveRequest, s *schema.FormSchema, info forms.GeneralInformation, pdfData string) (*models.ArchivedReport, error) {
	// Snapshot from a clone so record building can never alias the live
	// session values.
	snapshot := req.State.Clone()

	formData, err := json.Marshal(snapshot.Values)
	if err != nil {
		return nil, err
	}
	signatures, err := json.Marshal([]forms.SignatureBlock{
		snapshot.InspectorSignature,
		snapshot.ClientSignature,
	})
	if err != nil {
		return nil, err
	}

	var inspectionID *string
	if req.InspectionID != "" {
		id := req.InspectionID
		inspectionID = &id
	}

	return &models.ArchivedReport{
		UserID:          req.UserID,
		InspectionID:    inspectionID,
		FormID:          s.ID,
		FormTitle:       s.Title,
		PropertyName:    info.NomePropriedade,
		PropertyAddress: info.Endereco,
		InspectionDate:  info.DataInspecao,
		FormData:        string(formData),
		Signatures:      string(signatures),
		PDFData:         pdfData,
		GeneralInfo:     models.NewJSON(info),
		Status:          "archived",
	}, nil
}

// joinForNotice renders the first errors of a list for a toast-style notice
// with a "+N more" suffix; the full list stays in the result for the
// persistent error panel.
func joinForNotice(errs []string) string {
	const maxShown = 3
	if len(errs) <= maxShown {
		return joinLines(errs)
	}
	return fmt.Sprintf("%s (+%d mais)", joinLines(errs[:maxShown]), len(errs)-maxShown)
}

func joinLines(errs []string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e
	}
	return out
}
