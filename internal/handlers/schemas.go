// schemas.go
//
// Read-only access to the registered NFPA 25 checklist schemas.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/forms"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/utils"
)

// SchemaHandler serves the form schema registry
type SchemaHandler struct {
	Registry *schema.Registry
}

// ListSchemas handles GET /api/schemas
// @Summary List checklist schemas
// @Description List all registered inspection checklist schemas, optionally filtered by id
// @Tags Schemas
// @Accept json
// @Produce json
// @Param ids query string false "Comma-separated list of schema ids to filter"
// @Success 200 {array} schema.FormSchema
// @Router /schemas [get]
func (h *SchemaHandler) ListSchemas(c *fiber.Ctx) error {
	ids := parseQueryList(c, "ids")

	all := h.Registry.List()
	if len(ids) == 0 {
		return c.Status(fiber.StatusOK).JSON(all)
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	filtered := make([]*schema.FormSchema, 0, len(ids))
	for _, s := range all {
		if _, ok := wanted[s.ID]; ok {
			filtered = append(filtered, s)
		}
	}
	return c.Status(fiber.StatusOK).JSON(filtered)
}

// GetSchema handles GET /api/schemas/:formId
// @Summary Get one checklist schema
// @Description Get the declarative schema of one inspection checklist
// @Tags Schemas
// @Accept json
// @Produce json
// @Param formId path string true "Form schema ID"
// @Success 200 {object} schema.FormSchema
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /schemas/{formId} [get]
func (h *SchemaHandler) GetSchema(c *fiber.Ctx) error {
	formID := c.Params("formId")

	s, err := h.Registry.Get(formID)
	if err != nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Schema '%s' not found", formID))
	}
	return c.Status(fiber.StatusOK).JSON(s)
}

// progressBody is an in-flight form session to evaluate. It is never
// persisted; the endpoint is a pure function over the submitted state.
type progressBody struct {
	Frequency          string                 `json:"frequency"`
	Values             map[string]interface{} `json:"values"`
	CompletedSections  types.FlexList[string] `json:"completedSections"`
	InspectorSignature forms.SignatureBlock   `json:"inspectorSignature"`
	ClientSignature    forms.SignatureBlock   `json:"clientSignature"`
}

// sectionEvaluation is the per-section verdict of a progress evaluation.
type sectionEvaluation struct {
	ID         string `json:"id"`
	Visible    bool   `json:"visible"`
	CanAdvance bool   `json:"canAdvance"`
}

// EvaluateProgress handles POST /api/schemas/:formId/progress
// @Summary Evaluate checklist progress
// @Description Compute the milestone percentage and per-section advance verdicts for an in-flight form session
// @Tags Schemas
// @Accept json
// @Produce json
// @Param formId path string true "Form schema ID"
// @Param body body progressBody true "Form session state"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /schemas/{formId}/progress [post]
func (h *SchemaHandler) EvaluateProgress(c *fiber.Ctx) error {
	formID := c.Params("formId")

	s, err := h.Registry.Get(formID)
	if err != nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Schema '%s' not found", formID))
	}

	var body progressBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "schema.progress.input")
	}

	state := forms.NewFormState(formID, schema.Frequency(body.Frequency))
	if body.Values != nil {
		state.Values = body.Values
	}
	for _, sectionID := range body.CompletedSections.Slice() {
		state.MarkSectionComplete(sectionID)
	}
	state.InspectorSignature = body.InspectorSignature
	state.ClientSignature = body.ClientSignature

	sections := make([]sectionEvaluation, 0, len(s.Sections))
	for i := range s.Sections {
		sec := &s.Sections[i]
		sections = append(sections, sectionEvaluation{
			ID:         sec.ID,
			Visible:    forms.SectionVisible(sec, state.SelectedFrequency),
			CanAdvance: forms.CanAdvance(s, sec.ID, state),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"progress": forms.Progress(forms.MilestonesFor(s), state),
		"sections": sections,
	})
}
