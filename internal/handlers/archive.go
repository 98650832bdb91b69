// archive.go
//
// Archive submission endpoints and the archived-report listing. Both archive
// routes run the same workflow; the only difference is whether a known
// inspection id scopes the persistence target.

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/forms"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/pdf"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/services"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ArchiveHandler handles archive submissions and report listings
type ArchiveHandler struct {
	DB       *gorm.DB
	Registry *schema.Registry
	Renderer pdf.Renderer
	Store    services.ArchiveStore
	Cache    *services.ReportCache
	Notifier services.Notifier
	Delays   services.PacingDelays
}

// archiveBody is the inbound archive submission.
type archiveBody struct {
	FormID             string                 `json:"formId"`
	Frequency          string                 `json:"frequency"`
	SessionKey         string                 `json:"sessionKey"`
	CompanyID          string                 `json:"companyId"`
	PropertyName       string                 `json:"propertyName"`
	PropertyAddress    string                 `json:"propertyAddress"`
	Values             map[string]interface{} `json:"values"`
	InspectorSignature forms.SignatureBlock   `json:"inspectorSignature"`
	ClientSignature    forms.SignatureBlock   `json:"clientSignature"`
}

// ArchiveReport handles POST /api/reports/archived
// @Summary Archive a standalone report
// @Description Validate, render and persist an archived report for a finalized checklist
// @Tags Archive
// @Accept json
// @Produce json
// @Param body body archiveBody true "Finalized form submission"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /reports/archived [post]
func (h *ArchiveHandler) ArchiveReport(c *fiber.Ctx) error {
	return h.archive(c, "")
}

// ArchiveInspection handles POST /api/inspections/:id/archive
// @Summary Archive a known inspection
// @Description Archive a finalized checklist against its parent inspection; replays are idempotent
// @Tags Archive
// @Accept json
// @Produce json
// @Param id path string true "Inspection ID"
// @Param body body archiveBody true "Finalized form submission"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /inspections/{id}/archive [post]
func (h *ArchiveHandler) ArchiveInspection(c *fiber.Ctx) error {
	return h.archive(c, c.Params("id"))
}

func (h *ArchiveHandler) archive(c *fiber.Ctx, inspectionID string) error {
	var body archiveBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "archive.validation.input")
	}
	if body.FormID == "" {
		return utils.ErrorResponse(c, "formId is required", fiber.StatusBadRequest, "archive.validation.input")
	}

	state := forms.NewFormState(body.FormID, schema.Frequency(body.Frequency))
	state.Values = body.Values
	if state.Values == nil {
		state.Values = make(map[string]interface{})
	}
	state.CompanyID = body.CompanyID
	state.Property = forms.PropertyRef{Name: body.PropertyName, Address: body.PropertyAddress}
	state.InspectorSignature = body.InspectorSignature
	state.InspectorSignature.Role = forms.RoleInspector
	state.ClientSignature = body.ClientSignature
	state.ClientSignature.Role = forms.RoleClient

	branding, logo := h.resolveBranding(body.CompanyID)

	workflow := &services.ArchiveWorkflow{
		Registry:     h.Registry,
		Renderer:     h.Renderer,
		Store:        h.Store,
		Cache:        h.Cache,
		Notifier:     h.Notifier,
		Delays:       h.Delays,
		DraftCleanup: h.draftCleanup,
	}

	result := workflow.Run(c.Context(), &services.ArchiveRequest{
		UserID:       userID(c),
		InspectionID: inspectionID,
		SessionKey:   body.SessionKey,
		State:        state,
		Validator:    signaturesValidator(state),
		Branding:     branding,
		Logo:         logo,
	})

	switch result.State {
	case services.StateSuccessNew, services.StateSuccessReplay:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":      true,
			"record":  result.Record,
			"already": result.Already,
		})
	default:
		if len(result.ValidationErrors) > 0 {
			return utils.ValidationErrorResponse(c, result.ValidationErrors)
		}
		msg := "Não foi possível arquivar o relatório"
		if result.Err != nil {
			msg = result.Err.UserMessage()
		}
		return utils.ErrorResponse(c, msg, fiber.StatusBadGateway, "archive.persist")
	}
}

// ListArchivedReports handles GET /api/reports/archived
// @Summary List archived reports
// @Description List the acting user's archived reports, newest first
// @Tags Archive
// @Produce json
// @Param forms query string false "Comma-separated form ids to filter"
// @Success 200 {array} models.ArchivedReport
// @Router /reports/archived [get]
func (h *ArchiveHandler) ListArchivedReports(c *fiber.Ctx) error {
	reports, err := services.ListArchivedReports(h.DB, h.Cache, userID(c))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listArchivedReports")
	}

	if formIDs := parseQueryList(c, "forms"); len(formIDs) > 0 {
		wanted := make(map[string]struct{}, len(formIDs))
		for _, id := range formIDs {
			wanted[id] = struct{}{}
		}
		filtered := make([]models.ArchivedReport, 0, len(reports))
		for _, r := range reports {
			if _, ok := wanted[r.FormID]; ok {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	return c.Status(fiber.StatusOK).JSON(reports)
}

// GetArchivedReport handles GET /api/reports/archived/:id
// @Summary Get one archived report
// @Tags Archive
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} models.ArchivedReport
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reports/archived/{id} [get]
func (h *ArchiveHandler) GetArchivedReport(c *fiber.Ctx) error {
	report, err := services.GetArchivedReport(h.DB, c.Params("id"))
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Archived report not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getArchivedReport")
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// resolveBranding loads company branding for the rendered document, with a
// neutral fallback when the company is unknown.
func (h *ArchiveHandler) resolveBranding(companyID string) (pdf.Branding, pdf.LogoConfig) {
	branding := pdf.Branding{}
	logo := pdf.LogoConfig{Placement: "header"}

	if companyID == "" {
		return branding, logo
	}

	var company models.Company
	err := h.DB.Session(&gorm.Session{Logger: h.DB.Logger.LogMode(logger.Silent)}).
		Where("id = ?", companyID).
		First(&company).Error
	if err != nil {
		return branding, logo
	}

	branding.CompanyName = company.Name
	branding.LogoURL = company.LogoURL
	branding.PrimaryColor = company.PrimaryColor
	logo.ShowLogo = company.ShowLogo
	return branding, logo
}

func (h *ArchiveHandler) draftCleanup(sessionKey, draftKey string) error {
	return services.DeleteDraft(h.DB, sessionKey, draftKey)
}

// signaturesValidator enforces the finalization invariant: both signature
// blocks present with non-empty signer names. It reports every missing piece
// in one pass.
func signaturesValidator(state *forms.FormState) forms.CustomValidator {
	return func(values map[string]interface{}) forms.CustomResult {
		var errs []string
		if !state.InspectorSignature.Complete() {
			errs = append(errs, "Assinatura do Inspetor é obrigatória")
		}
		if !state.ClientSignature.Complete() {
			errs = append(errs, "Assinatura do Cliente é obrigatória")
		}
		if strings.TrimSpace(state.InspectorSignature.SignerDate) == "" {
			errs = append(errs, "Data da assinatura do Inspetor é obrigatória")
		}
		if len(errs) > 0 {
			return forms.FailWith(errs...)
		}
		return forms.Pass()
	}
}
