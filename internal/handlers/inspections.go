// inspections.go
//
// Parent inspection lifecycle: create/patch, sub-form selection and the
// one-way sub-form completion that drives aggregate progress.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/services"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/utils"
	"gorm.io/gorm"
)

// InspectionHandler handles parent inspection routes
type InspectionHandler struct {
	DB       *gorm.DB
	Registry *schema.Registry
}

// CreateInspection handles POST /api/inspections
// @Summary Create a parent inspection
// @Description Create the parent record of a multi-system inspection visit
// @Tags Inspections
// @Accept json
// @Produce json
// @Param body body services.InspectionInput true "Inspection data"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inspections [post]
func (h *InspectionHandler) CreateInspection(c *fiber.Ctx) error {
	var body struct {
		services.InspectionInput
		SelectedFormIDs types.FlexList[string] `json:"selectedFormIds"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "inspection.validation.input")
	}

	in := body.InspectionInput
	in.ID = ""
	in.UserID = userID(c)
	in.SelectedFormIDs = body.SelectedFormIDs.Slice()

	for _, formID := range in.SelectedFormIDs {
		if !h.Registry.Has(formID) {
			return utils.ErrorResponse(c, "Unknown form id: "+formID, fiber.StatusBadRequest, "inspection.validation.form")
		}
	}

	id, err := services.CreateOrUpdateInspection(h.DB, &in)
	if err != nil {
		if ce, ok := err.(*types.CustomError); ok {
			return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createInspection")
	}

	return utils.MutationSuccessResponse(c, id)
}

// UpdateInspection handles PATCH /api/inspections/:id
// @Summary Patch a parent inspection
// @Description Update facility, address, company or selected forms of an inspection
// @Tags Inspections
// @Accept json
// @Produce json
// @Param id path string true "Inspection ID"
// @Param body body services.InspectionInput true "Fields to update"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inspections/{id} [patch]
func (h *InspectionHandler) UpdateInspection(c *fiber.Ctx) error {
	var body struct {
		services.InspectionInput
		SelectedFormIDs types.FlexList[string] `json:"selectedFormIds"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "inspection.validation.input")
	}

	in := body.InspectionInput
	in.ID = c.Params("id")
	in.UserID = userID(c)
	in.SelectedFormIDs = body.SelectedFormIDs.Slice()

	for _, formID := range in.SelectedFormIDs {
		if !h.Registry.Has(formID) {
			return utils.ErrorResponse(c, "Unknown form id: "+formID, fiber.StatusBadRequest, "inspection.validation.form")
		}
	}

	id, err := services.CreateOrUpdateInspection(h.DB, &in)
	if err != nil {
		if ce, ok := err.(*types.CustomError); ok {
			return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
		}
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Inspection not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateInspection")
	}

	return utils.MutationSuccessResponse(c, id)
}

// GetInspection handles GET /api/inspections/:id
// @Summary Get a parent inspection
// @Tags Inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} models.Inspection
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inspections/{id} [get]
func (h *InspectionHandler) GetInspection(c *fiber.Ctx) error {
	insp, err := services.GetInspection(h.DB, c.Params("id"))
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Inspection not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getInspection")
	}
	return c.Status(fiber.StatusOK).JSON(insp)
}

// CompleteSubForm handles POST /api/inspections/:id/forms/:formId/complete
// @Summary Mark a sub-form complete
// @Description One-way completion of one sub-form; recomputes aggregate progress
// @Tags Inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Param formId path string true "Sub-form ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inspections/{id}/forms/{formId}/complete [post]
func (h *InspectionHandler) CompleteSubForm(c *fiber.Ctx) error {
	inspectionID := c.Params("id")
	formID := c.Params("formId")

	m, err := services.LoadMultiFormInspection(h.DB, inspectionID)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Inspection not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "completeSubForm")
	}

	if err := m.MarkSubFormComplete(h.DB, formID); err != nil {
		if ce, ok := err.(*types.CustomError); ok {
			return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
		}
		// The completion marking itself is preserved; the caller is told
		// the save did not take effect and should retry.
		return utils.ErrorResponse(c, "O progresso não pôde ser salvo; tente novamente", fiber.StatusInternalServerError, "completeSubForm.persist")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":       true,
		"progress": m.Progress,
		"status":   m.Status,
	})
}
