package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/services"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/utils"
	"gorm.io/gorm"
)

// DraftHandler persists in-progress form values keyed by session and draft
// key. Writes are last-write-wins; there is no version negotiation.
type DraftHandler struct {
	DB *gorm.DB
}

// sessionKey reads the caller's draft session, header first then query.
func sessionKey(c *fiber.Ctx) string {
	if key := c.Get("X-Session-Key"); key != "" {
		return key
	}
	return c.Query("session")
}

// SaveDraft handles PUT /api/drafts/:key
// @Summary Save a draft
// @Description Store a draft value under the caller's session; the newest write wins
// @Tags Drafts
// @Accept json
// @Produce json
// @Param key path string true "Draft key"
// @Param X-Session-Key header string true "Session key"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /drafts/{key} [put]
func (h *DraftHandler) SaveDraft(c *fiber.Ctx) error {
	session := sessionKey(c)
	if session == "" {
		return utils.ErrorResponse(c, "Session key is required", fiber.StatusBadRequest, "drafts.session")
	}

	var value interface{}
	if err := json.Unmarshal(c.Body(), &value); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "drafts.input")
	}

	if err := services.SaveDraft(h.DB, session, c.Params("key"), value); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "saveDraft")
	}
	return utils.SuccessResponse(c, fiber.Map{"saved": true}, fiber.StatusOK)
}

// GetDraft handles GET /api/drafts/:key
// @Summary Read a draft
// @Tags Drafts
// @Produce json
// @Param key path string true "Draft key"
// @Param X-Session-Key header string true "Session key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /drafts/{key} [get]
func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	session := sessionKey(c)
	if session == "" {
		return utils.ErrorResponse(c, "Session key is required", fiber.StatusBadRequest, "drafts.session")
	}

	var value interface{}
	if err := services.GetDraft(h.DB, session, c.Params("key"), &value); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Draft not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getDraft")
	}
	return c.Status(fiber.StatusOK).JSON(value)
}

// DeleteDraft handles DELETE /api/drafts/:key
// @Summary Delete a draft
// @Tags Drafts
// @Produce json
// @Param key path string true "Draft key"
// @Param X-Session-Key header string true "Session key"
// @Success 200 {object} map[string]interface{}
// @Router /drafts/{key} [delete]
func (h *DraftHandler) DeleteDraft(c *fiber.Ctx) error {
	session := sessionKey(c)
	if session == "" {
		return utils.ErrorResponse(c, "Session key is required", fiber.StatusBadRequest, "drafts.session")
	}

	if err := services.DeleteDraft(h.DB, session, c.Params("key")); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteDraft")
	}
	return utils.SuccessResponse(c, fiber.Map{"deleted": true}, fiber.StatusOK)
}
