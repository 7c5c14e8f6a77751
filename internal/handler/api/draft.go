package api

import (
	"errors"
	"net/http"

	reqdto "lessonbook/internal/handler/dto/request"
	resdto "lessonbook/internal/handler/dto/response"
	"lessonbook/internal/handler/middleware"
	"lessonbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	draftUseCase usecase.DraftUseCase
}

func NewDraftHandler(draftUseCase usecase.DraftUseCase) *DraftHandler {
	return &DraftHandler{
		draftUseCase: draftUseCase,
	}
}

// @Summary Get booking draft
// @Description Get the current booking draft for this session
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /booking/draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	draftRM, err := h.draftUseCase.Get(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking draft",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftRM(draftRM))
}

// @Summary Set draft slots
// @Description Replace the draft's slot selection for an instructor
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SetSlotsRequest true "Slot selection"
// @Success 200 {object} resdto.DraftResponse
// @Success 204 "Draft cleared by empty selection"
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/draft [put]
func (h *DraftHandler) SetSlots(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draftRM, err := h.draftUseCase.SetSlots(c.Request.Context(), sessionID, req.Instructor.ToMeta(), req.ToInputs())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSlot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid slot",
			})
		case errors.Is(err, usecase.ErrInvalidInstructor):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid instructor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// An empty selection collapses the draft to absence.
	if draftRM == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftRM(draftRM))
}

// @Summary Remove draft slot
// @Description Remove a single slot from the draft
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.RemoveSlotRequest true "Slot to remove"
// @Success 200 {object} resdto.DraftResponse
// @Success 204 "Last slot removed, draft gone"
// @Failure 400 {object} map[string]string
// @Router /booking/draft/slots [delete]
func (h *DraftHandler) RemoveSlot(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RemoveSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draftRM, err := h.draftUseCase.RemoveSlot(c.Request.Context(), sessionID, req.Slot.ToInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if draftRM == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftRM(draftRM))
}

// @Summary Clear booking draft
// @Description Discard the draft for this session
// @Tags booking
// @Success 204
// @Router /booking/draft [delete]
func (h *DraftHandler) ClearDraft(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.draftUseCase.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle summary panel
// @Description Persist whether the booking summary panel is open
// @Tags booking
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /booking/draft/summary [post]
func (h *DraftHandler) SetSummary(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SummaryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.draftUseCase.SetSummaryOpen(c.Request.Context(), sessionID, *req.Open); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
