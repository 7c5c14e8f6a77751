package api

import (
	"errors"
	"net/http"

	resdto "lessonbook/internal/handler/dto/response"
	"lessonbook/internal/handler/middleware"
	"lessonbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConfirmHandler struct {
	confirmUseCase usecase.ConfirmUseCase
}

func NewConfirmHandler(confirmUseCase usecase.ConfirmUseCase) *ConfirmHandler {
	return &ConfirmHandler{
		confirmUseCase: confirmUseCase,
	}
}

// @Summary Confirm booking
// @Description Commit the draft into one lesson per slot
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.ConfirmationResponse
// @Failure 401 {object} map[string]any
// @Failure 402 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /booking/confirm [post]
func (h *ConfirmHandler) Confirm(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Anonymous confirmation is a legitimate request, not a transport error.
	// The usecase decides what it means.
	var userID *uuid.UUID
	if id, authed := middleware.GetUserID(c); authed {
		userID = &id
	}

	confirmationRM, err := h.confirmUseCase.Confirm(c.Request.Context(), sessionID, userID)
	if err != nil {
		var rejection *usecase.ConfirmationError
		switch {
		case errors.As(err, &rejection):
			h.writeRejection(c, rejection)
		case errors.Is(err, usecase.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking draft to confirm",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmationRM(confirmationRM))
}

func (h *ConfirmHandler) writeRejection(c *gin.Context, rejection *usecase.ConfirmationError) {
	switch rejection.Code {
	case usecase.CodeAuthRequired:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in to confirm your booking",
			"code":  string(rejection.Code),
		})
	case usecase.CodeInsufficientCredits:
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":          "Not enough credits",
			"code":           string(rejection.Code),
			"missingCredits": rejection.MissingCredits,
		})
	case usecase.CodeSlotUnavailable:
		c.JSON(http.StatusConflict, gin.H{
			"error": "Some slots are no longer available",
			"code":  string(rejection.Code),
			"slots": resdto.FromSlotRMs(rejection.UnavailableSlots),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
