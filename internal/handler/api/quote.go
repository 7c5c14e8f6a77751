package api

import (
	"errors"
	"net/http"

	resdto "lessonbook/internal/handler/dto/response"
	"lessonbook/internal/handler/middleware"
	"lessonbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteUseCase usecase.QuoteUseCase
}

func NewQuoteHandler(quoteUseCase usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{
		quoteUseCase: quoteUseCase,
	}
}

// @Summary Get booking quote
// @Description Price the current draft and report slot availability
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /booking/quote [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	sessionID, ok := middleware.GetBookingSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	quoteRM, err := h.quoteUseCase.GetQuote(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking draft to quote",
			})
		case errors.Is(err, usecase.ErrAvailabilityCheckFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Availability check failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteRM(quoteRM))
}
