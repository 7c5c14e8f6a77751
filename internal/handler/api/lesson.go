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

type LessonHandler struct {
	lessonUseCase usecase.LessonUseCase
}

func NewLessonHandler(lessonUseCase usecase.LessonUseCase) *LessonHandler {
	return &LessonHandler{
		lessonUseCase: lessonUseCase,
	}
}

// @Summary Get user lessons
// @Description Get all lessons booked by the current user
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LessonResponse
// @Failure 401 {object} map[string]string
// @Router /lessons [get]
func (h *LessonHandler) GetUserLessons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lessonsRM, err := h.lessonUseCase.GetUserLessons(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.LessonResponse, len(lessonsRM))
	for i, rm := range lessonsRM {
		response[i] = resdto.FromLessonRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get lesson
// @Description Get lesson by ID
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.LessonResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id} [get]
func (h *LessonHandler) GetLesson(c *gin.Context) {
	userID, lessonID, ok := h.identifiers(c)
	if !ok {
		return
	}

	lessonRM, err := h.lessonUseCase.GetLesson(c.Request.Context(), userID, lessonID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lesson not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessonRM(lessonRM))
}

// @Summary Preview cancellation
// @Description Compute the refund tier for cancelling a lesson now
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.CancellationPreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons/{id}/cancellation [get]
func (h *LessonHandler) PreviewCancellation(c *gin.Context) {
	userID, lessonID, ok := h.identifiers(c)
	if !ok {
		return
	}

	previewRM, err := h.lessonUseCase.PreviewCancellation(c.Request.Context(), userID, lessonID)
	if err != nil {
		h.writeCancellationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationPreviewRM(previewRM))
}

// @Summary Cancel lesson
// @Description Cancel a confirmed lesson and refund credits per policy
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.CancellationResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons/{id}/cancel [post]
func (h *LessonHandler) CancelLesson(c *gin.Context) {
	userID, lessonID, ok := h.identifiers(c)
	if !ok {
		return
	}

	resultRM, err := h.lessonUseCase.CancelLesson(c.Request.Context(), userID, lessonID)
	if err != nil {
		h.writeCancellationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationResultRM(resultRM))
}

func (h *LessonHandler) identifiers(c *gin.Context) (userID, lessonID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, lessonID, true
}

func (h *LessonHandler) writeCancellationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lesson not found",
		})
	case errors.Is(err, usecase.ErrLessonNotCancellable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Lesson cannot be cancelled",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
