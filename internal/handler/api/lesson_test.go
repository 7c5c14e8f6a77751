//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lessonbook/internal/handler/api"
	resdto "lessonbook/internal/handler/dto/response"
	"lessonbook/internal/usecase"
	"lessonbook/internal/usecase/readmodel"
	"lessonbook/tests/common/builder"
	"lessonbook/tests/common/httptest"
	usecasemock "lessonbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LessonHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLesson *usecasemock.MockLessonUseCase
	handler    *api.LessonHandler
	userID     uuid.UUID
}

func (s *LessonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLesson = usecasemock.NewMockLessonUseCase(s.mockCtrl)
	s.handler = api.NewLessonHandler(s.mockLesson)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}

	lessons := s.router.Group("/lessons", authMiddleware)
	lessons.GET("", s.handler.GetUserLessons)
	lessons.GET("/:id", s.handler.GetLesson)
	lessons.GET("/:id/cancellation", s.handler.PreviewCancellation)
	lessons.POST("/:id/cancel", s.handler.CancelLesson)
}

func (s *LessonHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLessonHandlerSuite(t *testing.T) {
	suite.Run(t, new(LessonHandlerTestSuite))
}

func (s *LessonHandlerTestSuite) TestGetUserLessons() {
	s.Run("success: returns the user's lessons ordered by slot", func() {
		rms := []*readmodel.LessonRM{
			builder.NewLessonBuilder().WithUserID(s.userID).BuildRM(),
			builder.NewLessonBuilder().WithUserID(s.userID).
				WithSlot(builder.SlotSpec{Date: "2026-09-11", StartTime: "14:00", EndTime: "15:00"}).
				BuildRM(),
		}
		s.mockLesson.EXPECT().GetUserLessons(gomock.Any(), s.userID).Return(rms, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons", nil, "")

		var body []resdto.LessonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(rms[0].ID, body[0].ID)
		s.Equal("2026-09-11", body[1].Slot.Date)
	})

	s.Run("success: empty list when nothing is booked", func() {
		s.mockLesson.EXPECT().GetUserLessons(gomock.Any(), s.userID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons", nil, "")

		var body []resdto.LessonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *LessonHandlerTestSuite) TestGetLesson() {
	s.Run("success: returns the lesson", func() {
		rm := builder.NewLessonBuilder().WithUserID(s.userID).BuildRM()
		s.mockLesson.EXPECT().GetLesson(gomock.Any(), s.userID, rm.ID).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons/"+rm.ID.String(), nil, "")

		var body resdto.LessonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rm.ID, body.ID)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 on a malformed lesson ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lesson ID format")
	})

	s.Run("error: 404 when the lesson is missing", func() {
		id := uuid.New()
		s.mockLesson.EXPECT().GetLesson(gomock.Any(), s.userID, id).Return(nil, usecase.ErrLessonNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lesson not found")
	})
}

func (s *LessonHandlerTestSuite) TestPreviewCancellation() {
	s.Run("success: returns the current refund tier", func() {
		id := uuid.New()
		rm := &readmodel.CancellationPreviewRM{
			LessonID:        id,
			RefundPercent:   70,
			FeePercent:      30,
			Severity:        "medium",
			HoursUntilStart: 3.0,
			RefundCredits:   7,
		}
		s.mockLesson.EXPECT().PreviewCancellation(gomock.Any(), s.userID, id).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons/"+id.String()+"/cancellation", nil, "")

		var body resdto.CancellationPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(70, body.RefundPercent)
		s.Equal("medium", body.Severity)
		s.Equal(7, body.RefundCredits)
	})

	s.Run("error: 409 for a lesson that cannot be cancelled", func() {
		id := uuid.New()
		s.mockLesson.EXPECT().
			PreviewCancellation(gomock.Any(), s.userID, id).
			Return(nil, usecase.ErrLessonNotCancellable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lessons/"+id.String()+"/cancellation", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Lesson cannot be cancelled")
	})
}

func (s *LessonHandlerTestSuite) TestCancelLesson() {
	s.Run("success: cancels and reports the refund", func() {
		id := uuid.New()
		rm := &readmodel.CancellationResultRM{
			LessonID:        id,
			RefundedCredits: 10,
			RefundPercent:   100,
			Severity:        "safe",
		}
		s.mockLesson.EXPECT().CancelLesson(gomock.Any(), s.userID, id).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lessons/"+id.String()+"/cancel", nil, "")

		var body resdto.CancellationResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(10, body.RefundedCredits)
		s.Equal("safe", body.Severity)
	})

	s.Run("error: 404 for someone else's lesson", func() {
		id := uuid.New()
		s.mockLesson.EXPECT().
			CancelLesson(gomock.Any(), s.userID, id).
			Return(nil, usecase.ErrLessonNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lessons/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lesson not found")
	})

	s.Run("error: 409 when the lesson was already cancelled", func() {
		id := uuid.New()
		s.mockLesson.EXPECT().
			CancelLesson(gomock.Any(), s.userID, id).
			Return(nil, usecase.ErrLessonNotCancellable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lessons/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Lesson cannot be cancelled")
	})
}
