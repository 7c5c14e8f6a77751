//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lessonbook/internal/handler/api"
	resdto "lessonbook/internal/handler/dto/response"
	"lessonbook/internal/usecase"
	"lessonbook/internal/usecase/readmodel"
	"lessonbook/tests/common/httptest"
	usecasemock "lessonbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConfirmHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockConfirm *usecasemock.MockConfirmUseCase
	handler     *api.ConfirmHandler
	sessionID   uuid.UUID
	userID      uuid.UUID
	authed      bool
}

func (s *ConfirmHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockConfirm = usecasemock.NewMockConfirmUseCase(s.mockCtrl)
	s.handler = api.NewConfirmHandler(s.mockConfirm)
	s.sessionID = uuid.New()
	s.userID = uuid.New()
	s.authed = false

	// Mimics BookingSession plus OptionalAuth: the session is always
	// present, the user only when the test flips authed.
	contextMiddleware := func(c *gin.Context) {
		c.Set("booking_session_id", s.sessionID)
		if s.authed {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.POST("/booking/confirm", contextMiddleware, s.handler.Confirm)
}

func (s *ConfirmHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConfirmHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConfirmHandlerTestSuite))
}

func (s *ConfirmHandlerTestSuite) TestConfirm() {
	url := "/booking/confirm"

	s.Run("success: 201 with the booked lesson IDs", func() {
		s.authed = true
		rm := &readmodel.ConfirmationRM{
			LessonIDs:    []uuid.UUID{uuid.New(), uuid.New()},
			SpentCredits: 20,
		}
		s.mockConfirm.EXPECT().
			Confirm(gomock.Any(), s.sessionID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, userID *uuid.UUID) (*readmodel.ConfirmationRM, error) {
				s.Require().NotNil(userID)
				s.Equal(s.userID, *userID)
				return rm, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rm.LessonIDs, body.LessonIDs)
		s.Equal(20, body.SpentCredits)
	})

	s.Run("error: 401 with AUTH_REQUIRED for anonymous callers", func() {
		s.authed = false
		s.mockConfirm.EXPECT().
			Confirm(gomock.Any(), s.sessionID, gomock.Nil()).
			Return(nil, &usecase.ConfirmationError{Code: usecase.CodeAuthRequired})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(string(usecase.CodeAuthRequired), body["code"])
	})

	s.Run("error: 402 reports the missing credits", func() {
		s.authed = true
		s.mockConfirm.EXPECT().
			Confirm(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, &usecase.ConfirmationError{
				Code:           usecase.CodeInsufficientCredits,
				MissingCredits: 5,
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusPaymentRequired, rec.Code)

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(string(usecase.CodeInsufficientCredits), body["code"])
		s.Equal(float64(5), body["missingCredits"])
	})

	s.Run("error: 409 lists the stale slots", func() {
		s.authed = true
		s.mockConfirm.EXPECT().
			Confirm(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, &usecase.ConfirmationError{
				Code: usecase.CodeSlotUnavailable,
				UnavailableSlots: []readmodel.SlotRM{
					{Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00"},
				},
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)

		var body struct {
			Code  string                `json:"code"`
			Slots []resdto.SlotResponse `json:"slots"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(string(usecase.CodeSlotUnavailable), body.Code)
		s.Require().Len(body.Slots, 1)
		s.Equal("2026-09-10", body.Slots[0].Date)
	})

	s.Run("error: 404 when there is no draft", func() {
		s.authed = true
		s.mockConfirm.EXPECT().
			Confirm(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, usecase.ErrDraftNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking draft to confirm")
	})
}
