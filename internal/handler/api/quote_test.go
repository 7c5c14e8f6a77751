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

type QuoteHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockQuote *usecasemock.MockQuoteUseCase
	handler   *api.QuoteHandler
	sessionID uuid.UUID
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuote = usecasemock.NewMockQuoteUseCase(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQuote)
	s.sessionID = uuid.New()

	sessionMiddleware := func(c *gin.Context) {
		c.Set("booking_session_id", s.sessionID)
		c.Next()
	}

	s.router.GET("/booking/quote", sessionMiddleware, s.handler.GetQuote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestGetQuote() {
	url := "/booking/quote"

	s.Run("success: returns the priced draft", func() {
		rm := &readmodel.QuoteRM{
			RequiredCredits: 20,
			Availability:    "available",
			PerSlot: []readmodel.SlotPriceRM{
				{Slot: readmodel.SlotRM{Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00"}, Credits: 10},
				{Slot: readmodel.SlotRM{Date: "2026-09-11", StartTime: "14:00", EndTime: "15:00"}, Credits: 10},
			},
			Signature: "2026-09-10|10:00|11:00;2026-09-11|14:00|15:00",
		}
		s.mockQuote.EXPECT().GetQuote(gomock.Any(), s.sessionID).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(20, body.RequiredCredits)
		s.Equal("available", body.Availability)
		s.Len(body.PerSlot, 2)
		s.Equal(rm.Signature, body.Signature)
	})

	s.Run("error: 404 without a draft", func() {
		s.mockQuote.EXPECT().GetQuote(gomock.Any(), s.sessionID).Return(nil, usecase.ErrDraftNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking draft to quote")
	})

	s.Run("error: 502 when availability cannot be checked", func() {
		s.mockQuote.EXPECT().GetQuote(gomock.Any(), s.sessionID).Return(nil, usecase.ErrAvailabilityCheckFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Availability check failed")
	})
}
