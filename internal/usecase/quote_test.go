//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/usecase"
	"lessonbook/tests/common/builder"
	usecasemock "lessonbook/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteUseCaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *usecasemock.MockDraftStore
	availability *usecasemock.MockAvailabilityChecker
	uc           usecase.QuoteUseCase
	sessionID    uuid.UUID
}

func (s *QuoteUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = usecasemock.NewMockDraftStore(s.ctrl)
	s.availability = usecasemock.NewMockAvailabilityChecker(s.ctrl)

	uc, err := usecase.NewQuoteUseCase(s.store, s.availability, 16)
	s.Require().NoError(err)
	s.uc = uc
	s.sessionID = uuid.New()
}

func (s *QuoteUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQuoteUseCaseSuite(t *testing.T) {
	suite.Run(t, new(QuoteUseCaseTestSuite))
}

func (s *QuoteUseCaseTestSuite) TestGetQuote() {
	ctx := context.Background()

	s.Run("absent draft reports not found", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(nil, nil)

		_, err := s.uc.GetQuote(ctx, s.sessionID)
		s.ErrorIs(err, usecase.ErrDraftNotFound)
	})

	s.Run("prices the draft at rate times slot count", func() {
		draft := builder.NewDraftBuilder().WithCreditsPerLesson(10).BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(draft, nil)
		s.availability.EXPECT().
			UnavailableSlots(ctx, draft.Instructor().ID(), gomock.Any()).
			Return(nil, nil)

		rm, err := s.uc.GetQuote(ctx, s.sessionID)
		s.Require().NoError(err)

		s.Equal(20, rm.RequiredCredits)
		s.Equal(string(booking.AvailabilityAvailable), rm.Availability)
		s.Len(rm.PerSlot, 2)
		s.Equal(10, rm.PerSlot[0].Credits)
		s.Equal(draft.Signature(), rm.Signature)
	})

	s.Run("any unavailable slot marks the whole quote unavailable", func() {
		draft := builder.NewDraftBuilder().BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(draft, nil)
		s.availability.EXPECT().
			UnavailableSlots(ctx, draft.Instructor().ID(), gomock.Any()).
			Return(draft.Slots()[:1], nil)

		rm, err := s.uc.GetQuote(ctx, s.sessionID)
		s.Require().NoError(err)
		s.Equal(string(booking.AvailabilityUnavailable), rm.Availability)
	})

	s.Run("an unchanged slot set is served from cache", func() {
		draft := builder.NewDraftBuilder().BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(draft, nil).Times(2)
		// One availability check covers both calls.
		s.availability.EXPECT().
			UnavailableSlots(ctx, draft.Instructor().ID(), gomock.Any()).
			Return(nil, nil).Times(1)

		first, err := s.uc.GetQuote(ctx, s.sessionID)
		s.Require().NoError(err)
		second, err := s.uc.GetQuote(ctx, s.sessionID)
		s.Require().NoError(err)

		s.Empty(cmp.Diff(first, second))
	})

	s.Run("a changed slot set recomputes", func() {
		draft := builder.NewDraftBuilder().BuildDomain()
		changed := builder.NewDraftBuilder().
			WithInstructorID(draft.Instructor().ID()).
			WithSlots(builder.SlotSpec{Date: "2026-09-20", StartTime: "08:00", EndTime: "09:00"}).
			BuildDomain()

		gomock.InOrder(
			s.store.EXPECT().Load(ctx, s.sessionID).Return(draft, nil),
			s.store.EXPECT().Load(ctx, s.sessionID).Return(changed, nil),
		)
		s.availability.EXPECT().
			UnavailableSlots(ctx, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(2)

		first, err := s.uc.GetQuote(ctx, s.sessionID)
		s.Require().NoError(err)
		second, err := s.uc.GetQuote(ctx, s.sessionID)
		s.Require().NoError(err)

		s.NotEqual(first.Signature, second.Signature)
	})

	s.Run("availability failure is marked", func() {
		draft := builder.NewDraftBuilder().BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(draft, nil)
		s.availability.EXPECT().
			UnavailableSlots(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("calendar service down"))

		_, err := s.uc.GetQuote(ctx, s.sessionID)
		s.ErrorIs(err, usecase.ErrAvailabilityCheckFailed)
	})
}
