//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"lessonbook/internal/domain/cancellation"
	"lessonbook/internal/domain/lesson"
	"lessonbook/internal/pkg/clock"
	"lessonbook/internal/usecase"
	"lessonbook/tests/common/builder"
	"lessonbook/tests/common/dbtest"
	usecasemock "lessonbook/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LessonUseCaseTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	lessons *usecasemock.MockLessonRepository
	ledger  *usecasemock.MockCreditLedger
	db      *dbtest.FakeDB
	clock   *clock.FixedClock
	uc      usecase.LessonUseCase
	userID  uuid.UUID
}

func (s *LessonUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lessons = usecasemock.NewMockLessonRepository(s.ctrl)
	s.ledger = usecasemock.NewMockCreditLedger(s.ctrl)
	s.db = &dbtest.FakeDB{}
	// The default lesson starts 2026-09-10 10:00 UTC; the clock is placed
	// per test to land in a specific refund tier.
	s.clock = clock.NewFixedClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	s.uc = usecase.NewLessonUseCase(s.lessons, s.ledger, s.db, s.clock, time.UTC)
	s.userID = uuid.New()
}

func (s *LessonUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLessonUseCaseSuite(t *testing.T) {
	suite.Run(t, new(LessonUseCaseTestSuite))
}

func (s *LessonUseCaseTestSuite) ownedLesson() *lesson.Lesson {
	return builder.NewLessonBuilder().WithUserID(s.userID).BuildDomain()
}

func (s *LessonUseCaseTestSuite) TestGetLesson() {
	ctx := context.Background()

	s.Run("returns an owned lesson", func() {
		l := s.ownedLesson()
		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)

		rm, err := s.uc.GetLesson(ctx, s.userID, l.ID())
		s.Require().NoError(err)
		s.Equal(l.ID(), rm.ID)
		s.Equal("confirmed", rm.Status)
	})

	s.Run("missing lesson reports not found", func() {
		id := uuid.New()
		s.lessons.EXPECT().FindByID(ctx, id).Return(nil, nil)

		_, err := s.uc.GetLesson(ctx, s.userID, id)
		s.ErrorIs(err, usecase.ErrLessonNotFound)
	})

	s.Run("another user's lesson is indistinguishable from absence", func() {
		other := builder.NewLessonBuilder().BuildDomain()
		s.lessons.EXPECT().FindByID(ctx, other.ID()).Return(other, nil)

		_, err := s.uc.GetLesson(ctx, s.userID, other.ID())
		s.ErrorIs(err, usecase.ErrLessonNotFound)
	})
}

func (s *LessonUseCaseTestSuite) TestPreviewCancellation() {
	ctx := context.Background()

	s.Run("three hours out lands in the 70 percent tier", func() {
		l := s.ownedLesson()
		s.clock.Set(time.Date(2026, 9, 10, 7, 0, 0, 0, time.UTC))
		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)

		rm, err := s.uc.PreviewCancellation(ctx, s.userID, l.ID())
		s.Require().NoError(err)

		s.Equal(70, rm.RefundPercent)
		s.Equal(30, rm.FeePercent)
		s.Equal(string(cancellation.SeverityMedium), rm.Severity)
		s.Equal(7, rm.RefundCredits)
		s.InDelta(3.0, rm.HoursUntilStart, 1e-9)
	})

	s.Run("cancelled lesson has no preview", func() {
		l := builder.NewLessonBuilder().
			WithUserID(s.userID).
			AsCancelled(time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)).
			BuildDomain()
		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)

		_, err := s.uc.PreviewCancellation(ctx, s.userID, l.ID())
		s.ErrorIs(err, usecase.ErrLessonNotCancellable)
	})
}

func (s *LessonUseCaseTestSuite) TestCancelLesson() {
	ctx := context.Background()

	s.Run("cancels and refunds per the execution-time tier", func() {
		l := s.ownedLesson()
		now := time.Date(2026, 9, 9, 8, 0, 0, 0, time.UTC) // 26h out, full refund
		s.clock.Set(now)

		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)
		s.lessons.EXPECT().MarkCancelled(ctx, gomock.Any(), l.ID(), now).Return(true, nil)
		s.ledger.EXPECT().Refund(ctx, gomock.Any(), s.userID, l.ID(), 10).Return(nil)

		rm, err := s.uc.CancelLesson(ctx, s.userID, l.ID())
		s.Require().NoError(err)

		s.Equal(10, rm.RefundedCredits)
		s.Equal(100, rm.RefundPercent)
		s.Equal(string(cancellation.SeveritySafe), rm.Severity)
		s.Require().NotNil(s.db.LastTx)
		s.True(s.db.LastTx.Committed)
	})

	s.Run("critical tier cancels without touching the ledger", func() {
		l := s.ownedLesson()
		now := time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC) // 30min out
		s.clock.Set(now)

		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)
		s.lessons.EXPECT().MarkCancelled(ctx, gomock.Any(), l.ID(), now).Return(true, nil)
		s.ledger.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rm, err := s.uc.CancelLesson(ctx, s.userID, l.ID())
		s.Require().NoError(err)

		s.Equal(0, rm.RefundedCredits)
		s.Equal(string(cancellation.SeverityCritical), rm.Severity)
	})

	s.Run("losing the cancellation race never refunds", func() {
		l := s.ownedLesson()
		now := time.Date(2026, 9, 9, 8, 0, 0, 0, time.UTC)
		s.clock.Set(now)

		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)
		s.lessons.EXPECT().MarkCancelled(ctx, gomock.Any(), l.ID(), now).Return(false, nil)
		s.ledger.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.CancelLesson(ctx, s.userID, l.ID())
		s.ErrorIs(err, usecase.ErrLessonNotCancellable)
	})

	s.Run("cancelled lesson is rejected before the transaction", func() {
		l := builder.NewLessonBuilder().
			WithUserID(s.userID).
			AsCancelled(time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)).
			BuildDomain()
		s.lessons.EXPECT().FindByID(ctx, l.ID()).Return(l, nil)
		s.lessons.EXPECT().MarkCancelled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.CancelLesson(ctx, s.userID, l.ID())
		s.ErrorIs(err, usecase.ErrLessonNotCancellable)
	})
}
