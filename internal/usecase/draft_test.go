//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/pkg/clock"
	"lessonbook/internal/usecase"
	"lessonbook/tests/common/builder"
	usecasemock "lessonbook/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftUseCaseTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *usecasemock.MockDraftStore
	clock     *clock.FixedClock
	uc        usecase.DraftUseCase
	sessionID uuid.UUID
}

func (s *DraftUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = usecasemock.NewMockDraftStore(s.ctrl)
	s.clock = clock.NewFixedClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	s.uc = usecase.NewDraftUseCase(s.store, s.clock)
	s.sessionID = uuid.New()
}

func (s *DraftUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDraftUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DraftUseCaseTestSuite))
}

func (s *DraftUseCaseTestSuite) TestSetSlots() {
	ctx := context.Background()
	b := builder.NewDraftBuilder()

	s.Run("creates a fresh draft when none exists", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(nil, nil)
		s.store.EXPECT().Save(ctx, s.sessionID, gomock.Any()).Return(nil)

		rm, err := s.uc.SetSlots(ctx, s.sessionID, b.BuildInstructorMeta(), b.BuildSlotInputs())
		s.Require().NoError(err)
		s.Require().NotNil(rm)

		s.Equal(b.InstructorID, rm.InstructorID)
		s.Equal(b.CreditsPerLesson, rm.CreditsPerLesson)
		s.Len(rm.Slots, 2)
		s.False(rm.SummaryOpen)
		s.False(rm.Resumed)
	})

	s.Run("replaces slots on the existing draft for the same instructor", func() {
		existing := b.BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(existing, nil)
		s.store.EXPECT().Save(ctx, s.sessionID, existing).Return(nil)

		inputs := []usecase.SlotInput{{Date: "2026-09-20", StartTime: "08:00", EndTime: "09:00"}}
		rm, err := s.uc.SetSlots(ctx, s.sessionID, b.BuildInstructorMeta(), inputs)
		s.Require().NoError(err)
		s.Require().NotNil(rm)

		s.Equal(existing.ID(), rm.ID)
		s.Len(rm.Slots, 1)
		s.Equal("2026-09-20", rm.Slots[0].Date)
	})

	s.Run("a different instructor starts a new draft", func() {
		existing := b.BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(existing, nil)
		s.store.EXPECT().Save(ctx, s.sessionID, gomock.Any()).Return(nil)

		other := builder.NewDraftBuilder().WithCreditsPerLesson(20)
		rm, err := s.uc.SetSlots(ctx, s.sessionID, other.BuildInstructorMeta(), other.BuildSlotInputs())
		s.Require().NoError(err)
		s.Require().NotNil(rm)

		s.NotEqual(existing.ID(), rm.ID)
		s.Equal(other.InstructorID, rm.InstructorID)
		s.Equal(20, rm.CreditsPerLesson)
	})

	s.Run("empty slot set collapses the draft to absence", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(b.BuildDomain(), nil)
		s.store.EXPECT().Clear(ctx, s.sessionID).Return(nil)

		rm, err := s.uc.SetSlots(ctx, s.sessionID, b.BuildInstructorMeta(), nil)
		s.Require().NoError(err)
		s.Nil(rm)
	})

	s.Run("invalid slot input is rejected before touching the store", func() {
		s.store.EXPECT().Load(gomock.Any(), gomock.Any()).Times(0)

		inputs := []usecase.SlotInput{{Date: "2026-09-20", StartTime: "11:00", EndTime: "10:00"}}
		_, err := s.uc.SetSlots(ctx, s.sessionID, b.BuildInstructorMeta(), inputs)
		s.ErrorIs(err, usecase.ErrInvalidSlot)
	})

	s.Run("invalid instructor metadata is rejected", func() {
		meta := b.BuildInstructorMeta()
		meta.CreditsPerLesson = 0

		_, err := s.uc.SetSlots(ctx, s.sessionID, meta, b.BuildSlotInputs())
		s.ErrorIs(err, usecase.ErrInvalidInstructor)
	})
}

func (s *DraftUseCaseTestSuite) TestRemoveSlot() {
	ctx := context.Background()
	b := builder.NewDraftBuilder()

	s.Run("removes one slot and saves", func() {
		existing := b.BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(existing, nil)
		s.store.EXPECT().Save(ctx, s.sessionID, existing).Return(nil)

		rm, err := s.uc.RemoveSlot(ctx, s.sessionID, usecase.SlotInput{
			Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00",
		})
		s.Require().NoError(err)
		s.Require().NotNil(rm)
		s.Len(rm.Slots, 1)
	})

	s.Run("removing the last slot clears the draft", func() {
		only := builder.NewDraftBuilder().WithSlots(builder.SlotSpec{
			Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00",
		})
		s.store.EXPECT().Load(ctx, s.sessionID).Return(only.BuildDomain(), nil)
		s.store.EXPECT().Clear(ctx, s.sessionID).Return(nil)

		rm, err := s.uc.RemoveSlot(ctx, s.sessionID, usecase.SlotInput{
			Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00",
		})
		s.Require().NoError(err)
		s.Nil(rm)
	})

	s.Run("absent draft is a no-op", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(nil, nil)

		rm, err := s.uc.RemoveSlot(ctx, s.sessionID, usecase.SlotInput{
			Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00",
		})
		s.Require().NoError(err)
		s.Nil(rm)
	})
}

func (s *DraftUseCaseTestSuite) TestSetSummaryOpen() {
	ctx := context.Background()
	b := builder.NewDraftBuilder()

	s.Run("persists the open flag", func() {
		existing := b.BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(existing, nil)
		s.store.EXPECT().Save(ctx, s.sessionID, existing).Return(nil)

		s.Require().NoError(s.uc.SetSummaryOpen(ctx, s.sessionID, true))
		s.True(existing.SummaryOpen())
	})

	s.Run("absent draft is a no-op", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(nil, nil)

		s.NoError(s.uc.SetSummaryOpen(ctx, s.sessionID, true))
	})
}

func (s *DraftUseCaseTestSuite) TestGet() {
	ctx := context.Background()
	b := builder.NewDraftBuilder()

	s.Run("absent draft reports not found", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(nil, nil)

		_, err := s.uc.Get(ctx, s.sessionID)
		s.ErrorIs(err, usecase.ErrDraftNotFound)
	})

	s.Run("returns the draft without resume", func() {
		s.store.EXPECT().Load(ctx, s.sessionID).Return(b.BuildDomain(), nil)
		s.store.EXPECT().ConsumeResume(ctx, s.sessionID).Return(false, nil)

		rm, err := s.uc.Get(ctx, s.sessionID)
		s.Require().NoError(err)
		s.False(rm.Resumed)
		s.False(rm.SummaryOpen)
	})

	s.Run("resume flag reopens the summary exactly once", func() {
		existing := b.BuildDomain()
		s.store.EXPECT().Load(ctx, s.sessionID).Return(existing, nil)
		s.store.EXPECT().ConsumeResume(ctx, s.sessionID).Return(true, nil)
		s.store.EXPECT().Save(ctx, s.sessionID, existing).Return(nil)

		rm, err := s.uc.Get(ctx, s.sessionID)
		s.Require().NoError(err)
		s.True(rm.Resumed)
		s.True(rm.SummaryOpen)
	})
}

// sanity check: the builder produces a draft whose signature matches its slots
func TestBuilderSignature(t *testing.T) {
	d := builder.NewDraftBuilder().BuildDomain()
	want := booking.ReconstructSlot("2026-09-10", "10:00", "11:00").Key() +
		";" + booking.ReconstructSlot("2026-09-11", "14:00", "15:00").Key()
	if d.Signature() != want {
		t.Fatalf("unexpected signature %q", d.Signature())
	}
}
