package usecase

import (
	"context"
	"errors"
	"log/slog"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/lesson"
	"lessonbook/internal/pkg/clock"
	"lessonbook/internal/pkg/errs"
	"lessonbook/internal/usecase/readmodel"
	"lessonbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrConfirmationFailed = errors.New("confirmation failed")
)

type ConfirmationCode string

const (
	CodeAuthRequired        ConfirmationCode = "AUTH_REQUIRED"
	CodeInsufficientCredits ConfirmationCode = "INSUFFICIENT_CREDITS"
	CodeSlotUnavailable     ConfirmationCode = "SLOT_UNAVAILABLE"
)

// ConfirmationError is the expected-rejection side of the confirmation result.
// Exactly one of the payload fields is meaningful, selected by Code; callers
// branch on it explicitly. Anything else that goes wrong surfaces as a generic
// ErrConfirmationFailed and leaves the draft untouched.
type ConfirmationError struct {
	Code             ConfirmationCode
	MissingCredits   int
	UnavailableSlots []readmodel.SlotRM
}

func (e *ConfirmationError) Error() string {
	return "confirmation rejected: " + string(e.Code)
}

type ConfirmUseCase interface {
	// Confirm commits the session's draft into one lesson per slot. A nil
	// userID means the caller is not authenticated; the draft is preserved and
	// the resume flag set so the summary reopens after login.
	Confirm(ctx context.Context, sessionID uuid.UUID, userID *uuid.UUID) (*readmodel.ConfirmationRM, error)
}

type confirmUseCaseImpl struct {
	store        DraftStore
	availability AvailabilityChecker
	lessons      LessonRepository
	ledger       CreditLedger
	db           shared.Beginner
	clock        clock.Clock
}

func NewConfirmUseCase(
	store DraftStore,
	availability AvailabilityChecker,
	lessons LessonRepository,
	ledger CreditLedger,
	db shared.Beginner,
	clock clock.Clock,
) ConfirmUseCase {
	return &confirmUseCaseImpl{
		store:        store,
		availability: availability,
		lessons:      lessons,
		ledger:       ledger,
		db:           db,
		clock:        clock,
	}
}

func (u *confirmUseCaseImpl) Confirm(
	ctx context.Context,
	sessionID uuid.UUID,
	userID *uuid.UUID,
) (*readmodel.ConfirmationRM, error) {
	draft, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	if draft == nil || draft.SlotCount() == 0 {
		return nil, ErrDraftNotFound
	}

	// Validation order is fixed: auth, then credits, then availability.
	// The first failing check wins.
	if userID == nil {
		if err := u.store.MarkResume(ctx, sessionID); err != nil {
			return nil, errs.Mark(err, ErrDraftStoreFailed)
		}
		return nil, &ConfirmationError{Code: CodeAuthRequired}
	}

	required := draft.Instructor().CreditsPerLesson() * draft.SlotCount()

	available, err := u.ledger.AvailableCredits(ctx, *userID)
	if err != nil {
		return nil, errs.Mark(err, ErrConfirmationFailed)
	}
	if available < required {
		return nil, &ConfirmationError{
			Code:           CodeInsufficientCredits,
			MissingCredits: required - available,
		}
	}

	unavailable, err := u.availability.UnavailableSlots(ctx, draft.Instructor().ID(), draft.Slots())
	if err != nil {
		return nil, errs.Mark(err, ErrConfirmationFailed)
	}
	if len(unavailable) > 0 {
		return nil, &ConfirmationError{
			Code:             CodeSlotUnavailable,
			UnavailableSlots: toSlotRMs(unavailable),
		}
	}

	now := u.clock.Now()
	lessons := make([]*lesson.Lesson, draft.SlotCount())
	for i, slot := range draft.Slots() {
		lessons[i] = lesson.NewLesson(*userID, draft.Instructor(), slot, now)
	}

	// All slots book or none do. The ledger and lesson rows commit together;
	// any failure here leaves the draft and its persisted state untouched.
	lessonIDs, err := shared.WithDefaultRetry(ctx, u.db, func(tx pgx.Tx) ([]uuid.UUID, error) {
		ids := make([]uuid.UUID, len(lessons))
		for i, l := range lessons {
			if err := u.lessons.Create(ctx, tx, l); err != nil {
				return nil, err
			}
			ids[i] = l.ID()
		}
		if err := u.ledger.Spend(ctx, tx, *userID, required); err != nil {
			return nil, err
		}
		return ids, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrConfirmationFailed)
	}

	// The bookings are committed; a draft that fails to clear only costs the
	// user an explicit clear on next load.
	if err := u.store.Clear(ctx, sessionID); err != nil {
		slog.Warn("failed to clear draft after confirmation",
			"session_id", sessionID,
			"error", err)
	}

	return &readmodel.ConfirmationRM{
		LessonIDs:    lessonIDs,
		SpentCredits: required,
	}, nil
}

func toSlotRMs(slots []booking.Slot) []readmodel.SlotRM {
	out := make([]readmodel.SlotRM, len(slots))
	for i, s := range slots {
		out[i] = readmodel.SlotRM{
			Date:      s.Date(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
		}
	}
	return out
}
