package usecase

import (
	"context"
	"errors"
	"time"

	"lessonbook/internal/domain/cancellation"
	domlesson "lessonbook/internal/domain/lesson"
	"lessonbook/internal/pkg/clock"
	"lessonbook/internal/pkg/errs"
	"lessonbook/internal/usecase/readmodel"
	"lessonbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrLessonNotCancellable = errors.New("lesson cannot be cancelled")
	ErrCancellationFailed   = errors.New("cancellation failed")
)

type LessonUseCase interface {
	GetLesson(ctx context.Context, userID, lessonID uuid.UUID) (*readmodel.LessonRM, error)
	GetUserLessons(ctx context.Context, userID uuid.UUID) ([]*readmodel.LessonRM, error)
	// PreviewCancellation computes the refund tier as of now. The tier is not
	// locked in: execution recomputes it.
	PreviewCancellation(ctx context.Context, userID, lessonID uuid.UUID) (*readmodel.CancellationPreviewRM, error)
	CancelLesson(ctx context.Context, userID, lessonID uuid.UUID) (*readmodel.CancellationResultRM, error)
}

type lessonUseCaseImpl struct {
	lessons LessonRepository
	ledger  CreditLedger
	db      shared.Beginner
	clock   clock.Clock
	loc     *time.Location
}

func NewLessonUseCase(
	lessons LessonRepository,
	ledger CreditLedger,
	db shared.Beginner,
	clock clock.Clock,
	loc *time.Location,
) LessonUseCase {
	return &lessonUseCaseImpl{
		lessons: lessons,
		ledger:  ledger,
		db:      db,
		clock:   clock,
		loc:     loc,
	}
}

func (u *lessonUseCaseImpl) GetLesson(ctx context.Context, userID, lessonID uuid.UUID) (*readmodel.LessonRM, error) {
	l, err := u.findOwned(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	return toLessonRM(l), nil
}

func (u *lessonUseCaseImpl) GetUserLessons(ctx context.Context, userID uuid.UUID) ([]*readmodel.LessonRM, error) {
	return u.lessons.FindByUserID(ctx, userID)
}

func (u *lessonUseCaseImpl) PreviewCancellation(
	ctx context.Context,
	userID, lessonID uuid.UUID,
) (*readmodel.CancellationPreviewRM, error) {
	l, err := u.findOwned(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	if !l.Status().CanCancel() {
		return nil, ErrLessonNotCancellable
	}

	policy := cancellation.ComputePolicy(u.clock.Now(), l.StartAt(u.loc))

	return &readmodel.CancellationPreviewRM{
		LessonID:        l.ID(),
		RefundPercent:   policy.RefundPercent,
		FeePercent:      policy.FeePercent,
		Severity:        string(policy.Severity),
		Message:         policy.Message,
		Description:     policy.Description,
		HoursUntilStart: policy.HoursUntilStart,
		RefundCredits:   policy.RefundAmount(l.Credits()),
	}, nil
}

func (u *lessonUseCaseImpl) CancelLesson(
	ctx context.Context,
	userID, lessonID uuid.UUID,
) (*readmodel.CancellationResultRM, error) {
	l, err := u.findOwned(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	if !l.Status().CanCancel() {
		return nil, ErrLessonNotCancellable
	}

	// Recomputed at execution time, deliberately not reusing the previewed
	// tier: the refund reflects the moment the user actually cancels.
	now := u.clock.Now()
	policy := cancellation.ComputePolicy(now, l.StartAt(u.loc))
	refund := policy.RefundAmount(l.Credits())

	_, err = shared.RunInTx(ctx, u.db, func(tx pgx.Tx) (struct{}, error) {
		transitioned, err := u.lessons.MarkCancelled(ctx, tx, l.ID(), now)
		if err != nil {
			return struct{}{}, err
		}
		// Lost the race with another cancellation of the same booking: the
		// refund must not be issued twice.
		if !transitioned {
			return struct{}{}, ErrLessonNotCancellable
		}
		if refund > 0 {
			if err := u.ledger.Refund(ctx, tx, userID, l.ID(), refund); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		if errors.Is(err, ErrLessonNotCancellable) {
			return nil, ErrLessonNotCancellable
		}
		return nil, errs.Mark(err, ErrCancellationFailed)
	}

	return &readmodel.CancellationResultRM{
		LessonID:        l.ID(),
		RefundedCredits: refund,
		RefundPercent:   policy.RefundPercent,
		Severity:        string(policy.Severity),
	}, nil
}

func (u *lessonUseCaseImpl) findOwned(ctx context.Context, userID, lessonID uuid.UUID) (*domlesson.Lesson, error) {
	l, err := u.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	// Ownership failures are indistinguishable from absence on purpose.
	if l == nil || !l.IsOwnedBy(userID) {
		return nil, ErrLessonNotFound
	}
	return l, nil
}

func toLessonRM(l *domlesson.Lesson) *readmodel.LessonRM {
	slot := l.Slot()
	return &readmodel.LessonRM{
		ID:             l.ID(),
		InstructorID:   l.InstructorID(),
		InstructorName: l.InstructorName(),
		Slot: readmodel.SlotRM{
			Date:      slot.Date(),
			StartTime: slot.StartTime(),
			EndTime:   slot.EndTime(),
		},
		Credits:     l.Credits(),
		Status:      l.Status().String(),
		CreatedAt:   l.CreatedAt(),
		CancelledAt: l.CancelledAt(),
	}
}
