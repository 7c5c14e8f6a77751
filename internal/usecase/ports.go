package usecase

import (
	"context"
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/lesson"
	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DraftStore is the session-scoped key-value persistence behind the draft.
// Absence is a valid state: Load returns (nil, nil) when no draft exists.
type DraftStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*booking.Draft, error)
	Save(ctx context.Context, sessionID uuid.UUID, draft *booking.Draft) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
	// MarkResume sets the one-shot flag consumed by ConsumeResume exactly once.
	MarkResume(ctx context.Context, sessionID uuid.UUID) error
	ConsumeResume(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

// AvailabilityChecker is the external availability source. Only the verdict is
// consumed; how slots are published is not this module's concern.
type AvailabilityChecker interface {
	UnavailableSlots(ctx context.Context, instructorID uuid.UUID, slots []booking.Slot) ([]booking.Slot, error)
}

type LessonRepository interface {
	Create(ctx context.Context, tx pgx.Tx, l *lesson.Lesson) error
	FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.LessonRM, error)
	// MarkCancelled flips confirmed → cancelled and reports whether the row
	// actually transitioned. A false result means the lesson was not in a
	// cancellable state, which is what keeps refunds idempotent.
	MarkCancelled(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) (bool, error)
}

type CreditLedger interface {
	AvailableCredits(ctx context.Context, userID uuid.UUID) (int, error)
	Spend(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount int) error
	Refund(ctx context.Context, tx pgx.Tx, userID, lessonID uuid.UUID, amount int) error
}

// Caller-supplied inputs, validated into domain values by the usecases.

type InstructorMeta struct {
	ID               uuid.UUID
	Name             string
	AvatarURL        string
	CreditsPerLesson int
}

type SlotInput struct {
	Date      string
	StartTime string
	EndTime   string
}
