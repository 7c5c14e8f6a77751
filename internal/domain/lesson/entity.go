package lesson

import (
	"errors"
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/instructor"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("lesson is already cancelled")
	ErrNotCancellable   = errors.New("lesson cannot be cancelled")
)

// Lesson is one confirmed reservation for one slot. Confirmation books every
// slot of a draft as an independent lesson, so cancellation always operates on
// a single lesson.
type Lesson struct {
	id             uuid.UUID
	userID         uuid.UUID
	instructorID   uuid.UUID
	instructorName string
	slot           booking.Slot
	credits        int
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
	cancelledAt    *time.Time
}

func NewLesson(userID uuid.UUID, meta instructor.Snapshot, slot booking.Slot, now time.Time) *Lesson {
	return &Lesson{
		id:             uuid.New(),
		userID:         userID,
		instructorID:   meta.ID(),
		instructorName: meta.Name(),
		slot:           slot,
		credits:        meta.CreditsPerLesson(),
		status:         StatusConfirmed,
		createdAt:      now,
		updatedAt:      now,
	}
}

func ReconstructLesson(
	id, userID, instructorID uuid.UUID,
	instructorName string,
	slot booking.Slot,
	credits int,
	status Status,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Lesson {
	return &Lesson{
		id:             id,
		userID:         userID,
		instructorID:   instructorID,
		instructorName: instructorName,
		slot:           slot,
		credits:        credits,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		cancelledAt:    cancelledAt,
	}
}

// Cancel transitions confirmed → cancelled. Cancelling twice is rejected here
// and again by the status-conditional UPDATE in storage, so a refund can never
// be issued twice for one lesson.
func (l *Lesson) Cancel(now time.Time) error {
	if l.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !l.status.CanCancel() {
		return ErrNotCancellable
	}
	l.status = StatusCancelled
	l.cancelledAt = &now
	l.updatedAt = now
	return nil
}

func (l *Lesson) StartAt(loc *time.Location) time.Time {
	return l.slot.StartAt(loc)
}

func (l *Lesson) IsOwnedBy(userID uuid.UUID) bool {
	return l.userID == userID
}

func (l *Lesson) ID() uuid.UUID           { return l.id }
func (l *Lesson) UserID() uuid.UUID       { return l.userID }
func (l *Lesson) InstructorID() uuid.UUID { return l.instructorID }
func (l *Lesson) InstructorName() string  { return l.instructorName }
func (l *Lesson) Slot() booking.Slot      { return l.slot }
func (l *Lesson) Credits() int            { return l.credits }
func (l *Lesson) Status() Status          { return l.status }
func (l *Lesson) CreatedAt() time.Time    { return l.createdAt }
func (l *Lesson) UpdatedAt() time.Time    { return l.updatedAt }
func (l *Lesson) CancelledAt() *time.Time { return l.cancelledAt }
