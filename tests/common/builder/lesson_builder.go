//go:build unit || e2e

package builder

import (
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/lesson"
	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LessonBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	InstructorID   uuid.UUID
	InstructorName string
	Slot           SlotSpec
	Credits        int
	Status         lesson.Status
	CreatedAt      time.Time
	CancelledAt    *time.Time
}

func NewLessonBuilder() *LessonBuilder {
	return &LessonBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		InstructorID:   uuid.New(),
		InstructorName: "Sato Kenji",
		Slot:           SlotSpec{Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00"},
		Credits:        10,
		Status:         lesson.StatusConfirmed,
		CreatedAt:      time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LessonBuilder) WithUserID(id uuid.UUID) *LessonBuilder {
	b.UserID = id
	return b
}

func (b *LessonBuilder) WithSlot(slot SlotSpec) *LessonBuilder {
	b.Slot = slot
	return b
}

func (b *LessonBuilder) WithCredits(credits int) *LessonBuilder {
	b.Credits = credits
	return b
}

func (b *LessonBuilder) WithStatus(status lesson.Status) *LessonBuilder {
	b.Status = status
	return b
}

func (b *LessonBuilder) AsCancelled(at time.Time) *LessonBuilder {
	b.Status = lesson.StatusCancelled
	b.CancelledAt = &at
	return b
}

func (b *LessonBuilder) BuildDomain() *lesson.Lesson {
	return lesson.ReconstructLesson(
		b.ID, b.UserID, b.InstructorID, b.InstructorName,
		booking.ReconstructSlot(b.Slot.Date, b.Slot.StartTime, b.Slot.EndTime),
		b.Credits, b.Status,
		b.CreatedAt, b.CreatedAt, b.CancelledAt,
	)
}

func (b *LessonBuilder) BuildRM() *readmodel.LessonRM {
	return &readmodel.LessonRM{
		ID:             b.ID,
		InstructorID:   b.InstructorID,
		InstructorName: b.InstructorName,
		Slot:           readmodel.SlotRM{Date: b.Slot.Date, StartTime: b.Slot.StartTime, EndTime: b.Slot.EndTime},
		Credits:        b.Credits,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		CancelledAt:    b.CancelledAt,
	}
}
