package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type LessonRM struct {
	ID             uuid.UUID
	InstructorID   uuid.UUID
	InstructorName string
	Slot           SlotRM
	Credits        int
	Status         string
	CreatedAt      time.Time
	CancelledAt    *time.Time
}

type CancellationPreviewRM struct {
	LessonID        uuid.UUID
	RefundPercent   int
	FeePercent      int
	Severity        string
	Message         string
	Description     string
	HoursUntilStart float64
	RefundCredits   int
}

type CancellationResultRM struct {
	LessonID        uuid.UUID
	RefundedCredits int
	RefundPercent   int
	Severity        string
}
