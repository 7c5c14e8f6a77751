package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotRM struct {
	Date      string
	StartTime string
	EndTime   string
}

type DraftRM struct {
	ID                  uuid.UUID
	InstructorID        uuid.UUID
	InstructorName      string
	InstructorAvatarURL string
	CreditsPerLesson    int
	Slots               []SlotRM
	SummaryOpen         bool
	Resumed             bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type SlotPriceRM struct {
	Slot    SlotRM
	Credits int
}

type QuoteRM struct {
	RequiredCredits int
	Availability    string
	PerSlot         []SlotPriceRM
	Signature       string
}

type ConfirmationRM struct {
	LessonIDs    []uuid.UUID
	SpentCredits int
}
