//go:build unit || e2e

package builder

import (
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/instructor"
	reqdto "lessonbook/internal/handler/dto/request"
	"lessonbook/internal/usecase"
	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SlotSpec struct {
	Date      string
	StartTime string
	EndTime   string
}

type DraftBuilder struct {
	InstructorID     uuid.UUID
	InstructorName   string
	AvatarURL        string
	CreditsPerLesson int
	Slots            []SlotSpec
	SummaryOpen      bool
	Now              time.Time
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		InstructorID:     uuid.New(),
		InstructorName:   "Sato Kenji",
		AvatarURL:        "https://example.com/avatars/sato.png",
		CreditsPerLesson: 10,
		Slots: []SlotSpec{
			{Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00"},
			{Date: "2026-09-11", StartTime: "14:00", EndTime: "15:00"},
		},
		Now: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *DraftBuilder) WithInstructorID(id uuid.UUID) *DraftBuilder {
	b.InstructorID = id
	return b
}

func (b *DraftBuilder) WithCreditsPerLesson(credits int) *DraftBuilder {
	b.CreditsPerLesson = credits
	return b
}

func (b *DraftBuilder) WithSlots(slots ...SlotSpec) *DraftBuilder {
	b.Slots = slots
	return b
}

func (b *DraftBuilder) WithSummaryOpen(open bool) *DraftBuilder {
	b.SummaryOpen = open
	return b
}

func (b *DraftBuilder) WithNow(now time.Time) *DraftBuilder {
	b.Now = now
	return b
}

func (b *DraftBuilder) BuildSnapshot() instructor.Snapshot {
	return instructor.ReconstructSnapshot(b.InstructorID, b.InstructorName, b.AvatarURL, b.CreditsPerLesson)
}

func (b *DraftBuilder) BuildSlots() []booking.Slot {
	slots := make([]booking.Slot, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = booking.ReconstructSlot(s.Date, s.StartTime, s.EndTime)
	}
	return slots
}

func (b *DraftBuilder) BuildDomain() *booking.Draft {
	return booking.ReconstructDraft(uuid.New(), b.BuildSnapshot(), b.BuildSlots(), b.SummaryOpen, b.Now, b.Now)
}

func (b *DraftBuilder) BuildSlotInputs() []usecase.SlotInput {
	inputs := make([]usecase.SlotInput, len(b.Slots))
	for i, s := range b.Slots {
		inputs[i] = usecase.SlotInput{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return inputs
}

func (b *DraftBuilder) BuildInstructorMeta() usecase.InstructorMeta {
	return usecase.InstructorMeta{
		ID:               b.InstructorID,
		Name:             b.InstructorName,
		AvatarURL:        b.AvatarURL,
		CreditsPerLesson: b.CreditsPerLesson,
	}
}

func (b *DraftBuilder) BuildSetSlotsRequestDTO() reqdto.SetSlotsRequest {
	slots := make([]reqdto.SlotDTO, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = reqdto.SlotDTO{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return reqdto.SetSlotsRequest{
		Instructor: reqdto.InstructorDTO{
			ID:               b.InstructorID,
			Name:             b.InstructorName,
			AvatarURL:        b.AvatarURL,
			CreditsPerLesson: b.CreditsPerLesson,
		},
		Slots: slots,
	}
}

func (b *DraftBuilder) BuildRM() *readmodel.DraftRM {
	slots := make([]readmodel.SlotRM, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = readmodel.SlotRM{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return &readmodel.DraftRM{
		ID:                  uuid.New(),
		InstructorID:        b.InstructorID,
		InstructorName:      b.InstructorName,
		InstructorAvatarURL: b.AvatarURL,
		CreditsPerLesson:    b.CreditsPerLesson,
		Slots:               slots,
		SummaryOpen:         b.SummaryOpen,
		CreatedAt:           b.Now,
		UpdatedAt:           b.Now,
	}
}
