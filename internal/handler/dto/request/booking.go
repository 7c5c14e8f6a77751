package request

import (
	"lessonbook/internal/usecase"

	"github.com/google/uuid"
)

type SlotDTO struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (s SlotDTO) ToInput() usecase.SlotInput {
	return usecase.SlotInput{
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

type InstructorDTO struct {
	ID               uuid.UUID `json:"id" binding:"required"`
	Name             string    `json:"name" binding:"required"`
	AvatarURL        string    `json:"avatar_url"`
	CreditsPerLesson int       `json:"credits_per_lesson" binding:"required,gt=0"`
}

func (i InstructorDTO) ToMeta() usecase.InstructorMeta {
	return usecase.InstructorMeta{
		ID:               i.ID,
		Name:             i.Name,
		AvatarURL:        i.AvatarURL,
		CreditsPerLesson: i.CreditsPerLesson,
	}
}

// SetSlotsRequest replaces the draft's slot set wholesale. An empty slot list
// is valid and clears the draft.
type SetSlotsRequest struct {
	Instructor InstructorDTO `json:"instructor" binding:"required"`
	Slots      []SlotDTO     `json:"slots" binding:"dive"`
}

func (r SetSlotsRequest) ToInputs() []usecase.SlotInput {
	inputs := make([]usecase.SlotInput, len(r.Slots))
	for i, s := range r.Slots {
		inputs[i] = s.ToInput()
	}
	return inputs
}

type RemoveSlotRequest struct {
	Slot SlotDTO `json:"slot" binding:"required"`
}

type SummaryRequest struct {
	Open *bool `json:"open" binding:"required"`
}
