package response

import (
	"time"

	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type DraftResponse struct {
	ID                  uuid.UUID      `json:"id"`
	InstructorID        uuid.UUID      `json:"instructorId"`
	InstructorName      string         `json:"instructorName"`
	InstructorAvatarURL string         `json:"instructorAvatarUrl,omitempty"`
	CreditsPerLesson    int            `json:"creditsPerLesson"`
	Slots               []SlotResponse `json:"slots"`
	SummaryOpen         bool           `json:"summaryOpen"`
	Resumed             bool           `json:"resumed"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

type SlotPriceResponse struct {
	Slot    SlotResponse `json:"slot"`
	Credits int          `json:"credits"`
}

type QuoteResponse struct {
	RequiredCredits int                 `json:"requiredCredits"`
	Availability    string              `json:"availability"`
	PerSlot         []SlotPriceResponse `json:"perSlot"`
	Signature       string              `json:"signature"`
}

type ConfirmationResponse struct {
	LessonIDs    []uuid.UUID `json:"lessonIds"`
	SpentCredits int         `json:"spentCredits"`
}

func FromSlotRM(rm readmodel.SlotRM) SlotResponse {
	return SlotResponse{
		Date:      rm.Date,
		StartTime: rm.StartTime,
		EndTime:   rm.EndTime,
	}
}

func FromSlotRMs(rms []readmodel.SlotRM) []SlotResponse {
	out := make([]SlotResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromSlotRM(rm)
	}
	return out
}

func FromDraftRM(rm *readmodel.DraftRM) *DraftResponse {
	return &DraftResponse{
		ID:                  rm.ID,
		InstructorID:        rm.InstructorID,
		InstructorName:      rm.InstructorName,
		InstructorAvatarURL: rm.InstructorAvatarURL,
		CreditsPerLesson:    rm.CreditsPerLesson,
		Slots:               FromSlotRMs(rm.Slots),
		SummaryOpen:         rm.SummaryOpen,
		Resumed:             rm.Resumed,
		CreatedAt:           rm.CreatedAt,
		UpdatedAt:           rm.UpdatedAt,
	}
}

func FromQuoteRM(rm *readmodel.QuoteRM) *QuoteResponse {
	perSlot := make([]SlotPriceResponse, len(rm.PerSlot))
	for i, sp := range rm.PerSlot {
		perSlot[i] = SlotPriceResponse{
			Slot:    FromSlotRM(sp.Slot),
			Credits: sp.Credits,
		}
	}
	return &QuoteResponse{
		RequiredCredits: rm.RequiredCredits,
		Availability:    rm.Availability,
		PerSlot:         perSlot,
		Signature:       rm.Signature,
	}
}

func FromConfirmationRM(rm *readmodel.ConfirmationRM) *ConfirmationResponse {
	return &ConfirmationResponse{
		LessonIDs:    rm.LessonIDs,
		SpentCredits: rm.SpentCredits,
	}
}
