package response

import (
	"time"

	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LessonResponse struct {
	ID             uuid.UUID    `json:"id"`
	InstructorID   uuid.UUID    `json:"instructorId"`
	InstructorName string       `json:"instructorName"`
	Slot           SlotResponse `json:"slot"`
	Credits        int          `json:"credits"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	CancelledAt    *time.Time   `json:"cancelledAt,omitempty"`
}

type CancellationPreviewResponse struct {
	LessonID        uuid.UUID `json:"lessonId"`
	RefundPercent   int       `json:"refundPercent"`
	FeePercent      int       `json:"feePercent"`
	Severity        string    `json:"severity"`
	Message         string    `json:"message"`
	Description     string    `json:"description"`
	HoursUntilStart float64   `json:"hoursUntilStart"`
	RefundCredits   int       `json:"refundCredits"`
}

type CancellationResultResponse struct {
	LessonID        uuid.UUID `json:"lessonId"`
	RefundedCredits int       `json:"refundedCredits"`
	RefundPercent   int       `json:"refundPercent"`
	Severity        string    `json:"severity"`
}

func FromLessonRM(rm *readmodel.LessonRM) *LessonResponse {
	return &LessonResponse{
		ID:             rm.ID,
		InstructorID:   rm.InstructorID,
		InstructorName: rm.InstructorName,
		Slot:           FromSlotRM(rm.Slot),
		Credits:        rm.Credits,
		Status:         rm.Status,
		CreatedAt:      rm.CreatedAt,
		CancelledAt:    rm.CancelledAt,
	}
}

func FromCancellationPreviewRM(rm *readmodel.CancellationPreviewRM) *CancellationPreviewResponse {
	return &CancellationPreviewResponse{
		LessonID:        rm.LessonID,
		RefundPercent:   rm.RefundPercent,
		FeePercent:      rm.FeePercent,
		Severity:        rm.Severity,
		Message:         rm.Message,
		Description:     rm.Description,
		HoursUntilStart: rm.HoursUntilStart,
		RefundCredits:   rm.RefundCredits,
	}
}

func FromCancellationResultRM(rm *readmodel.CancellationResultRM) *CancellationResultResponse {
	return &CancellationResultResponse{
		LessonID:        rm.LessonID,
		RefundedCredits: rm.RefundedCredits,
		RefundPercent:   rm.RefundPercent,
		Severity:        rm.Severity,
	}
}
