package repository

import (
	"context"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotAvailability resolves slot availability against the published instructor
// calendar. A slot is available only while a matching open row exists.
type SlotAvailability struct {
	pool *pgxpool.Pool
}

func NewSlotAvailability(pool *pgxpool.Pool) *SlotAvailability {
	return &SlotAvailability{pool: pool}
}

func (r *SlotAvailability) UnavailableSlots(ctx context.Context, instructorID uuid.UUID, slots []booking.Slot) ([]booking.Slot, error) {
	var unavailable []booking.Slot
	for _, slot := range slots {
		var open bool
		err := r.pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1
				FROM instructor_slots
				WHERE instructor_id = $1
				  AND slot_date = $2
				  AND start_time = $3
				  AND end_time = $4
				  AND status = 'open'
			)`,
			instructorID, slot.Date(), slot.StartTime(), slot.EndTime(),
		).Scan(&open)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to check slot availability", err)
		}
		if !open {
			unavailable = append(unavailable, slot)
		}
	}
	return unavailable, nil
}
