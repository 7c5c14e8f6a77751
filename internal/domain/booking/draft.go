package booking

import (
	"errors"
	"strings"
	"time"

	"lessonbook/internal/domain/instructor"

	"github.com/google/uuid"
)

var (
	ErrNoSlots = errors.New("draft requires at least one slot")
)

// Draft is the single uncommitted booking request a session holds for one
// instructor. An empty draft is never a valid state: callers collapse it to
// absence instead of persisting a zero-slot object.
type Draft struct {
	id          uuid.UUID
	instructor  instructor.Snapshot
	slots       []Slot
	summaryOpen bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDraft(meta instructor.Snapshot, slots []Slot, now time.Time) (*Draft, error) {
	deduped := dedupeSlots(slots)
	if len(deduped) == 0 {
		return nil, ErrNoSlots
	}

	return &Draft{
		id:         uuid.New(),
		instructor: meta,
		slots:      deduped,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructDraft(
	id uuid.UUID,
	meta instructor.Snapshot,
	slots []Slot,
	summaryOpen bool,
	createdAt, updatedAt time.Time,
) *Draft {
	return &Draft{
		id:          id,
		instructor:  meta,
		slots:       slots,
		summaryOpen: summaryOpen,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ReplaceSlots swaps the whole slot set. An empty result returns ErrNoSlots so
// the caller clears the draft instead of keeping an empty one.
func (d *Draft) ReplaceSlots(slots []Slot, now time.Time) error {
	deduped := dedupeSlots(slots)
	if len(deduped) == 0 {
		return ErrNoSlots
	}
	d.slots = deduped
	d.updatedAt = now
	return nil
}

// RemoveSlot deletes by slot key. Reports whether the draft still has slots;
// false means the caller must collapse the draft to absence.
func (d *Draft) RemoveSlot(slot Slot, now time.Time) bool {
	kept := d.slots[:0]
	for _, s := range d.slots {
		if !s.Equal(slot) {
			kept = append(kept, s)
		}
	}
	if len(kept) != len(d.slots) {
		d.slots = kept
		d.updatedAt = now
	}
	return len(d.slots) > 0
}

func (d *Draft) BelongsTo(instructorID uuid.UUID) bool {
	return d.instructor.ID() == instructorID
}

func (d *Draft) OpenSummary()  { d.summaryOpen = true }
func (d *Draft) CloseSummary() { d.summaryOpen = false }

// Signature identifies the slot set for quote caching. Insertion order is part
// of the signature: the same slots added in a different order produce a
// different signature, which only costs an extra recompute.
func (d *Draft) Signature() string {
	keys := make([]string, len(d.slots))
	for i, s := range d.slots {
		keys[i] = s.Key()
	}
	return strings.Join(keys, ";")
}

func (d *Draft) ID() uuid.UUID                   { return d.id }
func (d *Draft) Instructor() instructor.Snapshot { return d.instructor }
func (d *Draft) SummaryOpen() bool               { return d.summaryOpen }
func (d *Draft) CreatedAt() time.Time            { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time            { return d.updatedAt }
func (d *Draft) SlotCount() int                  { return len(d.slots) }

func (d *Draft) Slots() []Slot {
	out := make([]Slot, len(d.slots))
	copy(out, d.slots)
	return out
}

// dedupeSlots keeps the last occurrence of each slot key at the position of
// its first occurrence.
func dedupeSlots(slots []Slot) []Slot {
	seen := make(map[string]int, len(slots))
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if i, ok := seen[s.Key()]; ok {
			out[i] = s
			continue
		}
		seen[s.Key()] = len(out)
		out = append(out, s)
	}
	return out
}
