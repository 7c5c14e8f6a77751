package usecase

import (
	"context"
	"errors"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/instructor"
	"lessonbook/internal/pkg/clock"
	"lessonbook/internal/pkg/errs"
	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound     = errors.New("booking draft not found")
	ErrInvalidSlot       = errors.New("invalid slot")
	ErrInvalidInstructor = errors.New("invalid instructor metadata")
	ErrDraftStoreFailed  = errors.New("draft store operation failed")
)

type DraftUseCase interface {
	// SetSlots replaces the draft's slot set, creating a fresh draft when none
	// exists or when the instructor changed. A nil result means the call
	// collapsed the draft to absence (empty slot set).
	SetSlots(ctx context.Context, sessionID uuid.UUID, meta InstructorMeta, slots []SlotInput) (*readmodel.DraftRM, error)
	// RemoveSlot deletes one slot by key. A nil result means the last slot was
	// removed and the draft is gone.
	RemoveSlot(ctx context.Context, sessionID uuid.UUID, slot SlotInput) (*readmodel.DraftRM, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
	SetSummaryOpen(ctx context.Context, sessionID uuid.UUID, open bool) error
	// Get returns the current draft, consuming the one-shot resume flag: when
	// it was set, the summary panel comes back open exactly once.
	Get(ctx context.Context, sessionID uuid.UUID) (*readmodel.DraftRM, error)
}

type draftUseCaseImpl struct {
	store DraftStore
	clock clock.Clock
}

func NewDraftUseCase(store DraftStore, clock clock.Clock) DraftUseCase {
	return &draftUseCaseImpl{
		store: store,
		clock: clock,
	}
}

func (u *draftUseCaseImpl) SetSlots(
	ctx context.Context,
	sessionID uuid.UUID,
	meta InstructorMeta,
	slots []SlotInput,
) (*readmodel.DraftRM, error) {
	snapshot, err := instructor.NewSnapshot(meta.ID, meta.Name, meta.AvatarURL, meta.CreditsPerLesson)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInstructor)
	}

	parsed, err := parseSlots(slots)
	if err != nil {
		return nil, err
	}

	current, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}

	now := u.clock.Now()

	// A different instructor always starts over; the old draft is discarded,
	// never merged.
	if current == nil || !current.BelongsTo(snapshot.ID()) {
		draft, err := booking.NewDraft(snapshot, parsed, now)
		if err != nil {
			if errors.Is(err, booking.ErrNoSlots) {
				return nil, u.clear(ctx, sessionID)
			}
			return nil, err
		}
		if err := u.store.Save(ctx, sessionID, draft); err != nil {
			return nil, errs.Mark(err, ErrDraftStoreFailed)
		}
		return toDraftRM(draft, false), nil
	}

	if err := current.ReplaceSlots(parsed, now); err != nil {
		if errors.Is(err, booking.ErrNoSlots) {
			return nil, u.clear(ctx, sessionID)
		}
		return nil, err
	}
	if err := u.store.Save(ctx, sessionID, current); err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	return toDraftRM(current, false), nil
}

func (u *draftUseCaseImpl) RemoveSlot(
	ctx context.Context,
	sessionID uuid.UUID,
	slot SlotInput,
) (*readmodel.DraftRM, error) {
	current, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	if current == nil {
		return nil, nil
	}

	key := booking.ReconstructSlot(slot.Date, slot.StartTime, slot.EndTime)
	if !current.RemoveSlot(key, u.clock.Now()) {
		return nil, u.clear(ctx, sessionID)
	}

	if err := u.store.Save(ctx, sessionID, current); err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	return toDraftRM(current, false), nil
}

func (u *draftUseCaseImpl) Clear(ctx context.Context, sessionID uuid.UUID) error {
	return u.clear(ctx, sessionID)
}

func (u *draftUseCaseImpl) SetSummaryOpen(ctx context.Context, sessionID uuid.UUID, open bool) error {
	current, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return errs.Mark(err, ErrDraftStoreFailed)
	}
	if current == nil {
		return nil
	}

	if open {
		current.OpenSummary()
	} else {
		current.CloseSummary()
	}
	if err := u.store.Save(ctx, sessionID, current); err != nil {
		return errs.Mark(err, ErrDraftStoreFailed)
	}
	return nil
}

func (u *draftUseCaseImpl) Get(ctx context.Context, sessionID uuid.UUID) (*readmodel.DraftRM, error) {
	current, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	if current == nil {
		return nil, ErrDraftNotFound
	}

	resumed, err := u.store.ConsumeResume(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	if resumed {
		current.OpenSummary()
		if err := u.store.Save(ctx, sessionID, current); err != nil {
			return nil, errs.Mark(err, ErrDraftStoreFailed)
		}
	}

	return toDraftRM(current, resumed), nil
}

func (u *draftUseCaseImpl) clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := u.store.Clear(ctx, sessionID); err != nil {
		return errs.Mark(err, ErrDraftStoreFailed)
	}
	return nil
}

func parseSlots(inputs []SlotInput) ([]booking.Slot, error) {
	slots := make([]booking.Slot, 0, len(inputs))
	for _, in := range inputs {
		s, err := booking.NewSlot(in.Date, in.StartTime, in.EndTime)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidSlot)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func toDraftRM(d *booking.Draft, resumed bool) *readmodel.DraftRM {
	meta := d.Instructor()
	slots := d.Slots()

	rm := &readmodel.DraftRM{
		ID:                  d.ID(),
		InstructorID:        meta.ID(),
		InstructorName:      meta.Name(),
		InstructorAvatarURL: meta.AvatarURL(),
		CreditsPerLesson:    meta.CreditsPerLesson(),
		Slots:               make([]readmodel.SlotRM, len(slots)),
		SummaryOpen:         d.SummaryOpen(),
		Resumed:             resumed,
		CreatedAt:           d.CreatedAt(),
		UpdatedAt:           d.UpdatedAt(),
	}
	for i, s := range slots {
		rm.Slots[i] = readmodel.SlotRM{
			Date:      s.Date(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
		}
	}
	return rm
}
