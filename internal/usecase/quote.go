package usecase

import (
	"context"
	"errors"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/pkg/errs"
	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	ErrAvailabilityCheckFailed = errors.New("availability check failed")
)

type QuoteUseCase interface {
	// GetQuote prices the current draft. There is no quote for an absent
	// draft; callers simply do not ask.
	GetQuote(ctx context.Context, sessionID uuid.UUID) (*readmodel.QuoteRM, error)
}

type quoteUseCaseImpl struct {
	store        DraftStore
	availability AvailabilityChecker
	// cache keys on session + slot-set signature. The same slots added in a
	// different order miss the cache; the recompute is cheap and side-effect
	// free, so the looser key is fine.
	cache *lru.Cache[string, readmodel.QuoteRM]
}

func NewQuoteUseCase(store DraftStore, availability AvailabilityChecker, cacheSize int) (QuoteUseCase, error) {
	cache, err := lru.New[string, readmodel.QuoteRM](cacheSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build quote cache")
	}

	return &quoteUseCaseImpl{
		store:        store,
		availability: availability,
		cache:        cache,
	}, nil
}

func (u *quoteUseCaseImpl) GetQuote(ctx context.Context, sessionID uuid.UUID) (*readmodel.QuoteRM, error) {
	draft, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStoreFailed)
	}
	if draft == nil || draft.SlotCount() == 0 {
		return nil, ErrDraftNotFound
	}

	cacheKey := sessionID.String() + "|" + draft.Signature()
	if cached, ok := u.cache.Get(cacheKey); ok {
		rm := cached
		return &rm, nil
	}

	unavailable, err := u.availability.UnavailableSlots(ctx, draft.Instructor().ID(), draft.Slots())
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityCheckFailed)
	}

	status := booking.AvailabilityAvailable
	if len(unavailable) > 0 {
		status = booking.AvailabilityUnavailable
	}

	quote := booking.ComputeQuote(draft, status)
	rm := toQuoteRM(quote)
	u.cache.Add(cacheKey, *rm)

	return rm, nil
}

func toQuoteRM(q booking.Quote) *readmodel.QuoteRM {
	perSlot := q.PerSlot()
	rm := &readmodel.QuoteRM{
		RequiredCredits: q.RequiredCredits(),
		Availability:    string(q.Availability()),
		PerSlot:         make([]readmodel.SlotPriceRM, len(perSlot)),
		Signature:       q.Signature(),
	}
	for i, sp := range perSlot {
		rm.PerSlot[i] = readmodel.SlotPriceRM{
			Slot: readmodel.SlotRM{
				Date:      sp.Slot.Date(),
				StartTime: sp.Slot.StartTime(),
				EndTime:   sp.Slot.EndTime(),
			},
			Credits: sp.Credits,
		}
	}
	return rm
}
