package booking

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

type SlotPrice struct {
	Slot    Slot
	Credits int
}

// Quote is a derived view of a draft: required credits and a flat per-slot
// breakdown. It is recomputed from the draft every time, never mutated.
type Quote struct {
	requiredCredits int
	perSlot         []SlotPrice
	availability    AvailabilityStatus
	signature       string
}

// ComputeQuote prices every slot at the instructor's snapshotted
// credits-per-lesson rate. Availability is supplied by the caller from the
// external availability source.
func ComputeQuote(d *Draft, availability AvailabilityStatus) Quote {
	rate := d.Instructor().CreditsPerLesson()
	slots := d.Slots()

	perSlot := make([]SlotPrice, len(slots))
	for i, s := range slots {
		perSlot[i] = SlotPrice{Slot: s, Credits: rate}
	}

	return Quote{
		requiredCredits: rate * len(slots),
		perSlot:         perSlot,
		availability:    availability,
		signature:       d.Signature(),
	}
}

func (q Quote) RequiredCredits() int             { return q.requiredCredits }
func (q Quote) Availability() AvailabilityStatus { return q.availability }
func (q Quote) Signature() string                { return q.signature }

func (q Quote) PerSlot() []SlotPrice {
	out := make([]SlotPrice, len(q.perSlot))
	copy(out, q.perSlot)
	return out
}
