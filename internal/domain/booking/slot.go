package booking

import (
	"errors"
	"time"
)

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

var (
	ErrInvalidSlotDate = errors.New("invalid slot date")
	ErrInvalidSlotTime = errors.New("invalid slot time")
	ErrSlotTimeOrder   = errors.New("slot start must be before end")
)

// Slot is a candidate lesson time. It is a pure value: two slots with the
// same date, start and end are the same slot, regardless of how they were
// produced.
type Slot struct {
	date      string
	startTime string
	endTime   string
}

func NewSlot(date, startTime, endTime string) (Slot, error) {
	if _, err := time.Parse(SlotDateLayout, date); err != nil {
		return Slot{}, ErrInvalidSlotDate
	}
	start, err := time.Parse(SlotTimeLayout, startTime)
	if err != nil {
		return Slot{}, ErrInvalidSlotTime
	}
	end, err := time.Parse(SlotTimeLayout, endTime)
	if err != nil {
		return Slot{}, ErrInvalidSlotTime
	}
	if !start.Before(end) {
		return Slot{}, ErrSlotTimeOrder
	}

	return Slot{
		date:      date,
		startTime: startTime,
		endTime:   endTime,
	}, nil
}

// ReconstructSlot rebuilds a slot from trusted storage without re-validation.
func ReconstructSlot(date, startTime, endTime string) Slot {
	return Slot{
		date:      date,
		startTime: startTime,
		endTime:   endTime,
	}
}

func (s Slot) Date() string      { return s.date }
func (s Slot) StartTime() string { return s.startTime }
func (s Slot) EndTime() string   { return s.endTime }

// Key is the identity of a slot within a draft.
func (s Slot) Key() string {
	return s.date + "|" + s.startTime + "|" + s.endTime
}

func (s Slot) Equal(other Slot) bool {
	return s.Key() == other.Key()
}

// StartAt resolves the concrete start instant in the given zone.
func (s Slot) StartAt(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(SlotDateLayout+" "+SlotTimeLayout, s.date+" "+s.startTime, loc)
	return t
}

func (s Slot) EndAt(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(SlotDateLayout+" "+SlotTimeLayout, s.date+" "+s.endTime, loc)
	return t
}
