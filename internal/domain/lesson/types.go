package lesson

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanCancel reports whether a cancellation may be attempted. Cancelled and
// completed are both terminal.
func (s Status) CanCancel() bool {
	return s == StatusConfirmed
}
