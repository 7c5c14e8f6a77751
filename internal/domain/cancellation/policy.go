package cancellation

import "time"

type Severity string

const (
	SeveritySafe     Severity = "safe"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Policy is the refund tier a cancellation falls into. It is a pure function
// of time-until-start and is recomputed at preview and again at execution, so
// a cancellation near a tier boundary may resolve to a different tier than the
// one last shown. That is accepted behavior.
type Policy struct {
	RefundPercent   int
	FeePercent      int
	Severity        Severity
	Message         string
	Description     string
	HoursUntilStart float64
}

// ComputePolicy tiers on hours until lesson start. Lower bounds are exclusive:
// exactly 24h is the low tier, exactly 1h is critical.
func ComputePolicy(now, lessonStart time.Time) Policy {
	hours := lessonStart.Sub(now).Hours()

	p := Policy{HoursUntilStart: hours}
	switch {
	case hours > 24:
		p.RefundPercent = 100
		p.Severity = SeveritySafe
		p.Message = "Free cancellation"
		p.Description = "More than 24 hours before the lesson. All credits are refunded."
	case hours > 4:
		p.RefundPercent = 90
		p.Severity = SeverityLow
		p.Message = "90% refund"
		p.Description = "Between 4 and 24 hours before the lesson. A 10% fee is withheld."
	case hours > 2:
		p.RefundPercent = 70
		p.Severity = SeverityMedium
		p.Message = "70% refund"
		p.Description = "Between 2 and 4 hours before the lesson. A 30% fee is withheld."
	case hours > 1:
		p.RefundPercent = 50
		p.Severity = SeverityHigh
		p.Message = "50% refund"
		p.Description = "Between 1 and 2 hours before the lesson. Half of the credits are withheld."
	default:
		p.RefundPercent = 0
		p.Severity = SeverityCritical
		p.Message = "No refund"
		p.Description = "One hour or less before the lesson. Credits are not refunded."
	}
	p.FeePercent = 100 - p.RefundPercent

	return p
}

// RefundAmount applies the tier to a lesson's credit cost, rounding down.
func (p Policy) RefundAmount(credits int) int {
	return credits * p.RefundPercent / 100
}
