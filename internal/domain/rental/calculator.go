package rental

const (
	// Ranges shorter than this are billed the minimum.
	ShortRentalThresholdDays = 3
	MinimumBillableDays      = 1
)

type DurationCalculator interface {
	BillableDays(r DateRange) int
}

// DefaultDurationCalculator excludes one boundary date from ranges of
// ShortRentalThresholdDays or more.
type DefaultDurationCalculator struct {
	Threshold int
	Minimum   int
}

func NewDefaultDurationCalculator() *DefaultDurationCalculator {
	return &DefaultDurationCalculator{
		Threshold: ShortRentalThresholdDays,
		Minimum:   MinimumBillableDays,
	}
}

func (c *DefaultDurationCalculator) BillableDays(r DateRange) int {
	raw := r.RawDays()
	if raw < c.Threshold {
		return c.Minimum
	}
	days := raw - 1
	if days < c.Minimum {
		return c.Minimum
	}
	return days
}

// BillableDays applies the default policy.
func BillableDays(r DateRange) int {
	return NewDefaultDurationCalculator().BillableDays(r)
}
