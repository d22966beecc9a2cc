package builder

// TimeUnit is a unit for relative times and aggregator sampling.
type TimeUnit string

// Time units accepted by KairosDB.
const (
	Milliseconds TimeUnit = "milliseconds"
	Seconds      TimeUnit = "seconds"
	Minutes      TimeUnit = "minutes"
	Hours        TimeUnit = "hours"
	Days         TimeUnit = "days"
	Weeks        TimeUnit = "weeks"
	Months       TimeUnit = "months"
	Years        TimeUnit = "years"
)

func (u TimeUnit) valid() bool {
	switch u {
	case Milliseconds, Seconds, Minutes, Hours, Days, Weeks, Months, Years:
		return true
	}
	return false
}

// RelativeTime is an offset from now, e.g. {Value: 2, Unit: Hours} for "two
// hours ago".
type RelativeTime struct {
	Value int      `json:"value"`
	Unit  TimeUnit `json:"unit"`
}
