package assessment

// Score bounds for a complete answer set.
const (
	MinScore = 0
	MaxScore = 27
)

// Severity is the category a score falls into.
type Severity string

const (
	SeverityNone             Severity = "none"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately_severe"
	SeveritySevere           Severity = "severe"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityNone, SeverityMild, SeverityModerate, SeverityModeratelySevere, SeveritySevere:
		return true
	}
	return false
}

// Label returns the English category name.
func (s Severity) Label() string {
	switch s {
	case SeverityNone:
		return "mentally healthy"
	case SeverityMild:
		return "mild depression"
	case SeverityModerate:
		return "moderate depression"
	case SeverityModeratelySevere:
		return "moderately severe depression"
	case SeveritySevere:
		return "severe depression"
	default:
		return "unknown"
	}
}

func (s Severity) String() string {
	return s.Label()
}

// Band is a contiguous score range mapped to one severity. Max is
// inclusive; the last band has Max = MaxScore.
type Band struct {
	Severity Severity
	Min      int
	Max      int
}

// bands are ordered by Min. A score belongs to the last band whose Min it
// reaches.
var bands = []Band{
	{Severity: SeverityNone, Min: 0, Max: 4},
	{Severity: SeverityMild, Min: 5, Max: 9},
	{Severity: SeverityModerate, Min: 10, Max: 14},
	{Severity: SeverityModeratelySevere, Min: 15, Max: 19},
	{Severity: SeveritySevere, Min: 20, Max: MaxScore},
}

// Bands returns the severity bands in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify maps a score to its severity. Lower bounds are inclusive; the
// top band is open-ended and anything below 5 is SeverityNone.
func Classify(score int) Severity {
	sev := SeverityNone
	for _, b := range bands {
		if score >= b.Min {
			sev = b.Severity
		}
	}
	return sev
}

// NeedsSupport reports whether the score is at or above the mild band,
// the point from which the result carries encouragement to seek help.
func NeedsSupport(score int) bool {
	return Classify(score) != SeverityNone
}
