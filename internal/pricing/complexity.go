package pricing

// Band is a human-facing complexity bucket. Classification is advisory,
// so out-of-range scores are clamped rather than rejected.
type Band struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var (
	bandSimple = Band{
		Label:       "Simple",
		Description: "Everyday language with common vocabulary. Suitable for most translators.",
	}
	bandModerate = Band{
		Label:       "Moderate",
		Description: "Some specialized terminology or longer sentence structure. Subject familiarity helps.",
	}
	bandComplex = Band{
		Label:       "Complex",
		Description: "Dense technical, legal or literary content. Requires domain expertise.",
	}
)

// Classify maps a complexity score to its band. Boundaries are
// inclusive on the lower band: 0.5 is still Simple, 0.75 still Moderate.
func Classify(score float64) Band {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	switch {
	case score <= 0.5:
		return bandSimple
	case score <= 0.75:
		return bandModerate
	default:
		return bandComplex
	}
}
