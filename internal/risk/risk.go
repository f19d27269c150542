package risk

type Verdict string

const (
	VerdictLow      Verdict = "LOW"
	VerdictModerate Verdict = "MODERATE"
	VerdictCritical Verdict = "CRITICAL"
)

// Aggregate folds the final finding counts into the verdict, top-down: any
// failure is disqualifying on its own; a pile of warnings above the limit is
// moderate; everything else is low.
func Aggregate(failCount, warnCount, moderateWarnLimit int) Verdict {
	switch {
	case failCount > 0:
		return VerdictCritical
	case warnCount > moderateWarnLimit:
		return VerdictModerate
	default:
		return VerdictLow
	}
}

// Advice is the one-line recommendation printed next to the verdict.
func Advice(v Verdict) string {
	switch v {
	case VerdictCritical:
		return "Do not buy until every failure is explained or the price reflects it."
	case VerdictModerate:
		return "Negotiate: several warnings need answers from the seller."
	default:
		return "No disqualifying findings; complete the manual checklist before paying."
	}
}
