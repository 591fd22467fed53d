package moderation

type Decision string

const (
	DecisionReject       Decision = "reject"
	DecisionManualReview Decision = "manual_review"
	DecisionApprove      Decision = "approve"
)

func ShouldAutoReject(r Result) bool {
	return r.IsInappropriate || (r.IsSpam && r.Confidence > 0.8)
}

func ShouldRequireManualReview(r Result) bool {
	return (r.IsSpam && r.Confidence > 0.5) || (r.Confidence > 0.3 && len(r.Reasons) > 2)
}

// Classify checks the tiers in order; the first that applies wins.
func Classify(r Result) Decision {
	switch {
	case ShouldAutoReject(r):
		return DecisionReject
	case ShouldRequireManualReview(r):
		return DecisionManualReview
	default:
		return DecisionApprove
	}
}
