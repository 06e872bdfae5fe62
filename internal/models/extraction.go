package models

const (
	GameBGMI        = "BGMI"
	GameFreeFire    = "Free Fire"
	GameClashRoyale = "Clash Royale"
)

// ManualReviewThreshold is the lowest confidence accepted without an admin check.
const ManualReviewThreshold = 0.85

type ExtractionResult struct {
	Kills      int     `json:"kills"`
	Placement  int     `json:"placement"`
	Confidence float64 `json:"confidence"`
	RawText    string  `json:"raw_text"`
	Error      string  `json:"error,omitempty"`
}

func (r ExtractionResult) Failed() bool {
	return r.Error != ""
}

// NeedsManualReview reports whether an admin has to confirm the result
// before it is credited to a team.
func (r ExtractionResult) NeedsManualReview() bool {
	return r.Failed() || r.Confidence < ManualReviewThreshold
}
