package analysis

// AssessmentLevel grades a qualitative reading of a ratio.
type AssessmentLevel string

const (
	LevelStrong   AssessmentLevel = "strong"
	LevelAdequate AssessmentLevel = "adequate"
	LevelWarning  AssessmentLevel = "warning"
)

// Assessment is the annotation text shown next to a ratio panel.
type Assessment struct {
	Level   AssessmentLevel `json:"level"`
	Message string          `json:"message"`
}

// AssessLiquidity grades the current ratio.
func AssessLiquidity(currentRatio float64) Assessment {
	switch {
	case currentRatio >= 1.5:
		return Assessment{Level: LevelStrong, Message: "Strong liquidity position"}
	case currentRatio >= 1.0:
		return Assessment{Level: LevelAdequate, Message: "Adequate liquidity"}
	default:
		return Assessment{Level: LevelWarning, Message: "Potential liquidity concerns"}
	}
}

// AssessLeverage grades the debt-to-equity ratio.
func AssessLeverage(debtToEquity float64) Assessment {
	switch {
	case debtToEquity <= 1.0:
		return Assessment{Level: LevelStrong, Message: "Conservative leverage"}
	case debtToEquity <= 2.0:
		return Assessment{Level: LevelAdequate, Message: "Moderate leverage"}
	default:
		return Assessment{Level: LevelWarning, Message: "High leverage - increased risk"}
	}
}

// RadarScore is one spoke of the normalized ratio radar chart.
type RadarScore struct {
	Axis  string  `json:"axis"`
	Score float64 `json:"score"`
}

// RadarScores normalizes a subset of the ratios to a 0-100 scale for the
// radar chart. Debt/Equity is inverted so that lower leverage scores
// higher.
func (r *RatioSet) RadarScores() []RadarScore {
	return []RadarScore{
		{Axis: RatioROE, Score: clamp(r.ROE, 50) / 50 * 100},
		{Axis: RatioROA, Score: clamp(r.ROA, 25) / 25 * 100},
		{Axis: RatioCurrentRatio, Score: clamp(r.CurrentRatio, 3) / 3 * 100},
		{Axis: "Debt/Equity", Score: floor0(100 - r.DebtToEquity/2*100)},
	}
}

func clamp(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
