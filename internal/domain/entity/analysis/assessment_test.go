package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessLiquidity(t *testing.T) {
	tests := []struct {
		name         string
		currentRatio float64
		level        AssessmentLevel
	}{
		{"strong above threshold", 2.5, LevelStrong},
		{"strong at threshold", 1.5, LevelStrong},
		{"adequate", 1.2, LevelAdequate},
		{"adequate at threshold", 1.0, LevelAdequate},
		{"warning", 0.8, LevelWarning},
		{"warning at zero", 0, LevelWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessLiquidity(tt.currentRatio)
			assert.Equal(t, tt.level, a.Level)
			assert.NotEmpty(t, a.Message)
		})
	}
}

func TestAssessLeverage(t *testing.T) {
	tests := []struct {
		name         string
		debtToEquity float64
		level        AssessmentLevel
	}{
		{"conservative", 0.5, LevelStrong},
		{"conservative at threshold", 1.0, LevelStrong},
		{"moderate", 1.5, LevelAdequate},
		{"moderate at threshold", 2.0, LevelAdequate},
		{"high", 3.0, LevelWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessLeverage(tt.debtToEquity)
			assert.Equal(t, tt.level, a.Level)
			assert.NotEmpty(t, a.Message)
		})
	}
}

func TestRadarScores(t *testing.T) {
	r := &RatioSet{ROE: 25, ROA: 50, CurrentRatio: 1.5, DebtToEquity: 0.5}

	scores := map[string]float64{}
	for _, s := range r.RadarScores() {
		scores[s.Axis] = s.Score
	}

	assert.InDelta(t, 50.0, scores[RatioROE], 1e-9)
	// ROA caps at 25 before scaling.
	assert.InDelta(t, 100.0, scores[RatioROA], 1e-9)
	assert.InDelta(t, 50.0, scores[RatioCurrentRatio], 1e-9)
	assert.InDelta(t, 75.0, scores["Debt/Equity"], 1e-9)
}

func TestRadarScoresClamped(t *testing.T) {
	r := &RatioSet{ROE: 500, ROA: 80, CurrentRatio: 10, DebtToEquity: 5}

	for _, s := range r.RadarScores() {
		assert.GreaterOrEqual(t, s.Score, 0.0, s.Axis)
		assert.LessOrEqual(t, s.Score, 100.0, s.Axis)
	}
}
