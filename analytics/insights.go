// Package analytics derives patterns, trends, recommendations and risk tiers
// from a user's symptom log entries. Every function is a pure computation
// over the slice it is handed; filtering to a time window is the caller's
// concern.
package analytics

import (
	"time"

	"github.com/gutsafe/gutsafe-api/schema"
)

// AnalyzeSymptomInsights runs the full analytics pipeline over entries.
// An empty input produces a complete, empty structure with zero confidence
// rather than an error: no data is a valid state.
func AnalyzeSymptomInsights(entries []schema.SymptomLogEntry, now time.Time, loc *time.Location) schema.SymptomInsights {
	patterns := AnalyzePatterns(entries, loc)
	trends := AnalyzeTrends(entries, loc)

	return schema.SymptomInsights{
		Patterns:        patterns,
		Trends:          trends,
		Recommendations: GenerateRecommendations(patterns, trends),
		RiskFactors:     AssessRisk(patterns, entries, now),
		Confidence:      Confidence(entries, now),
	}
}
