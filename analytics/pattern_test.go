package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gutsafe/gutsafe-api/analytics"
	"github.com/gutsafe/gutsafe-api/schema"
)

func logAt(ts time.Time, observations []schema.SymptomObservation, foods ...string) schema.SymptomLogEntry {
	return schema.SymptomLogEntry{
		Symptoms:  observations,
		FoodItems: foods,
		Timestamp: ts,
	}
}

func TestAnalyzePatternsBloatingScenario(t *testing.T) {
	base := time.Date(2023, 5, 8, 9, 30, 0, 0, time.UTC)

	entries := []schema.SymptomLogEntry{
		logAt(base, []schema.SymptomObservation{{Type: schema.Bloating, Severity: 2}}, "dairy"),
		logAt(base.Add(24*time.Hour), []schema.SymptomObservation{{Type: schema.Bloating, Severity: 8}}, "dairy"),
		logAt(base.Add(48*time.Hour), []schema.SymptomObservation{{Type: schema.Bloating, Severity: 9}}, "dairy"),
	}

	patterns := analytics.AnalyzePatterns(entries, time.UTC)

	assert.Len(t, patterns, 1)
	p := patterns[0]
	assert.Equal(t, schema.Bloating, p.Type)
	assert.Equal(t, 1.0, p.Frequency, "all three entries report bloating")
	assert.InDelta(t, 6.33, p.AverageSeverity, 0.01)
	assert.Equal(t, 1.0, p.Correlations.Food)
	assert.Contains(t, p.CommonTriggers, "dairy")
	assert.Equal(t, 3, p.TimeOfDay[schema.TimeOfDayMorning])
}

func TestAnalyzePatternsOccurrenceSum(t *testing.T) {
	base := time.Date(2023, 5, 8, 14, 0, 0, 0, time.UTC)

	entries := []schema.SymptomLogEntry{
		logAt(base, []schema.SymptomObservation{
			{Type: schema.Bloating, Severity: 4},
			{Type: schema.Gas, Severity: 3},
		}),
		logAt(base.Add(time.Hour), []schema.SymptomObservation{
			{Type: schema.Gas, Severity: 5},
		}),
		logAt(base.Add(2*time.Hour), []schema.SymptomObservation{
			{Type: schema.Nausea, Severity: 7},
			{Type: schema.Gas, Severity: 2},
			{Type: schema.Bloating, Severity: 6},
		}),
	}

	var pairs int
	for _, e := range entries {
		pairs += len(e.Symptoms)
	}

	patterns := analytics.AnalyzePatterns(entries, time.UTC)

	var occurrences int
	for _, p := range patterns {
		occurrences += p.Occurrences
		assert.GreaterOrEqual(t, p.Frequency, 0.0)
		assert.LessOrEqual(t, p.Frequency, 1.0)
	}
	assert.Equal(t, pairs, occurrences, "every (entry, symptom) pair is counted exactly once")

	for i := 1; i < len(patterns); i++ {
		assert.GreaterOrEqual(t, patterns[i-1].Frequency, patterns[i].Frequency, "patterns sorted by descending frequency")
	}
}

func TestAnalyzePatternsEmptyInput(t *testing.T) {
	patterns := analytics.AnalyzePatterns(nil, time.UTC)

	assert.NotNil(t, patterns)
	assert.Len(t, patterns, 0)
}

func TestAnalyzePatternsCorrelationCounters(t *testing.T) {
	base := time.Date(2023, 5, 8, 23, 15, 0, 0, time.UTC)

	entries := []schema.SymptomLogEntry{
		{
			Symptoms:     []schema.SymptomObservation{{Type: schema.Cramping, Severity: 5}},
			StressLevel:  8,
			SleepQuality: 3,
			Weather:      "humid",
			Timestamp:    base,
		},
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Cramping, Severity: 4}},
			FoodItems: []string{"coffee"},
			Timestamp: base.Add(24 * time.Hour),
		},
	}

	patterns := analytics.AnalyzePatterns(entries, time.UTC)

	assert.Len(t, patterns, 1)
	correlations := patterns[0].Correlations
	assert.Equal(t, 0.5, correlations.Food)
	assert.Equal(t, 0.5, correlations.Stress)
	assert.Equal(t, 0.5, correlations.Sleep)
	assert.Equal(t, 0.5, correlations.Weather)
}

func TestAnalyzePatternsUnsetSleepQualityIsNotPoorSleep(t *testing.T) {
	entries := []schema.SymptomLogEntry{
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Reflux, Severity: 6}},
			Timestamp: time.Date(2023, 5, 8, 8, 0, 0, 0, time.UTC),
		},
	}

	patterns := analytics.AnalyzePatterns(entries, time.UTC)

	assert.Equal(t, 0.0, patterns[0].Correlations.Sleep)
}

func TestAnalyzePatternsTriggerCap(t *testing.T) {
	entries := []schema.SymptomLogEntry{
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Bloating, Severity: 5}},
			FoodItems: []string{"milk", "bread", "beans", "onion", "garlic", "apple", "beer"},
			Notes:     "late dinner",
			Timestamp: time.Date(2023, 5, 8, 20, 0, 0, 0, time.UTC),
		},
	}

	patterns := analytics.AnalyzePatterns(entries, time.UTC)

	assert.Len(t, patterns[0].CommonTriggers, 5)
	assert.Equal(t, []string{"milk", "bread", "beans", "onion", "garlic"}, patterns[0].CommonTriggers)
}
