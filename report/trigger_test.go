package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gutsafe/gutsafe-api/schema"
)

func TestTopTriggersRanking(t *testing.T) {
	ts := time.Date(2023, 5, 8, 12, 0, 0, 0, time.UTC)

	entries := []schema.SymptomLogEntry{
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Bloating, Severity: 8}},
			FoodItems: []string{"dairy", "bread"},
			Timestamp: ts,
		},
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Bloating, Severity: 4}},
			FoodItems: []string{"dairy"},
			Timestamp: ts.Add(24 * time.Hour),
		},
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Gas, Severity: 2}},
			FoodItems: []string{"beans"},
			Timestamp: ts.Add(48 * time.Hour),
		},
	}

	ranking := topTriggers(entries)

	assert.Len(t, ranking, 3)
	assert.Equal(t, "dairy", ranking[0].Name)
	assert.Equal(t, 2, ranking[0].Occurrences)
	assert.InDelta(t, 6.0, ranking[0].AverageSeverity, 0.01, "mean of the mentioning entries' average severity")
}

func TestTopTriggersCap(t *testing.T) {
	ts := time.Date(2023, 5, 8, 12, 0, 0, 0, time.UTC)

	foods := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	entries := make([]schema.SymptomLogEntry, 0, len(foods))
	for _, food := range foods {
		entries = append(entries, schema.SymptomLogEntry{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Gas, Severity: 3}},
			FoodItems: []string{food},
			Timestamp: ts,
		})
	}

	assert.Len(t, topTriggers(entries), 10)
}

func TestTopTriggersNoFoods(t *testing.T) {
	entries := []schema.SymptomLogEntry{
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Gas, Severity: 3}},
			Timestamp: time.Date(2023, 5, 8, 12, 0, 0, 0, time.UTC),
		},
	}

	ranking := topTriggers(entries)

	assert.NotNil(t, ranking)
	assert.Empty(t, ranking)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

	start, err := periodStart(schema.PeriodWeek, now)
	assert.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), start)

	start, err = periodStart(schema.PeriodMonth, now)
	assert.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -1, 0), start)

	start, err = periodStart(schema.PeriodQuarter, now)
	assert.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -3, 0), start)

	start, err = periodStart(schema.PeriodYear, now)
	assert.NoError(t, err)
	assert.Equal(t, now.AddDate(-1, 0, 0), start)

	_, err = periodStart(schema.ReportPeriod("fortnight"), now)
	assert.Equal(t, ErrUnknownPeriod, err)
}
