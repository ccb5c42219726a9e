// Package report assembles periodic symptom analytics reports and memoizes
// them in an expiring cache.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gutsafe/gutsafe-api/analytics"
	"github.com/gutsafe/gutsafe-api/schema"
)

// CacheTTL bounds how stale a cached report can be. New log writes do not
// invalidate the cache; a report requested again within the TTL returns the
// cached bytes even if logs arrived in between.
const CacheTTL = 5 * time.Minute

const topTriggerCount = 10

var ErrUnknownPeriod = fmt.Errorf("unknown report period")

// SymptomLogSource is the slice of the store the generator reads from.
type SymptomLogSource interface {
	GetSymptomLogsByDateRange(accountNumber string, start, end time.Time) ([]schema.SymptomLogEntry, error)
}

// Generator computes symptom reports. Collaborators are injected explicitly:
// one generator per server, no global state, and tests swap the clock.
type Generator struct {
	source SymptomLogSource
	cache  Cache
	now    func() time.Time
}

func NewGenerator(source SymptomLogSource, cache Cache, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		source: source,
		cache:  cache,
		now:    now,
	}
}

func periodStart(period schema.ReportPeriod, now time.Time) (time.Time, error) {
	switch period {
	case schema.PeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case schema.PeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case schema.PeriodQuarter:
		return now.AddDate(0, -3, 0), nil
	case schema.PeriodYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, ErrUnknownPeriod
	}
}

// Generate returns the marshaled report for one account and period. The
// result is cached per (account, period, calendar day) for CacheTTL; a cache
// hit returns the stored bytes unchanged. loc selects the wall clock used
// for histograms and week bucketing; nil means the server's local zone.
func (g *Generator) Generate(ctx context.Context, accountNumber string, period schema.ReportPeriod, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.Local
	}

	now := g.now()
	start, err := periodStart(period, now)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("report:%s:%s:%s", accountNumber, period, now.In(loc).Format("2006-01-02"))

	if cached, ok, err := g.cache.Get(ctx, key); err != nil {
		log.WithError(err).WithField("prefix", "report").Warn("report cache lookup failed")
	} else if ok {
		return cached, nil
	}

	entries, err := g.source.GetSymptomLogsByDateRange(accountNumber, start, now)
	if err != nil {
		return nil, err
	}

	generated := schema.SymptomReport{
		AccountNumber:    accountNumber,
		Period:           period,
		StartedAt:        start,
		EndedAt:          now,
		GeneratedAt:      now,
		TotalLogs:        len(entries),
		Insights:         analytics.AnalyzeSymptomInsights(entries, now, loc),
		SymptomFrequency: symptomFrequency(entries),
		TopTriggers:      topTriggers(entries),
	}

	encoded, err := json.Marshal(generated)
	if err != nil {
		return nil, err
	}

	if err := g.cache.Set(ctx, key, encoded, CacheTTL); err != nil {
		log.WithError(err).WithField("prefix", "report").Warn("report cache write failed")
	}

	return encoded, nil
}

func symptomFrequency(entries []schema.SymptomLogEntry) map[schema.SymptomType]int {
	frequency := map[schema.SymptomType]int{}
	for _, entry := range entries {
		for _, observation := range entry.Symptoms {
			frequency[observation.Type]++
		}
	}
	return frequency
}

// topTriggers ranks food mentions across all entries by raw occurrence
// count. The severity column is the mean of the mentioning entries' average
// symptom severity, a rough weight for how bad the days with that food were.
func topTriggers(entries []schema.SymptomLogEntry) []schema.TriggerRanking {
	type triggerAccumulator struct {
		count       int
		severitySum float64
	}

	triggers := map[string]*triggerAccumulator{}
	order := make([]string, 0)

	for _, entry := range entries {
		var severitySum int
		for _, observation := range entry.Symptoms {
			severitySum += observation.Severity
		}
		var entrySeverity float64
		if len(entry.Symptoms) > 0 {
			entrySeverity = float64(severitySum) / float64(len(entry.Symptoms))
		}

		for _, food := range entry.FoodItems {
			acc, ok := triggers[food]
			if !ok {
				acc = &triggerAccumulator{}
				triggers[food] = acc
				order = append(order, food)
			}
			acc.count++
			acc.severitySum += entrySeverity
		}
	}

	ranking := make([]schema.TriggerRanking, 0, len(order))
	for _, food := range order {
		acc := triggers[food]
		ranking = append(ranking, schema.TriggerRanking{
			Name:            food,
			Occurrences:     acc.count,
			AverageSeverity: acc.severitySum / float64(acc.count),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Occurrences > ranking[j].Occurrences
	})

	if len(ranking) > topTriggerCount {
		ranking = ranking[:topTriggerCount]
	}
	return ranking
}
