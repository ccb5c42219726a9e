package analytics

import (
	"sort"
	"time"

	"github.com/gutsafe/gutsafe-api/schema"
)

// relative severity change (in percent) beyond which a symptom is no longer
// considered stable
const trendChangeThreshold = 10.0

// weekStart truncates t to the Sunday 00:00 opening its calendar week, in loc.
func weekStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

type weeklySeverity struct {
	week  time.Time
	sum   int
	count int
}

// AnalyzeTrends buckets entries into calendar weeks (Sunday boundary) and
// classifies each symptom type by comparing the mean weekly severity of the
// first half of the weeks against the second half. Symptoms observed in
// fewer than two weeks are classified stable.
func AnalyzeTrends(entries []schema.SymptomLogEntry, loc *time.Location) schema.TrendSummary {
	if loc == nil {
		loc = time.Local
	}

	summary := schema.TrendSummary{
		Improving: make([]schema.SymptomType, 0),
		Worsening: make([]schema.SymptomType, 0),
		Stable:    make([]schema.SymptomType, 0),
	}

	weeks := map[schema.SymptomType]map[time.Time]*weeklySeverity{}
	order := make([]schema.SymptomType, 0)

	for _, entry := range entries {
		week := weekStart(entry.Timestamp, loc)
		for _, observation := range entry.Symptoms {
			byWeek, ok := weeks[observation.Type]
			if !ok {
				byWeek = map[time.Time]*weeklySeverity{}
				weeks[observation.Type] = byWeek
				order = append(order, observation.Type)
			}

			w, ok := byWeek[week]
			if !ok {
				w = &weeklySeverity{week: week}
				byWeek[week] = w
			}
			w.sum += observation.Severity
			w.count++
		}
	}

	for _, symptomType := range order {
		byWeek := weeks[symptomType]

		ordered := make([]*weeklySeverity, 0, len(byWeek))
		for _, w := range byWeek {
			ordered = append(ordered, w)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].week.Before(ordered[j].week)
		})

		if len(ordered) < 2 {
			summary.Stable = append(summary.Stable, symptomType)
			continue
		}

		averages := make([]float64, 0, len(ordered))
		for _, w := range ordered {
			averages = append(averages, float64(w.sum)/float64(w.count))
		}

		mid := len(averages) / 2
		change := ChangeRate(mean(averages[mid:]), mean(averages[:mid]))

		switch {
		case change < -trendChangeThreshold:
			summary.Improving = append(summary.Improving, symptomType)
		case change > trendChangeThreshold:
			summary.Worsening = append(summary.Worsening, symptomType)
		default:
			summary.Stable = append(summary.Stable, symptomType)
		}
	}

	return summary
}
