package analytics

import (
	"sort"
	"time"

	"github.com/gutsafe/gutsafe-api/schema"
)

// maximum number of trigger strings carried on a pattern
const maxCommonTriggers = 5

type patternAccumulator struct {
	occurrences  int
	severitySum  int
	triggers     []string
	triggerSeen  map[string]bool
	timeOfDay    map[string]int
	dayOfWeek    map[string]int
	foodCount    int
	stressCount  int
	sleepCount   int
	weatherCount int
}

func newPatternAccumulator() *patternAccumulator {
	return &patternAccumulator{
		triggers:    make([]string, 0),
		triggerSeen: map[string]bool{},
		timeOfDay: map[string]int{
			schema.TimeOfDayMorning:   0,
			schema.TimeOfDayAfternoon: 0,
			schema.TimeOfDayEvening:   0,
			schema.TimeOfDayNight:     0,
		},
		dayOfWeek: map[string]int{},
	}
}

func (a *patternAccumulator) addTrigger(t string) {
	if t == "" || a.triggerSeen[t] {
		return
	}
	a.triggerSeen[t] = true
	a.triggers = append(a.triggers, t)
}

// timeOfDayBucket maps a wall-clock hour in loc onto the 4-bucket histogram.
func timeOfDayBucket(t time.Time, loc *time.Location) string {
	switch hour := t.In(loc).Hour(); {
	case hour >= 6 && hour < 12:
		return schema.TimeOfDayMorning
	case hour >= 12 && hour < 18:
		return schema.TimeOfDayAfternoon
	case hour >= 18 && hour < 22:
		return schema.TimeOfDayEvening
	default:
		return schema.TimeOfDayNight
	}
}

// AnalyzePatterns summarizes every symptom type observed in entries. The
// result is sorted by descending frequency; ties keep first-observed order.
// Histogram hours and weekday names are taken in loc, or the system local
// zone when loc is nil. An empty input yields an empty, non-nil slice.
func AnalyzePatterns(entries []schema.SymptomLogEntry, loc *time.Location) []schema.SymptomPattern {
	if loc == nil {
		loc = time.Local
	}

	groups := map[schema.SymptomType]*patternAccumulator{}
	order := make([]schema.SymptomType, 0)

	for _, entry := range entries {
		bucket := timeOfDayBucket(entry.Timestamp, loc)
		weekday := entry.Timestamp.In(loc).Weekday().String()

		for _, observation := range entry.Symptoms {
			acc, ok := groups[observation.Type]
			if !ok {
				acc = newPatternAccumulator()
				groups[observation.Type] = acc
				order = append(order, observation.Type)
			}

			acc.occurrences++
			acc.severitySum += observation.Severity
			acc.timeOfDay[bucket]++
			acc.dayOfWeek[weekday]++

			for _, food := range entry.FoodItems {
				acc.addTrigger(food)
			}
			acc.addTrigger(entry.Notes)

			if len(entry.FoodItems) > 0 {
				acc.foodCount++
			}
			if entry.StressLevel > 5 {
				acc.stressCount++
			}
			if entry.SleepQuality > 0 && entry.SleepQuality < 5 {
				acc.sleepCount++
			}
			if entry.Weather != "" {
				acc.weatherCount++
			}
		}
	}

	patterns := make([]schema.SymptomPattern, 0, len(order))
	for _, symptomType := range order {
		acc := groups[symptomType]

		frequency := float64(acc.occurrences) / float64(len(entries))
		if frequency > 1 {
			frequency = 1
		}

		triggers := acc.triggers
		if len(triggers) > maxCommonTriggers {
			triggers = triggers[:maxCommonTriggers]
		}

		occurrences := float64(acc.occurrences)
		patterns = append(patterns, schema.SymptomPattern{
			Type:            symptomType,
			Occurrences:     acc.occurrences,
			Frequency:       frequency,
			AverageSeverity: float64(acc.severitySum) / occurrences,
			CommonTriggers:  triggers,
			TimeOfDay:       acc.timeOfDay,
			DayOfWeek:       acc.dayOfWeek,
			Correlations: schema.CorrelationFactors{
				Food:    float64(acc.foodCount) / occurrences,
				Stress:  float64(acc.stressCount) / occurrences,
				Sleep:   float64(acc.sleepCount) / occurrences,
				Weather: float64(acc.weatherCount) / occurrences,
			},
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})

	return patterns
}
