package analytics

import (
	"fmt"
	"time"

	"github.com/gutsafe/gutsafe-api/schema"
)

const (
	highRiskFrequency   = 0.5
	highRiskSeverity    = 7.0
	mediumRiskFrequency = 0.3
	mediumRiskSeverity  = 5.0

	recentWindow        = 7 * 24 * time.Hour
	recentLogLimit      = 5
	recentSevereLimit   = 2
	severeSeverityFloor = 8
)

// AssessRisk tiers each symptom pattern as high, medium or low risk, and
// appends an aggregate high-risk flag when the trailing seven days show an
// unusual volume of logs or of severe symptoms.
func AssessRisk(patterns []schema.SymptomPattern, entries []schema.SymptomLogEntry, now time.Time) schema.RiskFactors {
	risk := schema.RiskFactors{
		High:   make([]string, 0),
		Medium: make([]string, 0),
		Low:    make([]string, 0),
	}

	for _, p := range patterns {
		switch {
		case p.Frequency > highRiskFrequency && p.AverageSeverity > highRiskSeverity:
			risk.High = append(risk.High, string(p.Type))
		case p.Frequency > mediumRiskFrequency || p.AverageSeverity > mediumRiskSeverity:
			risk.Medium = append(risk.Medium, string(p.Type))
		default:
			risk.Low = append(risk.Low, string(p.Type))
		}
	}

	windowStart := now.Add(-recentWindow)
	var recentLogs, recentSevere int
	for _, entry := range entries {
		if entry.Timestamp.Before(windowStart) || entry.Timestamp.After(now) {
			continue
		}
		recentLogs++
		for _, observation := range entry.Symptoms {
			if observation.Severity > severeSeverityFloor {
				recentSevere++
				break
			}
		}
	}

	if recentLogs > recentLogLimit || recentSevere > recentSevereLimit {
		risk.High = append(risk.High, fmt.Sprintf(
			"%d symptom logs in the past 7 days, %d with severe symptoms", recentLogs, recentSevere))
	}

	return risk
}

// Confidence scores how much the insights can be trusted, from log volume
// and logging consistency. The result is clamped to [0, 1]; no logs means 0.
func Confidence(entries []schema.SymptomLogEntry, now time.Time) float64 {
	if len(entries) == 0 {
		return 0
	}

	confidence := 0.5
	switch {
	case len(entries) >= 30:
		confidence += 0.3
	case len(entries) >= 10:
		confidence += 0.2
	case len(entries) >= 5:
		confidence += 0.1
	}

	days := map[string]bool{}
	oldest := entries[0].Timestamp
	for _, entry := range entries {
		days[entry.Timestamp.Format("2006-01-02")] = true
		if entry.Timestamp.Before(oldest) {
			oldest = entry.Timestamp
		}
	}

	spanDays := now.Sub(oldest).Hours() / 24
	if spanDays < 1 {
		spanDays = 1
	}
	consistency := float64(len(days)) / spanDays
	if consistency > 1 {
		consistency = 1
	}
	confidence += 0.2 * consistency

	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
