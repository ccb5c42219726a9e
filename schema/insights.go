package schema

import "time"

// Time-of-day histogram buckets, by local wall-clock hour of the log entry.
const (
	TimeOfDayMorning   = "morning"   // 06:00 - 11:59
	TimeOfDayAfternoon = "afternoon" // 12:00 - 17:59
	TimeOfDayEvening   = "evening"   // 18:00 - 21:59
	TimeOfDayNight     = "night"     // 22:00 - 05:59
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendWorsening TrendDirection = "worsening"
	TrendStable    TrendDirection = "stable"
)

// CorrelationFactors are presence-rate heuristics in [0, 1]: the fraction of
// a symptom's occurrences that co-occur with the contextual factor. They are
// not statistical correlation coefficients.
type CorrelationFactors struct {
	Food    float64 `json:"food" bson:"food"`
	Stress  float64 `json:"stress" bson:"stress"`
	Sleep   float64 `json:"sleep" bson:"sleep"`
	Weather float64 `json:"weather" bson:"weather"`
}

// SymptomPattern is the derived statistical summary of one symptom type
// across a set of log entries. It is recomputed on demand and never persisted.
type SymptomPattern struct {
	Type            SymptomType        `json:"type"`
	Occurrences     int                `json:"occurrences"`
	Frequency       float64            `json:"frequency"`
	AverageSeverity float64            `json:"average_severity"`
	CommonTriggers  []string           `json:"common_triggers"`
	TimeOfDay       map[string]int     `json:"time_of_day"`
	DayOfWeek       map[string]int     `json:"day_of_week"`
	Correlations    CorrelationFactors `json:"correlations"`
}

type TrendSummary struct {
	Improving []SymptomType `json:"improving"`
	Worsening []SymptomType `json:"worsening"`
	Stable    []SymptomType `json:"stable"`
}

type Recommendations struct {
	Dietary   []string `json:"dietary"`
	Lifestyle []string `json:"lifestyle"`
	Medical   []string `json:"medical"`
}

type RiskFactors struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// SymptomInsights aggregates patterns, trends, recommendations and risk tiers
// for a window of log entries, with an overall confidence score in [0, 1].
type SymptomInsights struct {
	Patterns        []SymptomPattern `json:"patterns"`
	Trends          TrendSummary     `json:"trends"`
	Recommendations Recommendations  `json:"recommendations"`
	RiskFactors     RiskFactors      `json:"risk_factors"`
	Confidence      float64          `json:"confidence"`
}

// TriggerRanking is one row of a report's top-trigger table: a food string,
// how many log entries mention it, and the mean of the mentioning entries'
// average symptom severity.
type TriggerRanking struct {
	Name            string  `json:"name"`
	Occurrences     int     `json:"occurrences"`
	AverageSeverity float64 `json:"average_severity"`
}

type ReportPeriod string

const (
	PeriodWeek    ReportPeriod = "week"
	PeriodMonth   ReportPeriod = "month"
	PeriodQuarter ReportPeriod = "quarter"
	PeriodYear    ReportPeriod = "year"
)

// SymptomReport is the assembled analytics report for one account and period.
type SymptomReport struct {
	AccountNumber    string              `json:"account_number"`
	Period           ReportPeriod        `json:"period"`
	StartedAt        time.Time           `json:"started_at"`
	EndedAt          time.Time           `json:"ended_at"`
	GeneratedAt      time.Time           `json:"generated_at"`
	TotalLogs        int                 `json:"total_logs"`
	Insights         SymptomInsights     `json:"insights"`
	SymptomFrequency map[SymptomType]int `json:"symptom_frequency"`
	TopTriggers      []TriggerRanking    `json:"top_triggers"`
}
