package schema

import "time"

const (
	SymptomLogCollection = "symptomLogs"

	MinSeverity = 1
	MaxSeverity = 10
)

type ExerciseLevel string

const (
	ExerciseNone     ExerciseLevel = "none"
	ExerciseLight    ExerciseLevel = "light"
	ExerciseModerate ExerciseLevel = "moderate"
	ExerciseIntense  ExerciseLevel = "intense"
)

// SymptomObservation is one symptom recorded within a log entry. Severity is
// clamped to [MinSeverity, MaxSeverity] at the API boundary; the analytics
// code takes stored values as-is.
type SymptomObservation struct {
	Type     SymptomType `json:"type" bson:"type"`
	Severity int         `json:"severity" bson:"severity"`
}

// SymptomLogEntry is one user-submitted record of concurrent symptom
// observations plus contextual metadata. Entries are append-only and
// immutable apart from explicit updates by id.
type SymptomLogEntry struct {
	ID              string               `json:"id" bson:"_id"`
	AccountNumber   string               `json:"account_number" bson:"account_number"`
	Symptoms        []SymptomObservation `json:"symptoms" bson:"symptoms"`
	FoodItems       []string             `json:"food_items" bson:"food_items"`
	Notes           string               `json:"notes,omitempty" bson:"notes,omitempty"`
	StressLevel     int                  `json:"stress_level,omitempty" bson:"stress_level,omitempty"`
	SleepQuality    int                  `json:"sleep_quality,omitempty" bson:"sleep_quality,omitempty"`
	ExerciseLevel   ExerciseLevel        `json:"exercise_level,omitempty" bson:"exercise_level,omitempty"`
	MedicationTaken []string             `json:"medication_taken,omitempty" bson:"medication_taken,omitempty"`
	Tags            []string             `json:"tags,omitempty" bson:"tags,omitempty"`
	Weather         string               `json:"weather,omitempty" bson:"weather,omitempty"`
	Timestamp       time.Time            `json:"ts" bson:"ts"`
}

// SymptomLogUpdate carries the fields of an entry that may change after
// creation. Nil fields are left untouched.
type SymptomLogUpdate struct {
	Symptoms        []SymptomObservation `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	FoodItems       []string             `json:"food_items,omitempty" bson:"food_items,omitempty"`
	Notes           *string              `json:"notes,omitempty" bson:"notes,omitempty"`
	StressLevel     *int                 `json:"stress_level,omitempty" bson:"stress_level,omitempty"`
	SleepQuality    *int                 `json:"sleep_quality,omitempty" bson:"sleep_quality,omitempty"`
	ExerciseLevel   *ExerciseLevel       `json:"exercise_level,omitempty" bson:"exercise_level,omitempty"`
	MedicationTaken []string             `json:"medication_taken,omitempty" bson:"medication_taken,omitempty"`
	Tags            []string             `json:"tags,omitempty" bson:"tags,omitempty"`
	Weather         *string              `json:"weather,omitempty" bson:"weather,omitempty"`
}
