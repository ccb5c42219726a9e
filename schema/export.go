package schema

import "time"

const ExportVersion = 1

// ExportDocument is the backup / data-portability envelope for an account's
// full symptom log list. SymptomLogs is a pointer so that a payload missing
// the array entirely can be told apart from an empty one.
type ExportDocument struct {
	Version       int                `json:"version"`
	AccountNumber string             `json:"account_number,omitempty"`
	ExportedAt    time.Time          `json:"exported_at"`
	SymptomLogs   *[]SymptomLogEntry `json:"symptom_logs"`
}
