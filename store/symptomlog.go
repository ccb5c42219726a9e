package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gutsafe/gutsafe-api/schema"
)

// SymptomLog is the persistence port for one account's symptom log entries.
// Entries are append-only; Update and Remove report an unknown id as a false
// boolean result, not as an error.
type SymptomLog interface {
	AppendSymptomLog(entry *schema.SymptomLogEntry) (string, error)
	GetSymptomLogs(accountNumber string, earlierThan time.Time, limit int64) ([]schema.SymptomLogEntry, error)
	GetSymptomLogsByDateRange(accountNumber string, start, end time.Time) ([]schema.SymptomLogEntry, error)
	SearchSymptomLogsByFood(accountNumber, nameSubstring string) ([]schema.SymptomLogEntry, error)
	GetSymptomLogsByType(accountNumber string, symptomType schema.SymptomType) ([]schema.SymptomLogEntry, error)
	UpdateSymptomLog(accountNumber, id string, update schema.SymptomLogUpdate) (bool, error)
	RemoveSymptomLog(accountNumber, id string) (bool, error)
	ExportSymptomLogs(accountNumber string) (*schema.ExportDocument, error)
	ImportSymptomLogs(accountNumber string, doc *schema.ExportDocument) (int, error)
}

// AppendSymptomLog inserts a new log entry, assigning an id and a timestamp
// when the caller left them unset. Existing entries are never touched.
func (m *mongoDB) AppendSymptomLog(entry *schema.SymptomLogEntry) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	c := m.client.Database(m.database).Collection(schema.SymptomLogCollection)
	if _, err := c.InsertOne(ctx, entry); err != nil {
		return "", err
	}

	return entry.ID, nil
}

// GetSymptomLogs returns up to limit entries reported before earlierThan,
// most recent first.
func (m *mongoDB) GetSymptomLogs(accountNumber string, earlierThan time.Time, limit int64) ([]schema.SymptomLogEntry, error) {
	query := bson.M{
		"account_number": accountNumber,
		"ts":             bson.M{"$lt": earlierThan},
	}

	return m.findSymptomLogs(query, options.Find().SetSort(bson.M{"ts": -1}).SetLimit(limit))
}

// GetSymptomLogsByDateRange returns entries with start <= ts <= end, most
// recent first. An empty result is a valid outcome, not an error.
func (m *mongoDB) GetSymptomLogsByDateRange(accountNumber string, start, end time.Time) ([]schema.SymptomLogEntry, error) {
	query := bson.M{
		"account_number": accountNumber,
		"ts": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}

	return m.findSymptomLogs(query, options.Find().SetSort(bson.M{"ts": -1}))
}

// SearchSymptomLogsByFood matches food items by case-insensitive substring.
func (m *mongoDB) SearchSymptomLogsByFood(accountNumber, nameSubstring string) ([]schema.SymptomLogEntry, error) {
	query := bson.M{
		"account_number": accountNumber,
		"food_items": primitive.Regex{Pattern: regexp.QuoteMeta(nameSubstring), Options: "i"},
	}

	return m.findSymptomLogs(query, options.Find().SetSort(bson.M{"ts": -1}))
}

func (m *mongoDB) GetSymptomLogsByType(accountNumber string, symptomType schema.SymptomType) ([]schema.SymptomLogEntry, error) {
	query := bson.M{
		"account_number": accountNumber,
		"symptoms.type":  symptomType,
	}

	return m.findSymptomLogs(query, options.Find().SetSort(bson.M{"ts": -1}))
}

func (m *mongoDB) findSymptomLogs(query bson.M, opts *options.FindOptions) ([]schema.SymptomLogEntry, error) {
	c := m.client.Database(m.database).Collection(schema.SymptomLogCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]schema.SymptomLogEntry, 0)
	for cur.Next(ctx) {
		var entry schema.SymptomLogEntry
		if err := cur.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// UpdateSymptomLog applies the non-nil fields of update to the entry with the
// given id. It returns false with no error when the id is unknown.
func (m *mongoDB) UpdateSymptomLog(accountNumber, id string, update schema.SymptomLogUpdate) (bool, error) {
	c := m.client.Database(m.database).Collection(schema.SymptomLogCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	fields := bson.M{}
	if update.Symptoms != nil {
		fields["symptoms"] = update.Symptoms
	}
	if update.FoodItems != nil {
		fields["food_items"] = update.FoodItems
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if update.StressLevel != nil {
		fields["stress_level"] = *update.StressLevel
	}
	if update.SleepQuality != nil {
		fields["sleep_quality"] = *update.SleepQuality
	}
	if update.ExerciseLevel != nil {
		fields["exercise_level"] = *update.ExerciseLevel
	}
	if update.MedicationTaken != nil {
		fields["medication_taken"] = update.MedicationTaken
	}
	if update.Tags != nil {
		fields["tags"] = update.Tags
	}
	if update.Weather != nil {
		fields["weather"] = *update.Weather
	}

	if len(fields) == 0 {
		return false, nil
	}

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "account_number": accountNumber},
		bson.M{"$set": fields})
	if err != nil {
		return false, err
	}

	return result.MatchedCount > 0, nil
}

// RemoveSymptomLog deletes the entry with the given id. It returns false
// with no error when the id is unknown.
func (m *mongoDB) RemoveSymptomLog(accountNumber, id string) (bool, error) {
	c := m.client.Database(m.database).Collection(schema.SymptomLogCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.DeleteOne(ctx, bson.M{"_id": id, "account_number": accountNumber})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}

// ExportSymptomLogs serializes the account's full log list for backup.
func (m *mongoDB) ExportSymptomLogs(accountNumber string) (*schema.ExportDocument, error) {
	entries, err := m.findSymptomLogs(
		bson.M{"account_number": accountNumber},
		options.Find().SetSort(bson.M{"ts": -1}))
	if err != nil {
		return nil, err
	}

	return &schema.ExportDocument{
		Version:       schema.ExportVersion,
		AccountNumber: accountNumber,
		ExportedAt:    time.Now().UTC(),
		SymptomLogs:   &entries,
	}, nil
}

// ImportSymptomLogs restores log entries from a backup document. The whole
// payload is validated before any write, so a malformed document leaves the
// store untouched. Returns the number of imported entries.
func (m *mongoDB) ImportSymptomLogs(accountNumber string, doc *schema.ExportDocument) (int, error) {
	if doc == nil || doc.SymptomLogs == nil {
		return 0, fmt.Errorf("%w: missing symptom_logs", ErrInvalidDataFormat)
	}

	entries := *doc.SymptomLogs
	docs := make([]interface{}, 0, len(entries))
	for i, entry := range entries {
		if len(entry.Symptoms) == 0 {
			return 0, fmt.Errorf("%w: entry %d has no symptoms", ErrInvalidDataFormat, i)
		}
		if entry.Timestamp.IsZero() {
			return 0, fmt.Errorf("%w: entry %d has no timestamp", ErrInvalidDataFormat, i)
		}

		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		entry.AccountNumber = accountNumber
		docs = append(docs, entry)
	}

	if len(docs) == 0 {
		return 0, nil
	}

	c := m.client.Database(m.database).Collection(schema.SymptomLogCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertMany(ctx, docs); err != nil {
		return 0, err
	}

	return len(docs), nil
}
