package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gutsafe/gutsafe-api/schema"
)

var (
	tsMay1Morning = time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	tsMay2Evening = time.Date(2023, 5, 2, 19, 30, 0, 0, time.UTC)
	tsMay8Morning = time.Date(2023, 5, 8, 8, 15, 0, 0, time.UTC)

	logEntry1 = schema.SymptomLogEntry{
		ID:            "log-1",
		AccountNumber: "userA",
		Symptoms: []schema.SymptomObservation{
			{Type: schema.Bloating, Severity: 6},
		},
		FoodItems: []string{"Dairy", "bread"},
		Timestamp: tsMay1Morning,
	}
	logEntry2 = schema.SymptomLogEntry{
		ID:            "log-2",
		AccountNumber: "userA",
		Symptoms: []schema.SymptomObservation{
			{Type: schema.Cramping, Severity: 4},
			{Type: schema.Gas, Severity: 3},
		},
		FoodItems: []string{"beans"},
		Timestamp: tsMay2Evening,
	}
	logEntry3 = schema.SymptomLogEntry{
		ID:            "log-3",
		AccountNumber: "userA",
		Symptoms: []schema.SymptomObservation{
			{Type: schema.Bloating, Severity: 8},
		},
		FoodItems: []string{"dairy milk"},
		Timestamp: tsMay8Morning,
	}
	logEntry4 = schema.SymptomLogEntry{
		ID:            "log-4",
		AccountNumber: "userB",
		Symptoms: []schema.SymptomObservation{
			{Type: schema.Nausea, Severity: 5},
		},
		Timestamp: tsMay2Evening,
	}
)

type SymptomLogTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewSymptomLogTestSuite(connURI, dbName string) *SymptomLogTestSuite {
	return &SymptomLogTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *SymptomLogTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *SymptomLogTestSuite) SetupTest() {
	ctx := context.Background()
	if err := s.testDatabase.Collection(schema.SymptomLogCollection).Drop(ctx); err != nil {
		s.T().Fatal(err)
	}
	if _, err := s.testDatabase.Collection(schema.SymptomLogCollection).InsertMany(ctx, []interface{}{
		logEntry1,
		logEntry2,
		logEntry3,
		logEntry4,
	}); err != nil {
		s.T().Fatal(err)
	}
}

func (s *SymptomLogTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *SymptomLogTestSuite) TestAppendSymptomLogAssignsIDAndTimestamp() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	entry := schema.SymptomLogEntry{
		AccountNumber: "userA",
		Symptoms: []schema.SymptomObservation{
			{Type: schema.Reflux, Severity: 7},
		},
	}

	id, err := store.AppendSymptomLog(&entry)
	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), id)
	assert.Equal(s.T(), id, entry.ID)
	assert.False(s.T(), entry.Timestamp.IsZero())
}

func (s *SymptomLogTestSuite) TestGetSymptomLogsMostRecentFirst() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	entries, err := store.GetSymptomLogs("userA", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 100)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 3)
	assert.Equal(s.T(), "log-3", entries[0].ID)
	assert.Equal(s.T(), "log-2", entries[1].ID)
	assert.Equal(s.T(), "log-1", entries[2].ID)
}

func (s *SymptomLogTestSuite) TestGetSymptomLogsByDateRangeInclusive() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	entries, err := store.GetSymptomLogsByDateRange("userA", tsMay1Morning, tsMay2Evening)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 2, "both bounds are inclusive")

	entries, err = store.GetSymptomLogsByDateRange("userA",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), entries)
	assert.Len(s.T(), entries, 0, "an empty window is a valid result")
}

func (s *SymptomLogTestSuite) TestSearchSymptomLogsByFood() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	entries, err := store.SearchSymptomLogsByFood("userA", "dairy")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 2, "substring match is case-insensitive")
}

func (s *SymptomLogTestSuite) TestGetSymptomLogsByType() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	entries, err := store.GetSymptomLogsByType("userA", schema.Bloating)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 2)

	entries, err = store.GetSymptomLogsByType("userA", schema.Nausea)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 0, "other accounts' entries are not visible")
}

func (s *SymptomLogTestSuite) TestUpdateSymptomLog() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	notes := "after lunch"
	updated, err := store.UpdateSymptomLog("userA", "log-1", schema.SymptomLogUpdate{Notes: &notes})
	assert.NoError(s.T(), err)
	assert.True(s.T(), updated)

	entries, err := store.GetSymptomLogsByType("userA", schema.Bloating)
	assert.NoError(s.T(), err)
	for _, entry := range entries {
		if entry.ID == "log-1" {
			assert.Equal(s.T(), "after lunch", entry.Notes)
		}
	}
}

func (s *SymptomLogTestSuite) TestUpdateSymptomLogNotFound() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	before, err := store.GetSymptomLogs("userA", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 100)
	assert.NoError(s.T(), err)

	notes := "nope"
	updated, err := store.UpdateSymptomLog("userA", "no-such-id", schema.SymptomLogUpdate{Notes: &notes})
	assert.NoError(s.T(), err, "an unknown id is not an error")
	assert.False(s.T(), updated)

	after, err := store.GetSymptomLogs("userA", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 100)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), len(before), len(after), "store length unchanged")
}

func (s *SymptomLogTestSuite) TestRemoveSymptomLog() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	removed, err := store.RemoveSymptomLog("userA", "log-2")
	assert.NoError(s.T(), err)
	assert.True(s.T(), removed)

	removed, err = store.RemoveSymptomLog("userA", "log-2")
	assert.NoError(s.T(), err, "an unknown id is not an error")
	assert.False(s.T(), removed)
}

func (s *SymptomLogTestSuite) TestExportSymptomLogs() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	doc, err := store.ExportSymptomLogs("userA")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), schema.ExportVersion, doc.Version)
	assert.NotNil(s.T(), doc.SymptomLogs)
	assert.Len(s.T(), *doc.SymptomLogs, 3)
}

func (s *SymptomLogTestSuite) TestImportSymptomLogs() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	logs := []schema.SymptomLogEntry{
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Headache, Severity: 3}},
			Timestamp: time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	imported, err := store.ImportSymptomLogs("userC", &schema.ExportDocument{
		Version:     schema.ExportVersion,
		SymptomLogs: &logs,
	})
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 1, imported)

	entries, err := store.GetSymptomLogsByType("userC", schema.Headache)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 1)
}

func (s *SymptomLogTestSuite) TestImportSymptomLogsMissingArray() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	before, err := store.GetSymptomLogs("userA", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 100)
	assert.NoError(s.T(), err)

	_, err = store.ImportSymptomLogs("userA", &schema.ExportDocument{Version: schema.ExportVersion})
	assert.ErrorIs(s.T(), err, ErrInvalidDataFormat)

	after, err := store.GetSymptomLogs("userA", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 100)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), len(before), len(after), "a malformed payload leaves the store untouched")
}

func (s *SymptomLogTestSuite) TestImportSymptomLogsMalformedEntry() {
	store := NewGutSafeStore(s.mongoClient, s.testDBName)

	logs := []schema.SymptomLogEntry{
		{
			Symptoms:  []schema.SymptomObservation{{Type: schema.Headache, Severity: 3}},
			Timestamp: time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			// no symptoms: the whole payload is rejected
			Timestamp: time.Date(2023, 4, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	_, err := store.ImportSymptomLogs("userD", &schema.ExportDocument{
		Version:     schema.ExportVersion,
		SymptomLogs: &logs,
	})
	assert.ErrorIs(s.T(), err, ErrInvalidDataFormat)

	entries, err := store.GetSymptomLogsByType("userD", schema.Headache)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 0, "nothing was written")
}

func TestSymptomLogTestSuite(t *testing.T) {
	connURI := os.Getenv("GUTSAFE_TEST_MONGO_CONN")
	if connURI == "" {
		t.Skip("GUTSAFE_TEST_MONGO_CONN not set; skipping mongo-backed store tests")
	}
	suite.Run(t, NewSymptomLogTestSuite(connURI, "test-db"))
}
