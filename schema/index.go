package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexSymptomCollection())
	panicIfError(m.IndexSymptomLogCollection())
}

func (m *MongoDBIndexer) IndexSymptomCollection() error {
	return m.createIndex(SymptomCollection, mongo.IndexModel{
		Keys: bson.M{
			"source": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexSymptomLogCollection() error {
	// history paging and date-range queries both scan one account's
	// entries newest first
	if err := m.createIndex(SymptomLogCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "ts", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(SymptomLogCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "symptoms.type", Value: 1},
		},
	})
}
