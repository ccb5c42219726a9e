package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gutsafe/gutsafe-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("gutsafe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := migrateMongo(); err != nil {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	if err := setupCollectionSymptom(ctx, client); err != nil {
		fmt.Println("failed to set up collection `symptoms`: ", err)
		return err
	}

	return nil
}

// setupCollectionSymptom reloads the official gut symptom catalog. Customized
// symptoms created by users are left alone.
func setupCollectionSymptom(ctx context.Context, client *mongo.Client) error {
	fmt.Println("initialize symptom collection")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.SymptomCollection)

	if _, err := c.DeleteMany(ctx, bson.M{"source": schema.OfficialSymptom}); err != nil {
		return err
	}

	officialSymptoms := make([]interface{}, 0, len(schema.OfficialSymptoms))
	for _, s := range schema.OfficialSymptoms {
		officialSymptoms = append(officialSymptoms, s)
	}
	if _, err := c.InsertMany(ctx, officialSymptoms); err != nil {
		return err
	}

	return nil
}
