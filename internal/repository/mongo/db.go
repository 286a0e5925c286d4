package mongo

import (
	"context"
	"time"

	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping against the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. Failures are logged
// and do not stop the caller; the queries work without them, only slower.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *logger.Logger) {
	ensure := func(collection string, indexes []mongo.IndexModel) {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			log.Warn("failed to create indexes", "collection", collection, "error", err)
			return
		}
		log.Debug("indexes ensured", "collection", collection, "count", len(indexes))
	}
	ensure(studentCollectionName, studentIndexes())
	ensure(exerciseCollectionName, exerciseIndexes())
	ensure(workoutPlanCollectionName, workoutPlanIndexes())
}

// findOptions translates repository.ListOptions into driver options.
func findOptions(opts repository.ListOptions) (*options.FindOptions, error) {
	field, desc, err := repository.ParseSort(opts.SortBy)
	if err != nil {
		return nil, err
	}
	findOpts := options.Find()
	if field != "" {
		order := 1
		if desc {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: field, Value: order}})
	}
	return findOpts, nil
}

// findAll runs a Find and decodes the whole cursor. An empty result is an
// empty slice, not nil.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
