package results

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/benchkit/ssrbench/pkg/errors"
)

// runsCollection is the collection holding run documents.
const runsCollection = "runs"

// MongoConfig holds connection settings for the mongo store.
type MongoConfig struct {
	URI      string
	Database string
}

// MongoStore persists runs in MongoDB so benchmark history survives across
// processes and machines.
type MongoStore struct {
	client *mongo.Client
	runs   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, err, "connect to %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, err, "ping %s", cfg.URI)
	}
	return &MongoStore{
		client: client,
		runs:   client.Database(cfg.Database).Collection(runsCollection),
	}, nil
}

// Save stores a run, replacing any existing document with the same ID.
func (s *MongoStore) Save(ctx context.Context, run *Run) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.runs.ReplaceOne(ctx, bson.M{"_id": run.ID}, run, opts); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStoreWrite, err, "save run %s", run.ID)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.runs.FindOne(ctx, bson.M{"_id": id}).Decode(&run)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, err, "get run %s", id)
	}
	return &run, nil
}

// List returns runs ordered by start time, newest first.
func (s *MongoStore) List(ctx context.Context, limit int) ([]*Run, error) {
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.runs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, err, "list runs")
	}
	defer cursor.Close(ctx)

	var runs []*Run
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, err, "decode runs")
	}
	return runs, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
