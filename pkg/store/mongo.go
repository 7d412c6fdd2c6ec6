package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/graphlift/graphlift/pkg/errors"
)

const graphCollection = "graphs"

// MongoStore persists graphs in a MongoDB collection. Documents are
// StoredGraph values keyed by their id, with the graph payload
// embedded.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// short ping before returning.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(graphCollection),
	}, nil
}

// Save persists sg. Saving an existing id is an error.
func (s *MongoStore) Save(ctx context.Context, sg *StoredGraph) error {
	if _, err := s.coll.InsertOne(ctx, sg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(errors.ErrCodeStore, err, "graph %s already stored", sg.ID)
		}
		return errors.Wrap(errors.ErrCodeStore, err, "save graph %s", sg.ID)
	}
	return nil
}

// Get returns the stored graph with its full payload.
func (s *MongoStore) Get(ctx context.Context, id string) (*StoredGraph, error) {
	var sg StoredGraph
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sg)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get graph %s", id)
	}
	return &sg, nil
}

// List returns storage metadata for all graphs, newest first. The
// graph payload is excluded by projection so listings stay cheap.
func (s *MongoStore) List(ctx context.Context) ([]StoredGraph, error) {
	opts := options.Find().
		SetProjection(bson.M{"graph": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list graphs")
	}

	var out []StoredGraph
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode graph listing")
	}
	return out, nil
}

// Delete removes a stored graph.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete graph %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
