package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable is returned by write operations when no database
// connection is configured.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Store wraps a MongoDB database and exposes the small document adapter
// the services are built on. An unconnected Store is valid: writes fail
// with ErrStoreUnavailable and reads return empty results, so the API
// keeps serving in diagnostic mode when the database is missing.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	name   string
}

// Connect initializes the database connection and verifies it with a ping.
func Connect(uri, name string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(name),
		name:   name,
	}, nil
}

// Unconnected returns a Store without a database behind it.
func Unconnected(name string) *Store {
	return &Store{name: name}
}

// Connected reports whether a database connection is configured.
func (s *Store) Connected() bool {
	return s != nil && s.db != nil
}

// Name returns the database name the store was configured with.
func (s *Store) Name() string {
	return s.name
}

// CreateDocument inserts one document into the named collection and
// returns the generated ObjectID as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	if !s.Connected() {
		return "", ErrStoreUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetDocuments decodes every document matching filter into results, which
// must be a pointer to a slice. An empty filter matches the whole
// collection. When the store is unconnected, results is left empty and no
// error is returned.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, results interface{}) error {
	if !s.Connected() {
		return nil
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

// CollectionNames lists the collections in the database, for diagnostics.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Connected() {
		return []string{}, nil
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
