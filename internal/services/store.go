package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the adapter surface the services depend on. It is
// satisfied by *db.Store; tests substitute a seeded in-memory fake.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, results interface{}) error
}
