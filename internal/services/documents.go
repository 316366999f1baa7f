package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnshRaj112/profile-api/internal/database"
)

const (
	CollectionServiceAuth = "service_auth"
	CollectionUserData    = "user_data"
	CollectionUserImages  = "user_images"
)

// Fields that may appear on the left side of a field-equality query.
var queryableFields = map[string]bool{
	"nickname": true,
	"user_id":  true,
}

// Documents reads documents by key and by field equality.
type Documents interface {
	Get(ctx context.Context, collection, id string) (bson.Raw, error)
	Query(ctx context.Context, collection, field, value string) ([]bson.Raw, error)
}

// DocumentStore serves Documents from MongoDB collection handles opened once
// at startup.
type DocumentStore struct {
	collections map[string]*mongo.Collection
}

// NewDocumentStore opens the service_auth, user_data and user_images
// collections within the connection's scope.
func NewDocumentStore(conn *database.Connection) *DocumentStore {
	collections := make(map[string]*mongo.Collection, 3)
	for _, name := range []string{CollectionServiceAuth, CollectionUserData, CollectionUserImages} {
		collections[name] = conn.Collection(name)
	}
	return &DocumentStore{collections: collections}
}

// DocumentKey builds the namespaced document id, e.g. user_data:42.
func DocumentKey(collection, id string) string {
	return collection + ":" + id
}

func (s *DocumentStore) collection(name string) (*mongo.Collection, error) {
	coll, ok := s.collections[name]
	if !ok {
		return nil, internal("collection", fmt.Errorf("unknown collection %q", name))
	}
	return coll, nil
}

// Get fetches the document stored under <collection>:<id>.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (bson.Raw, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	var doc bson.Raw
	err = coll.FindOne(ctx, bson.D{{Key: "_id", Value: DocumentKey(collection, id)}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, internal("get "+DocumentKey(collection, id), err)
	}
	return doc, nil
}

// Query returns every document in collection whose field equals value, in
// the order the server returns them. The value is always sent as a BSON
// string, never spliced into query text.
func (s *DocumentStore) Query(ctx context.Context, collection, field, value string) ([]bson.Raw, error) {
	if !queryableFields[field] {
		return nil, internal("query", fmt.Errorf("field %q is not queryable", field))
	}
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	op := fmt.Sprintf("query %s.%s", collection, field)
	cur, err := coll.Find(ctx, bson.D{{Key: field, Value: value}})
	if err != nil {
		return nil, internal(op, err)
	}
	defer cur.Close(ctx)

	var docs []bson.Raw
	for cur.Next(ctx) {
		// Current is only valid until the next call to Next.
		docs = append(docs, append(bson.Raw(nil), cur.Current...))
	}
	if err := cur.Err(); err != nil {
		return nil, internal(op, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs, nil
}
