package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memDocuments is an in-memory Documents keyed by <collection>:<id>.
type memDocuments struct {
	docs     map[string]bson.Raw
	getCalls int
	err      error
}

func newMemDocuments() *memDocuments {
	return &memDocuments{docs: map[string]bson.Raw{}}
}

func (m *memDocuments) put(t *testing.T, collection, id string, doc any) {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	m.docs[DocumentKey(collection, id)] = raw
}

func (m *memDocuments) Get(_ context.Context, collection, id string) (bson.Raw, error) {
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[DocumentKey(collection, id)]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (m *memDocuments) Query(_ context.Context, collection, field, value string) ([]bson.Raw, error) {
	return nil, ErrNotFound
}
