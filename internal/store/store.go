package store

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Storer is a storage abstraction layer interface
type Storer interface {
	// RunTransaction runs f in a transaction. f may be invoked more than once on write contention.
	RunTransaction(ctx context.Context, f func(context.Context, Tx) error) error
	// Get reads a single document outside of any transaction.
	Get(ctx context.Context, collection string, id string, dst interface{}) error
	// Set overwrites a single document outside of any transaction.
	Set(ctx context.Context, collection string, id string, data interface{}) error
	// Query returns documents matching q.
	Query(ctx context.Context, q Query) ([]Snapshot, error)
}

// Tx is a single transaction attempt. All reads must happen before the first write.
type Tx interface {
	Get(collection string, id string, dst interface{}) error
	Set(collection string, id string, data interface{}) error
}

//Filter Single `field op value` condition. Supported ops: ==, <, <=, >, >=.
type Filter struct {
	Field string
	Op    string
	Value interface{}
}

//Query Collection query.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

//Where Adds filter to the query.
func (q Query) Where(field string, op string, value interface{}) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: op, Value: value})
	return q
}

//Snapshot Document returned by a query.
type Snapshot struct {
	ID     string
	dataTo func(dst interface{}) error
}

//DataTo Decodes the document into dst.
func (s Snapshot) DataTo(dst interface{}) error {
	return s.dataTo(dst)
}

//IsNotFound Whether the error means the document does not exist.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func notFound(collection string, id string) error {
	return status.Errorf(codes.NotFound, "document %v/%v not found", collection, id)
}
