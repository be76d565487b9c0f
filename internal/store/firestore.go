package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/butterflysteps/backend/internal/firebase"
	"google.golang.org/api/iterator"
)

// Client to interact with Firestore. Zero value uses the shared Firebase app client.
type Client struct {
	Firestore *firestore.Client
}

func (c Client) fs() *firestore.Client {
	if c.Firestore != nil {
		return c.Firestore
	}
	return firebase.Firestore()
}

func (c Client) doc(collection string, id string) *firestore.DocumentRef {
	return c.fs().Collection(collection).Doc(id)
}

// RunTransaction runs f in a Firestore transaction.
func (c Client) RunTransaction(ctx context.Context, f func(context.Context, Tx) error) error {
	return c.fs().RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return f(ctx, &firestoreTx{client: c, tx: tx})
	})
}

// Get reads the document into dst.
func (c Client) Get(ctx context.Context, collection string, id string, dst interface{}) error {
	snap, err := c.doc(collection, id).Get(ctx)
	if err != nil {
		return err
	}
	return snap.DataTo(dst)
}

// Set overwrites the document.
func (c Client) Set(ctx context.Context, collection string, id string, data interface{}) error {
	_, err := c.doc(collection, id).Set(ctx, data)
	return err
}

// Query runs the query and collects all matching documents.
func (c Client) Query(ctx context.Context, q Query) ([]Snapshot, error) {
	query := c.fs().Collection(q.Collection).Query

	for _, f := range q.Filters {
		query = query.Where(f.Field, f.Op, f.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Descending {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var result []Snapshot
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		result = append(result, Snapshot{ID: snap.Ref.ID, dataTo: snap.DataTo})
	}

	return result, nil
}

type firestoreTx struct {
	client Client
	tx     *firestore.Transaction
}

func (t *firestoreTx) Get(collection string, id string, dst interface{}) error {
	snap, err := t.tx.Get(t.client.doc(collection, id))
	if err != nil {
		return err
	}
	return snap.DataTo(dst)
}

func (t *firestoreTx) Set(collection string, id string, data interface{}) error {
	return t.tx.Set(t.client.doc(collection, id), data)
}
