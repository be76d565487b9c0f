package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type counter struct {
	Name  string `json:"name" firestore:"name"`
	Value int    `json:"value" firestore:"value"`
	Kind  string `json:"kind,omitempty" firestore:"kind,omitempty"`
}

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	var c counter
	err := m.Get(context.Background(), "counters", "nope", &c)

	assert.True(t, IsNotFound(err))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestMemorySetGet(t *testing.T) {
	ctx := context.Background()
	m := &Memory{}

	require.Nil(t, m.Set(ctx, "counters", "a", counter{Name: "a", Value: 3}))

	var c counter
	require.Nil(t, m.Get(ctx, "counters", "a", &c))
	assert.Equal(t, counter{Name: "a", Value: 3}, c)
}

func TestMemoryTransactionIsAtomic(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.Nil(t, m.Set(ctx, "counters", "a", counter{Name: "a", Value: 1}))

	err := m.RunTransaction(ctx, func(ctx context.Context, tx Tx) error {
		var c counter
		if err := tx.Get("counters", "a", &c); err != nil {
			return err
		}
		c.Value = 100
		if err := tx.Set("counters", "a", c); err != nil {
			return err
		}
		if err := tx.Set("counters", "b", counter{Name: "b"}); err != nil {
			return err
		}
		return status.Error(codes.FailedPrecondition, "give up")
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	var c counter
	require.Nil(t, m.Get(ctx, "counters", "a", &c))
	assert.Equal(t, 1, c.Value)
	assert.True(t, IsNotFound(m.Get(ctx, "counters", "b", &c)))
}

func TestMemoryTransactionRejectsReadAfterWrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.RunTransaction(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Set("counters", "a", counter{Name: "a"}); err != nil {
			return err
		}
		var c counter
		return tx.Get("counters", "a", &c)
	})

	assert.NotNil(t, err)
	assert.False(t, IsNotFound(err))
}

func TestMemoryConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.Nil(t, m.Set(ctx, "counters", "a", counter{Name: "a"}))

	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.RunTransaction(ctx, func(ctx context.Context, tx Tx) error {
				var c counter
				if err := tx.Get("counters", "a", &c); err != nil {
					return err
				}
				c.Value += 5
				return tx.Set("counters", "a", c)
			})
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.Nil(t, err)
	}

	var c counter
	require.Nil(t, m.Get(ctx, "counters", "a", &c))
	assert.Equal(t, 5*workers, c.Value)
}

func TestMemoryQuery(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, c := range []counter{
		{Name: "a", Value: 10, Kind: "x"},
		{Name: "b", Value: 30, Kind: "y"},
		{Name: "c", Value: 20, Kind: "x"},
		{Name: "d", Value: 5, Kind: "x"},
	} {
		require.Nil(t, m.Set(ctx, "counters", c.Name, c))
	}

	tables := []struct {
		query Query
		ids   []string
	}{
		{Query{Collection: "counters"}, []string{"a", "b", "c", "d"}},
		{Query{Collection: "counters"}.Where("kind", "==", "x"), []string{"a", "c", "d"}},
		{Query{Collection: "counters"}.Where("value", ">=", 10).Where("value", "<", 30), []string{"a", "c"}},
		{Query{Collection: "counters", OrderBy: "value", Descending: true}, []string{"b", "c", "a", "d"}},
		{Query{Collection: "counters", OrderBy: "value", Limit: 2}, []string{"d", "a"}},
		{Query{Collection: "other"}, []string{}},
	}

	for _, table := range tables {
		snaps, err := m.Query(ctx, table.query)
		require.Nil(t, err)

		ids := []string{}
		for _, s := range snaps {
			ids = append(ids, s.ID)

			var c counter
			require.Nil(t, s.DataTo(&c))
			assert.Equal(t, s.ID, c.Name)
		}
		assert.Equal(t, table.ids, ids, "query %+v", table.query)
	}
}
