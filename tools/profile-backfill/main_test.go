package main

import (
	"context"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type fixedUsers []user

func (f *fixedUsers) Next() (*user, error) {
	if len(*f) == 0 {
		return nil, iterator.Done
	}
	u := (*f)[0]
	*f = (*f)[1:]
	return &u, nil
}

func TestBackfill(t *testing.T) {
	ctx := context.Background()
	env := environment.NewMock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))

	_, err := profile.CreateUserProfile(ctx, env.Store, env.Moment(), "u1", "one@example.com", "One")
	require.Nil(t, err)

	dry := fixedUsers{{UID: "u1"}, {UID: "u2", Email: "two@example.com"}}
	created, err := backfill(ctx, env, &dry, true)
	require.Nil(t, err)
	assert.Equal(t, 0, created)

	all := fixedUsers{{UID: "u1"}, {UID: "u2", Email: "two@example.com", DisplayName: "Two"}}
	created, err = backfill(ctx, env, &all, false)
	require.Nil(t, err)
	assert.Equal(t, 1, created)

	p, err := profile.GetUserProfile(ctx, env.Store, "u2")
	require.Nil(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "two@example.com", p.Email)
	assert.Equal(t, "Two", p.DisplayName)
}
