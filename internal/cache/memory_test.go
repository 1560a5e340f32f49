package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Names []string `json:"names"`
}

func TestMemory_SetGetExpire(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewMemory().WithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Names: []string{"Wheat"}}, time.Minute))

	var got payload
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Wheat"}, got.Names)

	now = now.Add(time.Minute)
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found, "entry must expire once ttl has elapsed")
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	original := payload{Names: []string{"Rice"}}
	require.NoError(t, c.Set(ctx, "k", original, time.Hour))
	original.Names[0] = "mutated"

	var got payload
	_, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.Names[0])
}

func TestMemory_Delete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "a", 1, time.Hour))
	require.NoError(t, c.Set(ctx, "b", 2, time.Hour))

	require.NoError(t, c.Delete(ctx, "a"))

	var v int
	found, _ := c.Get(ctx, "a", &v)
	assert.False(t, found)
	found, _ = c.Get(ctx, "b", &v)
	assert.True(t, found)
	assert.Equal(t, 2, v)
	assert.Equal(t, "memory", c.Driver())
}
