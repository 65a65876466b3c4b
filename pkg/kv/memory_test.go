package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", record{Name: "cart", Count: 3}))

	var got record
	require.True(t, m.Get(ctx, "k", &got))
	assert.Equal(t, record{Name: "cart", Count: 3}, got)
}

func TestMemoryAbsentKey(t *testing.T) {
	m := NewMemory()

	var got record
	assert.False(t, m.Get(context.Background(), "missing", &got))
}

func TestMemoryMalformedRecordReadsAsAbsent(t *testing.T) {
	m := NewMemory()
	m.SetRaw("k", "{not json")

	var got record
	assert.False(t, m.Get(context.Background(), "k", &got))
}

func TestMemoryWrongShapeReadsAsAbsent(t *testing.T) {
	m := NewMemory()
	m.SetRaw("k", `"just a string"`)

	var got record
	assert.False(t, m.Get(context.Background(), "k", &got))
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", record{Name: "x"}))
	require.NoError(t, m.Delete(ctx, "k"))

	var got record
	assert.False(t, m.Get(ctx, "k", &got))

	// Deleting an absent key is fine.
	assert.NoError(t, m.Delete(ctx, "k"))
}

func TestMemoryScopesAreIndependent(t *testing.T) {
	scopes := MemoryScopes()
	ctx := context.Background()

	require.NoError(t, scopes.Durable.Set(ctx, "k", record{Name: "durable"}))

	var got record
	assert.False(t, scopes.Session.Get(ctx, "k", &got))
	assert.True(t, scopes.Durable.Get(ctx, "k", &got))
}
