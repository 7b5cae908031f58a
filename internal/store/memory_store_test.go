package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PushAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	key, err := s.Push(ctx, "farmers", map[string]any{
		"full_name": "Nguyen Van A",
		"active":    true,
		"age":       42,
	})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	record, err := s.Get(ctx, "farmers/"+key)
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", record["full_name"])
	assert.Equal(t, true, record["active"])
	// Numbers come back as float64, matching what a JSON database read yields.
	assert.Equal(t, float64(42), record["age"])
}

func TestMemoryStore_GetMissingReturnsNil(t *testing.T) {
	s := NewMemoryStore()

	record, err := s.Get(context.Background(), "farmers/unknown")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryStore_InvalidPathRejected(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "farmers")
	assert.Error(t, err)

	err = s.Update(context.Background(), "a/b/c", map[string]any{"x": 1})
	assert.Error(t, err)
}

func TestMemoryStore_UpdateMergesFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	key, err := s.Push(ctx, "insurance_claims", map[string]any{
		"status":      "pending",
		"description": "flooded field",
	})
	require.NoError(t, err)

	err = s.Update(ctx, "insurance_claims/"+key, map[string]any{
		"status": "approved",
		"notes":  "verified on site",
	})
	require.NoError(t, err)

	record, err := s.Get(ctx, "insurance_claims/"+key)
	require.NoError(t, err)
	assert.Equal(t, "approved", record["status"])
	assert.Equal(t, "verified on site", record["notes"])
	assert.Equal(t, "flooded field", record["description"])
}

func TestMemoryStore_UpdateNilRemovesField(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	key, err := s.Push(ctx, "insurance_claims", map[string]any{
		"status": "pending",
		"notes":  "initial",
	})
	require.NoError(t, err)

	err = s.Update(ctx, "insurance_claims/"+key, map[string]any{"notes": nil})
	require.NoError(t, err)

	record, err := s.Get(ctx, "insurance_claims/"+key)
	require.NoError(t, err)
	assert.NotContains(t, record, "notes")
	assert.Equal(t, "pending", record["status"])
}

func TestMemoryStore_UpdateAbsentPathCreatesRecord(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.Update(ctx, "farmers/manual-key", map[string]any{"full_name": "B"})
	require.NoError(t, err)

	record, err := s.Get(ctx, "farmers/manual-key")
	require.NoError(t, err)
	assert.Equal(t, "B", record["full_name"])
}

func TestMemoryStore_Remove(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	key, err := s.Push(ctx, "lands", map[string]any{"name": "North paddy"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "lands/"+key))

	record, err := s.Get(ctx, "lands/"+key)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryStore_GetCollection(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.Push(ctx, "notifications", map[string]any{"title": "A"})
	require.NoError(t, err)
	second, err := s.Push(ctx, "notifications", map[string]any{"title": "B"})
	require.NoError(t, err)

	records, err := s.GetCollection(ctx, "notifications")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[first]["title"])
	assert.Equal(t, "B", records[second]["title"])

	empty, err := s.GetCollection(ctx, "nothing_here")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_QueryChildEqual(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	match, err := s.Push(ctx, "lands", map[string]any{"farmer_id": "f1", "name": "North"})
	require.NoError(t, err)
	_, err = s.Push(ctx, "lands", map[string]any{"farmer_id": "f2", "name": "South"})
	require.NoError(t, err)

	records, err := s.QueryChildEqual(ctx, "lands", "farmer_id", "f1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "North", records[match]["name"])
}

func TestMemoryStore_QueryChildEqualNormalizesNumbers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	key, err := s.Push(ctx, "lands", map[string]any{"area_hectares": 2})
	require.NoError(t, err)

	// An int query value must match the float64 the store holds.
	records, err := s.QueryChildEqual(ctx, "lands", "area_hectares", 2)
	require.NoError(t, err)
	require.Len(t, records, 1)
	_, ok := records[key]
	assert.True(t, ok)
}

func TestMemoryStore_MutationsDoNotLeakIntoStoredRecords(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := map[string]any{"status": "pending"}
	key, err := s.Push(ctx, "insurance_claims", original)
	require.NoError(t, err)

	original["status"] = "mutated"

	record, err := s.Get(ctx, "insurance_claims/"+key)
	require.NoError(t, err)
	assert.Equal(t, "pending", record["status"])

	record["status"] = "mutated again"
	reread, err := s.Get(ctx, "insurance_claims/"+key)
	require.NoError(t, err)
	assert.Equal(t, "pending", reread["status"])
}
