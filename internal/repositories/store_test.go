package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-flow/internal/entities"
)

func TestMemoryBlobStoreSeedsAbsentCollection(t *testing.T) {
	store := NewMemoryBlobStore(0, 0)
	ctx := context.Background()

	data, err := store.Get(ctx, CollectionParts)
	require.NoError(t, err)

	var parts []entities.Part
	require.NoError(t, json.Unmarshal(data, &parts))
	assert.Len(t, parts, 5, "отсутствующая коллекция засевается пятью запчастями")

	data, err = store.Get(ctx, CollectionClients)
	require.NoError(t, err)
	var clients []entities.Client
	require.NoError(t, json.Unmarshal(data, &clients))
	assert.Len(t, clients, 2)

	data, err = store.Get(ctx, CollectionOrders)
	require.NoError(t, err)
	var orders []entities.Order
	require.NoError(t, json.Unmarshal(data, &orders))
	assert.Len(t, orders, 2)
}

func TestMemoryBlobStoreSetOverwritesWholeCollection(t *testing.T) {
	store := NewMemoryBlobStore(0, 0)
	ctx := context.Background()

	payload, err := json.Marshal([]entities.Part{{ID: "x", Name: "Кулер", Price: 700, Quantity: 3}})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, CollectionParts, payload))

	data, err := store.Get(ctx, CollectionParts)
	require.NoError(t, err)

	var parts []entities.Part
	require.NoError(t, json.Unmarshal(data, &parts))
	require.Len(t, parts, 1, "Set заменяет коллекцию целиком, сида больше нет")
	assert.Equal(t, "Кулер", parts[0].Name)
}

func TestMemoryBlobStoreUnknownCollection(t *testing.T) {
	store := NewMemoryBlobStore(0, 0)

	_, err := store.Get(context.Background(), "rf_unknown")
	assert.Error(t, err)
}

func TestMemoryBlobStoreLatencyRespectsContext(t *testing.T) {
	store := NewMemoryBlobStore(200*time.Millisecond, 400*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := store.Get(ctx, CollectionParts)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
