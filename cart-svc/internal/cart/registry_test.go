package cart

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SweepDropsIdleStores(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	r := NewRegistry(kv, zerolog.Nop())
	defer r.Close(ctx)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.Get(ctx, "idle").AddItem(Product{ID: "1", Price: 1000})
	now = now.Add(40 * time.Minute)
	r.Get(ctx, "busy")

	assert.Equal(t, 1, r.Sweep(30*time.Minute))
	assert.Equal(t, 1, r.Len())

	data, err := kv.Get(ctx, Key("idle"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":{"uz":"","ru":"","en":""},"description":{"uz":"","ru":"","en":""},"ingredients":{"uz":"","ru":"","en":""},"price":1000,"quantity":1}]`, string(data))

	assert.Equal(t, 1, r.Get(ctx, "idle").TotalItems())
}
