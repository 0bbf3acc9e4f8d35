package repository

import (
	"context"
	"testing"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/testutil"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCounter_SeedAndRecord(t *testing.T) {
	c, mr := testutil.NewCache(t)
	vc := NewViewCounter(c)
	ctx := context.Background()

	require.NoError(t, vc.Seed(ctx, 1, 0))
	v, err := mr.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	for i := int64(1); i <= 3; i++ {
		n, err := vc.Record(ctx, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	v, _ = mr.Get("1")
	assert.Equal(t, "3", v)
}

func TestViewCounter_MissingKeyReadsZero(t *testing.T) {
	c, _ := testutil.NewCache(t)
	vc := NewViewCounter(c)
	ctx := context.Background()

	n, err := vc.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = vc.Record(ctx, 42, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestViewCounter_RecordReseedsFromPersisted(t *testing.T) {
	c, _ := testutil.NewCache(t)
	vc := NewViewCounter(c)

	n, err := vc.Record(context.Background(), 7, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)
}

func TestViewCounter_NonIntegerRestartsAtOne(t *testing.T) {
	c, mr := testutil.NewCache(t)
	vc := NewViewCounter(c)
	ctx := context.Background()

	require.NoError(t, mr.Set("5", "abc"))

	n, err := vc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = vc.Record(ctx, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	v, _ := mr.Get("5")
	assert.Equal(t, "1", v)
}

func TestViewCounter_GetMany(t *testing.T) {
	c, mr := testutil.NewCache(t)
	vc := NewViewCounter(c)

	require.NoError(t, mr.Set("1", "4"))
	require.NoError(t, mr.Set("2", "junk"))

	got, err := vc.GetMany(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 4}, got)
}

func TestViewCounter_Delete(t *testing.T) {
	c, mr := testutil.NewCache(t)
	vc := NewViewCounter(c)
	ctx := context.Background()

	require.NoError(t, vc.Seed(ctx, 9, 0))
	require.NoError(t, vc.Delete(ctx, 9))
	assert.False(t, mr.Exists("9"))
}

func TestViewCounter_Unavailable(t *testing.T) {
	vc := NewViewCounter(cache.NewService(nil))

	_, err := vc.Record(context.Background(), 1, 0)
	assert.ErrorIs(t, err, cache.ErrUnavailable)
}
