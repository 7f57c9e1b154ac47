package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := New()
	ctx := context.Background()

	value := []byte("record")
	require.NoError(t, store.Put(ctx, "keystore/a", value))

	// 修改调用方的切片不影响已保存的值
	value[0] = 'X'

	got, found, err := store.ReadLatestSnapshot(ctx, "keystore/a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("record"), got)

	// 修改返回的副本也不影响存储
	got[0] = 'Y'
	again, _, _ := store.ReadLatestSnapshot(ctx, "keystore/a")
	assert.Equal(t, []byte("record"), again)

	_, found, err = store.ReadLatestSnapshot(ctx, "keystore/b")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 1, store.Len())
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, New().Put(ctx, "k", nil), context.Canceled)
	_, _, err := New().ReadLatestSnapshot(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
