package badger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	badgerconfig "github.com/huang190105/wisdom-operations-master/internal/config/storage/badger"
	interfaces "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
)

// 初始化测试环境
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	options := &badgerconfig.BadgerOptions{
		Path:         filepath.Join(t.TempDir(), "keystore"),
		SyncWrites:   false,
		MemTableSize: 1 << 20,
	}
	return New(badgerconfig.NewFromOptions(options), nil)
}

func TestPutAndReadLatestSnapshot(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "keystore/a", []byte("record-a")))
	require.NoError(t, store.Put(ctx, "keystore/b", []byte("record-b")))

	value, found, err := store.ReadLatestSnapshot(ctx, "keystore/b")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("record-b"), value)

	t.Run("不存在的键", func(t *testing.T) {
		value, found, err := store.ReadLatestSnapshot(ctx, "keystore/c")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("前缀不算匹配", func(t *testing.T) {
		_, found, err := store.ReadLatestSnapshot(ctx, "keystore/")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("覆盖写入", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "keystore/a", []byte("record-a2")))
		value, found, err := store.ReadLatestSnapshot(ctx, "keystore/a")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("record-a2"), value)
	})
}

func TestDataPersistsAcrossStores(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keystore")
	options := &badgerconfig.BadgerOptions{Path: dir, MemTableSize: 1 << 20}
	ctx := context.Background()

	require.NoError(t, New(badgerconfig.NewFromOptions(options), nil).Put(ctx, "k", []byte("v")))

	// 新实例重新打开同一目录，证明上一次调用已释放目录锁
	value, found, err := New(badgerconfig.NewFromOptions(options), nil).ReadLatestSnapshot(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)
}

func TestConcurrentPut(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Put(ctx, fmt.Sprintf("key-%d", i), []byte{byte(i)}))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		value, found, err := store.ReadLatestSnapshot(ctx, fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte{byte(i)}, value)
	}
}

func TestPutErrors(t *testing.T) {
	t.Run("空键", func(t *testing.T) {
		err := setupTestStore(t).Put(context.Background(), "", []byte("v"))
		assert.ErrorIs(t, err, interfaces.ErrStorage)
	})

	t.Run("目录不可创建", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
		options := &badgerconfig.BadgerOptions{Path: filepath.Join(file, "keystore"), MemTableSize: 1 << 20}

		err := New(badgerconfig.NewFromOptions(options), nil).Put(context.Background(), "k", []byte("v"))
		assert.ErrorIs(t, err, interfaces.ErrStorage)
	})

	t.Run("已取消的上下文", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := setupTestStore(t).Put(ctx, "k", []byte("v"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOpenWithSmallOrUnsetMemTable(t *testing.T) {
	testCases := []struct {
		name         string
		memTableSize int64
		want         int64
	}{
		{name: "未设置", memTableSize: 0, want: badgerconfig.DefaultMemTableSize},
		{name: "负数", memTableSize: -1, want: badgerconfig.DefaultMemTableSize},
		{name: "低于下限", memTableSize: 64 << 10, want: badgerconfig.DefaultMemTableSize},
		{name: "下限", memTableSize: badgerconfig.MinMemTableSize, want: badgerconfig.MinMemTableSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
				Path:         filepath.Join(t.TempDir(), "keystore"),
				MemTableSize: tc.memTableSize,
			})
			assert.Equal(t, tc.want, config.GetMemTableSize())

			store := New(config, nil)
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "k", []byte("v")))
			value, found, err := store.ReadLatestSnapshot(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte("v"), value)
		})
	}
}

func TestLargeValueGoesThroughValueLog(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// 大于 valueThreshold 的值写入 value log，重新打开后仍可读出
	large := make([]byte, 4*valueThreshold)
	for i := range large {
		large[i] = byte(i)
	}
	require.NoError(t, store.Put(ctx, "keystore/large", large))

	value, found, err := store.ReadLatestSnapshot(ctx, "keystore/large")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, large, value)
}
