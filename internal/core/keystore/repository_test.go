package keystore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/storage/memory"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
)

// brokenStore 模拟存储层故障
type brokenStore struct{}

func (brokenStore) Put(context.Context, string, []byte) error {
	return errors.Join(storage.ErrStorage, errors.New("磁盘已满"))
}

func (brokenStore) ReadLatestSnapshot(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.Join(storage.ErrStorage, errors.New("读取失败"))
}

func TestRepositorySaveAndLoad(t *testing.T) {
	m, km := newTestManager(t)
	store := memory.New()
	repo := NewRepository(store, nil, nil)
	ctx := context.Background()

	ks, err := m.CreateKeystore("correcthorse1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ks))

	loaded, err := repo.Load(ctx, ks.Address)
	require.NoError(t, err)
	assert.Equal(t, ks, loaded)

	priv, err := m.RecoverPrivateKey(loaded, "correcthorse1")
	require.NoError(t, err)
	assert.Equal(t, km.last(), priv)

	t.Run("地址大小写与0x前缀", func(t *testing.T) {
		loaded, err := repo.Load(ctx, "0x"+strings.ToUpper(ks.Address))
		require.NoError(t, err)
		assert.Equal(t, ks.ID, loaded.ID)
	})

	t.Run("修改口令后覆盖", func(t *testing.T) {
		updated, err := m.ChangePassword(ks, "correcthorse1", "batterystaple9")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, updated))

		loaded, err := repo.Load(ctx, ks.Address)
		require.NoError(t, err)
		assert.Equal(t, updated.ID, loaded.ID)
		assert.Equal(t, 1, store.Len())
	})
}

func TestRepositoryNotFound(t *testing.T) {
	repo := NewRepository(memory.New(), nil, nil)
	_, err := repo.Load(context.Background(), "0123456789abcdef0123456789abcdef01234567")
	assert.ErrorIs(t, err, ErrKeystoreNotFound)
}

func TestRepositoryRejectsIncompleteRecord(t *testing.T) {
	m, _ := newTestManager(t)
	store := memory.New()
	repo := NewRepository(store, nil, nil)

	ks, err := m.CreateKeystore("correcthorse1")
	require.NoError(t, err)
	incomplete := *ks
	incomplete.MAC = ""

	err = repo.Save(context.Background(), &incomplete)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, 0, store.Len())
}

func TestRepositoryStorageFailure(t *testing.T) {
	m, _ := newTestManager(t)
	repo := NewRepository(brokenStore{}, nil, nil)

	ks, err := m.CreateKeystore("correcthorse1")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Save(context.Background(), ks), storage.ErrStorage)
	_, err = repo.Load(context.Background(), ks.Address)
	assert.ErrorIs(t, err, storage.ErrStorage)
}

func TestRepositoryCorruptedValue(t *testing.T) {
	store := memory.New()
	repo := NewRepository(store, nil, nil)
	addr := "0123456789abcdef0123456789abcdef01234567"
	require.NoError(t, store.Put(context.Background(), StorageKey(addr), []byte("garbage")))

	_, err := repo.Load(context.Background(), addr)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestRepositoryAddressMismatch(t *testing.T) {
	m, _ := newTestManager(t)
	store := memory.New()
	repo := NewRepository(store, nil, nil)
	ctx := context.Background()

	stored, err := m.CreateKeystore("correcthorse1")
	require.NoError(t, err)
	other, err := m.CreateKeystore("correcthorse1")
	require.NoError(t, err)

	// other 的地址下放的是 stored 的记录
	data, err := Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, StorageKey(other.Address), data))

	loaded, err := repo.Load(ctx, other.Address)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Nil(t, loaded)
}
