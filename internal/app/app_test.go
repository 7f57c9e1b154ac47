package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

func testConfig(dataRoot string) *types.AppConfig {
	return &types.AppConfig{
		Environment: types.StringPtr("test"),
		Storage:     &types.UserStorageConfig{DataRoot: types.StringPtr(dataRoot)},
		Log:         &types.UserLogConfig{Level: types.StringPtr("error")},
		Keystore: &types.UserKeystoreConfig{
			MemoryCost:  types.UInt32Ptr(8192),
			TimeCost:    types.UInt32Ptr(1),
			Parallelism: types.UInt8Ptr(1),
		},
	}
}

func TestNewWiresKeystore(t *testing.T) {
	dataRoot := t.TempDir()
	a, err := New(
		WithAppConfig(testConfig(dataRoot)),
		WithRegisterer(prometheus.NewRegistry()),
	)
	require.NoError(t, err)
	require.NotNil(t, a.Manager)
	require.NotNil(t, a.Repository)

	assert.Equal(t, "test", a.Provider.GetEnvironment())
	assert.Equal(t, filepath.Join(dataRoot, "keystore"), a.Provider.GetBadger().Path)
	assert.Equal(t, uint32(8192), a.Manager.Params().MemoryCost)

	ks, err := a.Manager.CreateKeystore("correcthorse1")
	require.NoError(t, err)
	require.NoError(t, a.Repository.Save(context.Background(), ks))

	loaded, err := a.Repository.Load(context.Background(), ks.Address)
	require.NoError(t, err)
	_, err = a.Manager.RecoverPrivateKey(loaded, "correcthorse1")
	require.NoError(t, err)
}

func TestNewInMemory(t *testing.T) {
	a, err := New(
		WithAppConfig(testConfig(t.TempDir())),
		WithInMemoryStorage(),
		WithRegisterer(prometheus.NewRegistry()),
	)
	require.NoError(t, err)

	ks, err := a.Manager.CreateKeystore("correcthorse1")
	require.NoError(t, err)
	require.NoError(t, a.Repository.Save(context.Background(), ks))
	_, err = a.Repository.Load(context.Background(), ks.Address)
	require.NoError(t, err)
}

func TestNewMissingConfigFile(t *testing.T) {
	_, err := New(WithConfigFile(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)
}
