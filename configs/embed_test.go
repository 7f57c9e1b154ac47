package configs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huang190105/wisdom-operations-master/internal/config/keystore"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

func TestEmbeddedConfigsParse(t *testing.T) {
	for _, env := range []string{"dev", "test", "prod"} {
		t.Run(env, func(t *testing.T) {
			data, err := GetConfig(env)
			require.NoError(t, err)

			var cfg types.AppConfig
			require.NoError(t, json.Unmarshal(data, &cfg))
			require.NotNil(t, cfg.Environment)
			assert.Equal(t, env, *cfg.Environment)
			require.NotNil(t, cfg.Keystore)

			// 模板里的参数都应在允许范围内，不会被默认值覆盖
			opts := keystore.New(cfg.Keystore).GetOptions()
			assert.Equal(t, *cfg.Keystore.MemoryCost, opts.MemoryCost)
			assert.Equal(t, *cfg.Keystore.TimeCost, opts.TimeCost)
			assert.Equal(t, *cfg.Keystore.Parallelism, opts.Parallelism)
		})
	}
}

func TestGetConfigAliases(t *testing.T) {
	dev, err := GetConfig("Development")
	require.NoError(t, err)
	assert.Equal(t, GetEmbeddedConfigs().Development, dev)

	_, err = GetConfig("staging")
	assert.Error(t, err)
}
