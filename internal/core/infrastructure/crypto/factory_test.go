package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/huang190105/wisdom-operations-master/internal/config"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/kdf"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

func TestCreateCryptoServicesDefaults(t *testing.T) {
	out, err := CreateCryptoServices(ServiceInput{})
	require.NoError(t, err)

	assert.Equal(t, kdf.DefaultParams(), out.KDFParams)
	assert.Equal(t, "argon2id", out.KeyDerivation.Name())
	assert.Equal(t, "aes-256-ctr", out.Cipher.Name())

	pub, priv, err := out.KeyManager.GenerateKeyPair()
	require.NoError(t, err)
	derived, err := out.KeyManager.DerivePublicKey(priv)
	require.NoError(t, err)
	assert.Equal(t, pub, derived)

	addr, err := out.AddressManager.PublicKeyToAddress(pub)
	require.NoError(t, err)
	assert.NoError(t, out.AddressManager.ValidateAddress(addr))
}

func TestCreateCryptoServicesFromConfig(t *testing.T) {
	provider := appconfig.NewProvider(&types.AppConfig{
		Keystore: &types.UserKeystoreConfig{
			MemoryCost:  types.UInt32Ptr(8192),
			TimeCost:    types.UInt32Ptr(1),
			Parallelism: types.UInt8Ptr(1),
		},
	})

	out, err := CreateCryptoServices(ServiceInput{ConfigProvider: provider})
	require.NoError(t, err)
	assert.Equal(t, kdf.Params{MemoryCost: 8192, TimeCost: 1, Parallelism: 1}, out.KDFParams)
}
