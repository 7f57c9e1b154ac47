package key

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/random"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("熵池不可用") }

func TestGenerateKeyPair(t *testing.T) {
	km := NewKeyManager(nil)

	pub1, priv1, err := km.GenerateKeyPair()
	require.NoError(t, err)
	pub2, priv2, err := km.GenerateKeyPair()
	require.NoError(t, err)

	assert.Len(t, pub1, PublicKeySize)
	assert.Len(t, priv1, PrivateKeySize)
	assert.False(t, bytes.Equal(priv1, priv2), "两次生成的私钥不应相同")
	assert.False(t, bytes.Equal(pub1, pub2), "两次生成的公钥不应相同")

	// 私钥种子签名的结果能被公钥验证
	sig := ed25519.Sign(ed25519.NewKeyFromSeed(priv1), []byte("wisdom"))
	assert.True(t, ed25519.Verify(pub1, []byte("wisdom"), sig))
}

func TestDerivePublicKey(t *testing.T) {
	km := NewKeyManager(nil)
	pub, priv, err := km.GenerateKeyPair()
	require.NoError(t, err)

	derived, err := km.DerivePublicKey(priv)
	require.NoError(t, err)
	assert.Equal(t, pub, derived)

	_, err = km.DerivePublicKey(priv[:31])
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestGenerateKeyPairEntropyFailure(t *testing.T) {
	km := NewKeyManager(failingReader{})
	_, _, err := km.GenerateKeyPair()
	assert.ErrorIs(t, err, random.ErrEntropy)
}

func TestDeterministicSource(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, PrivateKeySize)
	km := NewKeyManager(bytes.NewReader(seed))

	pub, priv, err := km.GenerateKeyPair()
	require.NoError(t, err)
	assert.Equal(t, seed, priv)
	assert.Equal(t, []byte(ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)), pub)
}

func TestValidatePublicKey(t *testing.T) {
	km := NewKeyManager(nil)
	assert.NoError(t, km.ValidatePublicKey(make([]byte, PublicKeySize)))
	assert.ErrorIs(t, km.ValidatePublicKey(make([]byte, 33)), ErrInvalidPublicKey)
}

func TestSecureWipe(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	SecureWipe(data)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)
	SecureWipe(nil)
}
