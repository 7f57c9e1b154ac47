package crypto

// KeyManager 密钥对生成与公钥推导
type KeyManager interface {
	// GenerateKeyPair 生成新的 Ed25519 密钥对，返回 (公钥, 私钥种子)
	GenerateKeyPair() (publicKey []byte, privateKey []byte, err error)

	// DerivePublicKey 从私钥种子重新推导公钥
	DerivePublicKey(privateKey []byte) ([]byte, error)
}
