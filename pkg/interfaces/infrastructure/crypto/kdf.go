package crypto

// KeyDerivation 基于口令的密钥派生
type KeyDerivation interface {
	// Name 算法标识，写入 keystore 的 kdf 字段
	Name() string

	// DeriveKey 使用给定参数派生固定长度的对称密钥
	DeriveKey(password, salt []byte, memoryCost, timeCost uint32, parallelism uint8) ([]byte, error)
}
