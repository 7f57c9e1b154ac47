package crypto

// SymmetricCipher 对称加解密
type SymmetricCipher interface {
	// Name 算法标识，写入 keystore 的 crypto.cipherName 字段
	Name() string

	// Encrypt 加密，密文长度与明文一致
	Encrypt(key, iv, plaintext []byte) ([]byte, error)

	// Decrypt 解密
	Decrypt(key, iv, ciphertext []byte) ([]byte, error)
}
