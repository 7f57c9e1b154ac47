package crypto

// AddressManager 地址推导
type AddressManager interface {
	// PublicKeyToAddress 从公钥生成hex地址
	PublicKeyToAddress(publicKey []byte) (string, error)

	// ValidateAddress 校验地址格式
	ValidateAddress(address string) error
}
