package crypto

// HashManager 定义哈希计算相关接口
type HashManager interface {
	// Keccak256 计算Keccak-256哈希，多个参数按顺序拼接
	Keccak256(data ...[]byte) []byte
}
