package types

// KeyPair Ed25519 密钥对
//
// PrivateKey 为 32 字节种子（即被加密保存的私钥编码），PublicKey 为 32 字节公钥。
// 私钥明文只在创建流程内短暂存在，加密完成后即被擦除。
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// Keystore 加密私钥文件格式（version "1"）
type Keystore struct {
	Address   string    `json:"address"` // hex编码，无0x前缀
	Crypto    Crypto    `json:"crypto"`
	KDF       string    `json:"kdf"` // "argon2id"
	KDFParams KDFParams `json:"kdfparams"`
	ID        string    `json:"id"`      // UUID
	Version   string    `json:"version"` // "1"
	MAC       string    `json:"mac"`     // keccak256(derivedKey || ciphertext)
}

// Crypto 加密参数
type Crypto struct {
	CipherName   string       `json:"cipherName"` // "aes-256-ctr"
	Ciphertext   string       `json:"ciphertext"` // hex编码
	CipherParams CipherParams `json:"cipherparams"`
}

// CipherParams 密码参数
type CipherParams struct {
	IV string `json:"iv"` // hex编码的初始化向量（16字节）
}

// KDFParams 密钥派生参数
type KDFParams struct {
	MemoryCost  uint32 `json:"memoryCost"` // KiB
	TimeCost    uint32 `json:"timeCost"`
	Parallelism uint8  `json:"parallelism"`
	Salt        string `json:"salt"` // hex编码的盐值（32字节）
}
