// Package keystore 实现口令保护的私钥加密文件（keystore）的创建与恢复
//
// 创建流程：校验口令 → 生成密钥对 → 生成盐值与IV → Argon2id 派生密钥
// → AES-256-CTR 加密私钥种子 → mac = keccak256(derivedKey‖ciphertext)
// → 由公钥推导地址 → 组装记录。
//
// 恢复流程为其逆过程：先校验 MAC，再解密，最后重算地址交叉验证。
// 派生密钥与私钥明文只在单次调用内存在，所有返回路径上都会被擦除
// （返回给调用方的私钥除外，由调用方负责擦除）。
package keystore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/address"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/encryption"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/hash"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/kdf"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/key"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/random"
	corelog "github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/metrics"
	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// ManagerInput 定义 Manager 的依赖，未设置的字段使用默认实现
type ManagerInput struct {
	Random         cryptointf.RandomSource
	KeyManager     cryptointf.KeyManager
	KeyDerivation  cryptointf.KeyDerivation
	Cipher         cryptointf.SymmetricCipher
	HashManager    cryptointf.HashManager
	AddressManager cryptointf.AddressManager
	Params         kdf.Params // 零值表示使用默认参数
	Logger         log.Logger
	Metrics        *metrics.KeystoreMetrics
}

// Manager keystore 管理器
//
// 只持有不可变的协作对象，可被多个 goroutine 并发使用。
type Manager struct {
	random     cryptointf.RandomSource
	keyManager cryptointf.KeyManager
	kdf        cryptointf.KeyDerivation
	cipher     cryptointf.SymmetricCipher
	hash       cryptointf.HashManager
	address    cryptointf.AddressManager
	params     kdf.Params
	logger     log.Logger
	metrics    *metrics.KeystoreMetrics
}

// NewManager 创建 keystore 管理器
func NewManager(input ManagerInput) (*Manager, error) {
	m := &Manager{
		random:     input.Random,
		keyManager: input.KeyManager,
		kdf:        input.KeyDerivation,
		cipher:     input.Cipher,
		hash:       input.HashManager,
		address:    input.AddressManager,
		params:     input.Params,
		logger:     corelog.NewModuleLogger(input.Logger, "keystore"),
		metrics:    input.Metrics,
	}

	if m.random == nil {
		m.random = random.Default()
	}
	if m.keyManager == nil {
		m.keyManager = key.NewKeyManager(m.random)
	}
	if m.kdf == nil {
		m.kdf = kdf.NewArgon2id()
	}
	if m.cipher == nil {
		m.cipher = encryption.NewAESCTR()
	}
	if m.hash == nil {
		m.hash = hash.NewHashService()
	}
	if m.address == nil {
		m.address = address.NewAddressService(m.hash)
	}
	if m.params == (kdf.Params{}) {
		m.params = kdf.DefaultParams()
	}
	if err := m.params.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Params 返回创建新记录时使用的KDF参数
func (m *Manager) Params() kdf.Params {
	return m.params
}

// CreateKeystore 用口令创建新的 keystore 记录
//
// 返回的记录 mac 与 address 均已填充，失败时不返回部分记录。
func (m *Manager) CreateKeystore(password string) (ks *types.Keystore, err error) {
	defer func() { m.metrics.ObserveOperation(metrics.OperationCreate, resultLabel(err)) }()

	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	publicKey, privateKey, err := m.keyManager.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("生成密钥对失败: %w", err)
	}
	pair := types.KeyPair{PublicKey: publicKey, PrivateKey: privateKey}
	defer key.SecureWipe(pair.PrivateKey)

	ks, err = m.seal(pair, password)
	if err != nil {
		return nil, err
	}

	m.logger.Infof("keystore 已创建: address=%s id=%s", ks.Address, ks.ID)
	return ks, nil
}

// seal 加密私钥并组装记录，每次调用都使用新的盐值和IV
func (m *Manager) seal(pair types.KeyPair, password string) (*types.Keystore, error) {
	salt, err := m.readRandom(kdf.SaltLength)
	if err != nil {
		return nil, fmt.Errorf("生成盐值失败: %w", err)
	}
	iv, err := m.readRandom(encryption.IVLength)
	if err != nil {
		return nil, fmt.Errorf("生成IV失败: %w", err)
	}

	derivedKey, err := m.deriveKey(password, salt, m.params)
	if err != nil {
		return nil, fmt.Errorf("派生密钥失败: %w", err)
	}
	defer key.SecureWipe(derivedKey)

	ciphertext, err := m.cipher.Encrypt(derivedKey, iv, pair.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("加密私钥失败: %w", err)
	}
	mac := m.hash.Keccak256(derivedKey, ciphertext)

	addr, err := m.address.PublicKeyToAddress(pair.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("推导地址失败: %w", err)
	}

	return encode(sealed{
		address:    addr,
		ciphertext: ciphertext,
		iv:         iv,
		salt:       salt,
		mac:        mac,
		params:     m.params,
	})
}

// RecoverPrivateKey 用口令从记录中恢复私钥种子
//
// MAC 不匹配时返回 ErrAuthentication 且不会解密；
// 解密后重算的地址与记录不一致时返回 ErrIntegrity。
// 返回的私钥由调用方负责用 key.SecureWipe 擦除。
func (m *Manager) RecoverPrivateKey(ks *types.Keystore, password string) (privateKey []byte, err error) {
	defer func() { m.metrics.ObserveOperation(metrics.OperationRecover, resultLabel(err)) }()
	return m.open(ks, password)
}

func (m *Manager) open(ks *types.Keystore, password string) ([]byte, error) {
	rec, err := Decode(ks)
	if err != nil {
		return nil, err
	}
	if rec.CipherName != m.cipher.Name() {
		return nil, fmt.Errorf("%w: cipherName %q 与当前实现 %q 不一致", ErrMalformedRecord, rec.CipherName, m.cipher.Name())
	}

	derivedKey, err := m.deriveKey(password, rec.Salt, rec.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: 派生密钥失败: %v", ErrMalformedRecord, err)
	}
	defer key.SecureWipe(derivedKey)

	mac := m.hash.Keccak256(derivedKey, rec.Ciphertext)
	if !hash.ConstantTimeCompare(mac, rec.MAC) {
		m.logger.Warnf("keystore MAC 校验失败: address=%s", ks.Address)
		return nil, fmt.Errorf("%w: 口令错误或记录已损坏", ErrAuthentication)
	}

	privateKey, err := m.cipher.Decrypt(derivedKey, rec.IV, rec.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: 解密失败: %v", ErrMalformedRecord, err)
	}

	if err := m.crossCheck(privateKey, rec.Address); err != nil {
		key.SecureWipe(privateKey)
		m.logger.Errorf("keystore 地址校验失败: address=%s err=%v", ks.Address, err)
		return nil, err
	}

	m.logger.Debugf("keystore 已解锁: address=%s", ks.Address)
	return privateKey, nil
}

// crossCheck 由恢复出的私钥重算地址并与记录比较
func (m *Manager) crossCheck(privateKey, storedAddress []byte) error {
	publicKey, err := m.keyManager.DerivePublicKey(privateKey)
	if err != nil {
		return fmt.Errorf("%w: 推导公钥失败: %v", ErrIntegrity, err)
	}
	addr, err := m.address.PublicKeyToAddress(publicKey)
	if err != nil {
		return fmt.Errorf("%w: 推导地址失败: %v", ErrIntegrity, err)
	}
	computed, err := decodeHexField("address", addr, len(storedAddress))
	if err != nil || !bytes.Equal(computed, storedAddress) {
		return fmt.Errorf("%w: 重算地址 %s 与记录不一致", ErrIntegrity, addr)
	}
	return nil
}

// ChangePassword 用新口令重新加密记录
//
// 先用旧口令完整恢复私钥，再以新的盐值、IV 和 id 重新创建记录；地址不变。
func (m *Manager) ChangePassword(ks *types.Keystore, oldPassword, newPassword string) (updated *types.Keystore, err error) {
	defer func() { m.metrics.ObserveOperation(metrics.OperationChangePassword, resultLabel(err)) }()

	if err := ValidatePassword(newPassword); err != nil {
		return nil, err
	}

	privateKey, err := m.open(ks, oldPassword)
	if err != nil {
		return nil, err
	}
	defer key.SecureWipe(privateKey)

	publicKey, err := m.keyManager.DerivePublicKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: 推导公钥失败: %v", ErrIntegrity, err)
	}

	updated, err = m.seal(types.KeyPair{PublicKey: publicKey, PrivateKey: privateKey}, newPassword)
	if err != nil {
		return nil, err
	}

	m.logger.Infof("keystore 口令已更新: address=%s id=%s", updated.Address, updated.ID)
	return updated, nil
}

// deriveKey 派生密钥并记录耗时，口令的字节副本在返回前擦除
func (m *Manager) deriveKey(password string, salt []byte, params kdf.Params) ([]byte, error) {
	pw := []byte(password)
	defer key.SecureWipe(pw)

	start := time.Now()
	derivedKey, err := m.kdf.DeriveKey(pw, salt, params.MemoryCost, params.TimeCost, params.Parallelism)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	m.metrics.ObserveKDF(elapsed)
	m.logger.Debugf("Argon2id 派生耗时: %s", elapsed)
	return derivedKey, nil
}

// readRandom 从共享随机源读取 n 字节
func (m *Manager) readRandom(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(m.random, buf); err != nil {
		if errors.Is(err, ErrEntropy) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return buf, nil
}
