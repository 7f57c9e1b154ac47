package keystore

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/address"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/encryption"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/hash"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/kdf"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/key"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// Version 当前记录格式版本
const Version = "1"

// sealed 创建流程产生的各项原始字节
type sealed struct {
	address    string
	ciphertext []byte
	iv         []byte
	salt       []byte
	mac        []byte
	params     kdf.Params
}

// Record 解码后的记录字段
type Record struct {
	ID         uuid.UUID
	Address    []byte
	CipherName string
	Ciphertext []byte
	IV         []byte
	Salt       []byte
	MAC        []byte
	Params     kdf.Params
}

// encode 组装记录，二进制字段全部 hex 编码，id 为新生成的 UUID
func encode(s sealed) (*types.Keystore, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: 生成UUID失败: %v", ErrEntropy, err)
	}

	return &types.Keystore{
		Address: s.address,
		Crypto: types.Crypto{
			CipherName: encryption.CipherName,
			Ciphertext: hex.EncodeToString(s.ciphertext),
			CipherParams: types.CipherParams{
				IV: hex.EncodeToString(s.iv),
			},
		},
		KDF: kdf.Name,
		KDFParams: types.KDFParams{
			MemoryCost:  s.params.MemoryCost,
			TimeCost:    s.params.TimeCost,
			Parallelism: s.params.Parallelism,
			Salt:        hex.EncodeToString(s.salt),
		},
		ID:      id.String(),
		Version: Version,
		MAC:     hex.EncodeToString(s.mac),
	}, nil
}

// Decode 校验记录结构并解出各字段
//
// 任一必填字段缺失、hex 编码错误或长度与声明的参数不一致时返回 ErrMalformedRecord。
func Decode(ks *types.Keystore) (*Record, error) {
	if ks == nil {
		return nil, fmt.Errorf("%w: 记录为空", ErrMalformedRecord)
	}
	if ks.Version != Version {
		return nil, fmt.Errorf("%w: 不支持的版本 %q", ErrMalformedRecord, ks.Version)
	}
	if ks.KDF != kdf.Name {
		return nil, fmt.Errorf("%w: 不支持的kdf %q", ErrMalformedRecord, ks.KDF)
	}
	if ks.Crypto.CipherName != encryption.CipherName {
		return nil, fmt.Errorf("%w: 不支持的cipherName %q", ErrMalformedRecord, ks.Crypto.CipherName)
	}

	id, err := uuid.Parse(ks.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id: %v", ErrMalformedRecord, err)
	}

	rec := &Record{ID: id, CipherName: ks.Crypto.CipherName}
	fields := []struct {
		name  string
		value string
		size  int
		dst   *[]byte
	}{
		{"address", ks.Address, address.AddressLength, &rec.Address},
		{"crypto.ciphertext", ks.Crypto.Ciphertext, key.PrivateKeySize, &rec.Ciphertext},
		{"crypto.cipherparams.iv", ks.Crypto.CipherParams.IV, encryption.IVLength, &rec.IV},
		{"kdfparams.salt", ks.KDFParams.Salt, kdf.SaltLength, &rec.Salt},
		{"mac", ks.MAC, hash.Keccak256Length, &rec.MAC},
	}
	for _, f := range fields {
		b, err := decodeHexField(f.name, f.value, f.size)
		if err != nil {
			return nil, err
		}
		*f.dst = b
	}

	rec.Params = kdf.Params{
		MemoryCost:  ks.KDFParams.MemoryCost,
		TimeCost:    ks.KDFParams.TimeCost,
		Parallelism: ks.KDFParams.Parallelism,
	}
	if err := rec.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: kdfparams: %v", ErrMalformedRecord, err)
	}
	return rec, nil
}

func decodeHexField(name, value string, size int) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: 缺少字段 %s", ErrMalformedRecord, name)
	}
	if value != strings.ToLower(value) {
		return nil, fmt.Errorf("%w: %s 必须是小写hex", ErrMalformedRecord, name)
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s 不是合法的hex: %v", ErrMalformedRecord, name, err)
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: %s 长度应为%d字节，实际%d字节", ErrMalformedRecord, name, size, len(b))
	}
	return b, nil
}

// Marshal 序列化为带缩进的JSON
func Marshal(ks *types.Keystore) ([]byte, error) {
	if ks == nil {
		return nil, fmt.Errorf("%w: 记录为空", ErrMalformedRecord)
	}
	return json.MarshalIndent(ks, "", "  ")
}

// Unmarshal 解析JSON并校验结构
func Unmarshal(data []byte) (*types.Keystore, error) {
	var ks types.Keystore
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, fmt.Errorf("%w: 解析JSON失败: %v", ErrMalformedRecord, err)
	}
	if _, err := Decode(&ks); err != nil {
		return nil, err
	}
	return &ks, nil
}
