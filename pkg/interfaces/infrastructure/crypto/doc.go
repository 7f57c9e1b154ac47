// Package crypto 定义 keystore 流水线使用的密码学原语接口
//
// 🔐 **密码学原语接口**
//
// keystore 的创建与恢复串联了以下原语：
//   - RandomSource：密钥种子、盐值、IV 的随机来源
//   - KeyManager：Ed25519 密钥对生成与公钥推导
//   - KeyDerivation：Argon2id 口令密钥派生
//   - SymmetricCipher：私钥种子的对称加解密
//   - HashManager：MAC 与地址使用的 Keccak-256
//   - AddressManager：公钥到账户地址的推导
//
// 除随机源外，所有原语都是无状态的纯函数，实现位于
// internal/core/infrastructure/crypto 下的对应子包。
package crypto
