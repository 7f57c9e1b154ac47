package keystore

import (
	"fmt"
	"unicode/utf8"
)

// 口令长度范围（按字符计，含边界）
const (
	MinPasswordLength = 8
	MaxPasswordLength = 20
)

// ValidatePassword 检查口令长度是否在 [8, 20] 个字符之间
//
// 长度按 Unicode 字符计算，多字节字符算一个。
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return fmt.Errorf("%w: 请输入%d-%d位密码，当前%d位", ErrValidation, MinPasswordLength, MaxPasswordLength, n)
	}
	return nil
}
