package crypto

import "io"

// RandomSource 密码学安全随机源，必须可并发使用
type RandomSource interface {
	io.Reader
}
