package hash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestKeccak256(t *testing.T) {
	hashService := NewHashService()

	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"空数据", []byte{}, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", []byte("abc"), "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashService.Keccak256(tc.input)
			if len(result) != Keccak256Length {
				t.Fatalf("Keccak256 长度 = %d, 期望 %d", len(result), Keccak256Length)
			}
			if got := hex.EncodeToString(result); got != tc.expected {
				t.Errorf("Keccak256(%q) = %s, 期望 %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeccak256Concatenation(t *testing.T) {
	hashService := NewHashService()

	joined := hashService.Keccak256([]byte("derived-key"), []byte("ciphertext"))
	whole := hashService.Keccak256([]byte("derived-keyciphertext"))
	if !bytes.Equal(joined, whole) {
		t.Errorf("多参数结果应等于拼接后的哈希")
	}

	// 结果不应被复用：修改返回值不影响下一次计算
	joined[0] ^= 0xFF
	again := hashService.Keccak256([]byte("derived-key"), []byte("ciphertext"))
	if !bytes.Equal(again, whole) {
		t.Errorf("修改返回值影响了后续计算")
	}
}

func TestConstantTimeCompare(t *testing.T) {
	a := []byte{1, 2, 3}

	if !ConstantTimeCompare(a, []byte{1, 2, 3}) {
		t.Error("相同数据比较应返回 true")
	}
	if ConstantTimeCompare(a, []byte{1, 2, 4}) {
		t.Error("不同数据比较应返回 false")
	}
	if ConstantTimeCompare(a, []byte{1, 2}) {
		t.Error("长度不同应返回 false")
	}
}
