package kdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试使用最低成本参数，避免拖慢测试
var testParams = Params{MemoryCost: 8 * 1024, TimeCost: 1, Parallelism: 1}

func TestDeriveKeyDeterministic(t *testing.T) {
	a := NewArgon2id()
	salt := bytes.Repeat([]byte{0x01}, SaltLength)

	k1, err := a.Derive([]byte("correcthorse1"), salt, testParams)
	require.NoError(t, err)
	k2, err := a.Derive([]byte("correcthorse1"), salt, testParams)
	require.NoError(t, err)

	assert.Len(t, k1, KeyLength)
	assert.Equal(t, k1, k2)
}

func TestDeriveKeyDependsOnInputs(t *testing.T) {
	a := NewArgon2id()
	salt := bytes.Repeat([]byte{0x01}, SaltLength)
	otherSalt := bytes.Repeat([]byte{0x02}, SaltLength)

	base, err := a.Derive([]byte("correcthorse1"), salt, testParams)
	require.NoError(t, err)

	t.Run("不同口令", func(t *testing.T) {
		k, err := a.Derive([]byte("correcthorse2"), salt, testParams)
		require.NoError(t, err)
		assert.NotEqual(t, base, k)
	})

	t.Run("不同盐值", func(t *testing.T) {
		k, err := a.Derive([]byte("correcthorse1"), otherSalt, testParams)
		require.NoError(t, err)
		assert.NotEqual(t, base, k)
	})

	t.Run("不同参数", func(t *testing.T) {
		p := testParams
		p.TimeCost = 2
		k, err := a.Derive([]byte("correcthorse1"), salt, p)
		require.NoError(t, err)
		assert.NotEqual(t, base, k)
	})
}

func TestDeriveKeyRejectsBadSalt(t *testing.T) {
	_, err := NewArgon2id().Derive([]byte("correcthorse1"), make([]byte, 16), testParams)
	assert.ErrorIs(t, err, ErrInvalidSalt)
}

func TestParamsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{name: "默认参数", params: DefaultParams()},
		{name: "最低参数", params: testParams},
		{name: "内存过小", params: Params{MemoryCost: 1024, TimeCost: 1, Parallelism: 1}, wantErr: true},
		{name: "内存过大", params: Params{MemoryCost: 4 << 20, TimeCost: 1, Parallelism: 1}, wantErr: true},
		{name: "迭代为零", params: Params{MemoryCost: 8192, TimeCost: 0, Parallelism: 1}, wantErr: true},
		{name: "迭代过多", params: Params{MemoryCost: 8192, TimeCost: 65, Parallelism: 1}, wantErr: true},
		{name: "并行度为零", params: Params{MemoryCost: 8192, TimeCost: 1, Parallelism: 0}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "argon2id", NewArgon2id().Name())
}
