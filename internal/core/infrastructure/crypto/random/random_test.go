package random

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("熵池不可用") }

func TestBytes(t *testing.T) {
	src := Default()
	a, err := src.Bytes(32)
	require.NoError(t, err)
	b, err := src.Bytes(32)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.False(t, bytes.Equal(a, b), "两次读取不应相同")
}

func TestShortReaderIsEntropyError(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte{1, 2, 3}))
	_, err := src.Bytes(16)
	assert.ErrorIs(t, err, ErrEntropy)
}

func TestFailingReaderIsEntropyError(t *testing.T) {
	_, err := NewSource(failingReader{}).Bytes(1)
	assert.ErrorIs(t, err, ErrEntropy)
}
