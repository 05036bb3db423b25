package felt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/starkstream/node/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	t.Run("full 32 bytes", func(t *testing.T) {
		in := make([]byte, felt.Bytes)
		in[felt.Bytes-1] = 0x2a
		f, err := felt.FromBytes(in)
		require.NoError(t, err)
		got := f.Bytes()
		assert.Equal(t, in, got[:])
	})

	t.Run("short input is left-zero-padded", func(t *testing.T) {
		in := bytes.Repeat([]byte{0xab}, 20)
		f, err := felt.FromBytes(in)
		require.NoError(t, err)

		got := f.Bytes()
		assert.Equal(t, bytes.Repeat([]byte{0x00}, 12), got[:12])
		assert.Equal(t, in, got[12:])
	})

	t.Run("empty input is zero", func(t *testing.T) {
		f, err := felt.FromBytes(nil)
		require.NoError(t, err)
		assert.True(t, f.IsZero())
	})

	t.Run("more than 32 bytes rejected", func(t *testing.T) {
		_, err := felt.FromBytes(make([]byte, felt.Bytes+1))
		require.ErrorIs(t, err, felt.ErrFeltSize)
	})
}

func TestBytesRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x01},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0x11}, 31),
	}
	for _, in := range inputs {
		f, err := felt.FromBytes(in)
		require.NoError(t, err)

		padded := make([]byte, felt.Bytes)
		copy(padded[felt.Bytes-len(in):], in)
		got := f.Bytes()
		assert.Equal(t, padded, got[:])
	}
}

func TestJSON(t *testing.T) {
	t.Run("hex string", func(t *testing.T) {
		var f felt.Felt
		require.NoError(t, json.Unmarshal([]byte(`"0x4437ab"`), &f))
		assert.Equal(t, "0x4437ab", f.String())
	})

	t.Run("decimal string", func(t *testing.T) {
		var f felt.Felt
		require.NoError(t, json.Unmarshal([]byte(`"10"`), &f))
		assert.Equal(t, uint64(10), f.Uint64())
	})

	t.Run("number", func(t *testing.T) {
		var f felt.Felt
		require.NoError(t, json.Unmarshal([]byte(`255`), &f))
		assert.Equal(t, uint64(255), f.Uint64())
	})

	t.Run("garbage", func(t *testing.T) {
		var f felt.Felt
		require.Error(t, json.Unmarshal([]byte(`"zzz"`), &f))
	})

	t.Run("round trip", func(t *testing.T) {
		f := felt.FromUint64(0xcafe)
		data, err := json.Marshal(f)
		require.NoError(t, err)
		assert.Equal(t, `"0xcafe"`, string(data))

		var back felt.Felt
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, f.Equal(&back))
	})
}

func TestUint64(t *testing.T) {
	assert.Equal(t, uint64(0), felt.Zero.Uint64())
	assert.Equal(t, uint64(1), felt.FromUint64(1).Uint64())
	assert.Equal(t, uint64(0xffffffffffffffff), felt.FromUint64(0xffffffffffffffff).Uint64())
}

func TestString(t *testing.T) {
	assert.Equal(t, "0x0", felt.Zero.String())
	assert.Equal(t, "0x2a", felt.FromUint64(42).String())
}
