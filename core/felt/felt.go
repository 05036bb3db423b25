package felt

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

const (
	Limbs = fp.Limbs // number of 64 bits words needed to represent a Element
	Bits  = fp.Bits  // number of bits needed to represent a Element
	Bytes = fp.Bytes // number of bytes needed to represent a Element
)

// ErrFeltSize is returned when decoding a byte sequence longer than 32 bytes.
var ErrFeltSize = errors.New("felt: invalid size")

type Felt struct {
	val fp.Element
}

// zero felt constant
var Zero = Felt{}

var bigIntPool = sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

// FromBytes decodes a big-endian byte sequence of at most 32 bytes into a
// field element. Shorter sequences are left-zero-padded; longer sequences are
// rejected with ErrFeltSize.
func FromBytes(data []byte) (*Felt, error) {
	if len(data) > Bytes {
		return nil, fmt.Errorf("%w: got %d bytes, max %d", ErrFeltSize, len(data), Bytes)
	}
	var buf [Bytes]byte
	copy(buf[Bytes-len(data):], data)

	f := new(Felt)
	if err := f.val.SetBytesCanonical(buf[:]); err != nil {
		return nil, err
	}
	return f, nil
}

// FromUint64 returns a field element holding v.
func FromUint64(v uint64) *Felt {
	return new(Felt).SetUint64(v)
}

// Bytes returns the canonical 32-byte big-endian encoding. The reverse of
// FromBytes for every valid input.
func (z *Felt) Bytes() [Bytes]byte {
	return z.val.Bytes()
}

// Marshal returns the value as a big-endian byte slice.
func (z *Felt) Marshal() []byte {
	return z.val.Marshal()
}

// UnmarshalJSON accepts numbers and strings as input.
// See Element.SetString for valid prefixes (0x, 0b, ...).
func (z *Felt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > Bits*3 {
		return errors.New("felt: value too large")
	}

	// we accept numbers and strings, remove leading and trailing quotes if any
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}

	vv := bigIntPool.Get().(*big.Int)
	defer bigIntPool.Put(vv)

	if _, ok := vv.SetString(s, 0); !ok {
		if _, ok := vv.SetString(s, 16); !ok {
			return errors.New("felt: can't parse into a big.Int: " + s)
		}
	}

	z.val.SetBigInt(vv)
	return nil
}

// MarshalJSON encodes the value as a 0x-prefixed hex string, the form the
// StarkNet JSON-RPC wire expects.
func (z *Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Felt) String() string {
	return "0x" + z.val.Text(16)
}

func (z *Felt) SetBytes(e []byte) *Felt {
	z.val.SetBytes(e)
	return z
}

func (z *Felt) SetString(number string) (*Felt, error) {
	_, err := z.val.SetString(number)
	return z, err
}

func (z *Felt) SetUint64(v uint64) *Felt {
	z.val.SetUint64(v)
	return z
}

func (z *Felt) SetBigInt(v *big.Int) *Felt {
	z.val.SetBigInt(v)
	return z
}

// Uint64 returns the low 64 bits of the canonical representation.
func (z *Felt) Uint64() uint64 {
	bytes := z.val.Bytes()
	var v uint64
	for _, b := range bytes[Bytes-8:] {
		v = v<<8 | uint64(b)
	}
	return v
}

func (z *Felt) Equal(x *Felt) bool {
	return z.val.Equal(&x.val)
}

func (z *Felt) IsZero() bool {
	return z.val.IsZero()
}

func (z *Felt) IsOne() bool {
	return z.val.IsOne()
}

func (z *Felt) Cmp(x *Felt) int {
	return z.val.Cmp(&x.val)
}

// Clone returns a copy of the value, usable independently of the receiver.
func (z *Felt) Clone() *Felt {
	c := *z
	return &c
}
