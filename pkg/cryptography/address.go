package cryptography

import (
	"bytes"

	"github.com/multiformats/go-multibase"
	"github.com/pkg/errors"
)

type KeyType uint8

const (
	KeyTypeEd25519 KeyType = iota + 1
	KeyTypeSecp256k1
	KeyTypeBn256
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeEd25519:
		return "ed25519"
	case KeyTypeSecp256k1:
		return "secp256k1"
	case KeyTypeBn256:
		return "bn256"
	default:
		return "unknown"
	}
}

// ParseKeyType maps a configured scheme name onto its KeyType
func ParseKeyType(s string) (KeyType, error) {
	for _, t := range []KeyType{KeyTypeEd25519, KeyTypeSecp256k1, KeyTypeBn256} {
		if t.String() == s {
			return t, nil
		}
	}

	return 0, errors.Errorf("unsupported key type: %s", s)
}

// Address is the public identity coins are sent to. The first byte
// carries the KeyType, the remainder is the scheme's public key encoding.
type Address []byte

func NewAddress(t KeyType, pk []byte) Address {
	a := make(Address, 0, len(pk)+1)
	a = append(a, byte(t))
	return append(a, pk...)
}

func (a Address) Type() KeyType {
	if len(a) == 0 {
		return 0
	}

	return KeyType(a[0])
}

func (a Address) PublicKey() []byte {
	if len(a) == 0 {
		return nil
	}

	return a[1:]
}

func (a Address) Clone() Address {
	if a == nil {
		return nil
	}

	c := make(Address, len(a))
	copy(c, a)
	return c
}

func (a Address) Equal(o Address) bool {
	return bytes.Equal(a, o)
}

// String returns the base58btc multibase form of the address
func (a Address) String() string {
	if len(a) == 0 {
		return ""
	}

	s, _ := multibase.Encode(multibase.Base58BTC, a)
	return s
}

func ParseAddress(s string) (Address, error) {
	d, err := decodeMultibase(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding multibase")
	}

	if len(d) < 2 {
		return nil, errors.New("address too short")
	}

	return Address(d), nil
}
