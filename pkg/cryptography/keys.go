package cryptography

import (
	"crypto"

	"github.com/pkg/errors"
)

// PrivateKey signs spends on behalf of the Address it controls
type PrivateKey interface {
	crypto.Signer

	Address() Address
}

func GenerateKey(t KeyType) (PrivateKey, error) {
	switch t {
	case KeyTypeEd25519:
		return NewEd25519PrivateKey()
	case KeyTypeSecp256k1:
		return NewEcdsaSecp256k1PrivateKey()
	case KeyTypeBn256:
		return NewBn256PrivateKey(), nil
	default:
		return nil, errors.Errorf("unsupported key type: %d", t)
	}
}

// Verify checks sig over msg against the key embedded in addr. Unknown
// key types and undecodable keys never verify.
func Verify(addr Address, msg, sig []byte) bool {
	var (
		ok  bool
		err error
	)

	switch addr.Type() {
	case KeyTypeEd25519:
		ok, err = VerifyEd25519(addr.PublicKey(), sig, msg)
	case KeyTypeSecp256k1:
		ok, err = VerifyEcdsaSecp256k1(addr.PublicKey(), sig, msg)
	case KeyTypeBn256:
		ok, err = VerifyBn256(addr.PublicKey(), sig, msg)
	default:
		return false
	}

	return err == nil && ok
}
