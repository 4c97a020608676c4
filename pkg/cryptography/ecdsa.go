package cryptography

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"io"

	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	_ PrivateKey = (*Secp256k1PrivateKey)(nil)
)

type Secp256k1PrivateKey struct {
	*ecdsa.PrivateKey
}

func NewEcdsaSecp256k1PrivateKey() (*Secp256k1PrivateKey, error) {
	pk, err := ecdsa.GenerateKey(ethCrypto.S256(), rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generating ecdsa key")
	}

	return &Secp256k1PrivateKey{pk}, nil
}

func (p *Secp256k1PrivateKey) Bytes() ([]byte, error) {
	return ethCrypto.FromECDSA(p.PrivateKey), nil
}

// Sign produces a 65 byte [R || S || V] signature over the keccak256 digest
// of msg. Nonces are RFC6979 derived so the output is deterministic.
func (p *Secp256k1PrivateKey) Sign(_ io.Reader, msg []byte, _ crypto.SignerOpts) ([]byte, error) {
	return ethCrypto.Sign(ethCrypto.Keccak256(msg), p.PrivateKey)
}

func (p *Secp256k1PrivateKey) Public() crypto.PublicKey {
	return &p.PublicKey
}

func (p *Secp256k1PrivateKey) Address() Address {
	return NewAddress(KeyTypeSecp256k1, ethCrypto.FromECDSAPub(&p.PublicKey))
}

// VerifyEcdsaSecp256k1 requires low-S and a recovery id that recovers pk,
// leaving exactly one accepted encoding per signature.
func VerifyEcdsaSecp256k1(pk []byte, sig []byte, msg []byte) (bool, error) {
	if len(sig) != ethCrypto.SignatureLength {
		return false, errors.New("invalid signature length")
	}

	if sig[ethCrypto.RecoveryIDOffset] > 1 {
		return false, errors.New("invalid recovery id")
	}

	if _, err := ethCrypto.UnmarshalPubkey(pk); err != nil {
		return false, errors.Wrap(err, "unmarshalling ecdsa pub key")
	}

	dig := ethCrypto.Keccak256(msg)

	if !ethCrypto.VerifySignature(pk, dig, sig[:ethCrypto.RecoveryIDOffset]) {
		return false, nil
	}

	recovered, err := ethCrypto.Ecrecover(dig, sig)
	if err != nil {
		return false, errors.Wrap(err, "recovering public key")
	}

	return bytes.Equal(recovered, pk), nil
}
