package cryptography

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

var (
	_ PrivateKey = (*Ed25519PrivateKey)(nil)
)

type Ed25519PrivateKey struct {
	sk ed25519.PrivateKey
}

func NewEd25519PrivateKey() (*Ed25519PrivateKey, error) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generating ed25519 key")
	}

	return &Ed25519PrivateKey{sk}, nil
}

func NewEd25519PrivateKeyFromSeed(seed []byte) (*Ed25519PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Errorf("ed25519 seed must be %d bytes", ed25519.SeedSize)
	}

	return &Ed25519PrivateKey{ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign signs msg directly; ed25519 signatures are deterministic
func (e *Ed25519PrivateKey) Sign(_ io.Reader, msg []byte, _ crypto.SignerOpts) ([]byte, error) {
	return ed25519.Sign(e.sk, msg), nil
}

func (e *Ed25519PrivateKey) Public() crypto.PublicKey {
	return e.sk.Public()
}

func (e *Ed25519PrivateKey) Address() Address {
	return NewAddress(KeyTypeEd25519, e.sk.Public().(ed25519.PublicKey))
}

func VerifyEd25519(pk []byte, sig []byte, msg []byte) (bool, error) {
	if len(pk) != ed25519.PublicKeySize {
		return false, errors.New("invalid ed25519 public key size")
	}

	return ed25519.Verify(ed25519.PublicKey(pk), msg, sig), nil
}
