package cryptography

import (
	"bytes"
	"crypto"
	"io"

	"github.com/pkg/errors"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing/bn256"
	"go.dedis.ch/kyber/v3/sign/bls"
	"go.dedis.ch/kyber/v3/util/random"
)

var (
	_ PrivateKey = (*Bn256PrivateKey)(nil)

	suite = bn256.NewSuite()
)

type Bn256PrivateKey struct {
	sk kyber.Scalar
	pk kyber.Point
}

func NewBn256PrivateKey() *Bn256PrivateKey {
	sk, pk := bls.NewKeyPair(suite, random.New())
	return &Bn256PrivateKey{sk, pk}
}

// Sign produces a BLS signature, which is unique for a given key and msg
func (b *Bn256PrivateKey) Sign(_ io.Reader, msg []byte, _ crypto.SignerOpts) ([]byte, error) {
	return bls.Sign(suite, b.sk, msg)
}

func (b *Bn256PrivateKey) Public() crypto.PublicKey {
	return b.pk
}

func (b *Bn256PrivateKey) Address() Address {
	pk, _ := b.pk.MarshalBinary()
	return NewAddress(KeyTypeBn256, pk)
}

// VerifyBn256 only accepts the canonical encoding of sig, so a valid
// signature cannot be padded or re-encoded into a second accepted form.
func VerifyBn256(pk []byte, sig []byte, msg []byte) (bool, error) {
	if len(pk) != suite.G2().PointLen() {
		return false, errors.New("invalid bn256 public key size")
	}

	if len(sig) != suite.G1().PointLen() {
		return false, errors.New("invalid bn256 signature size")
	}

	p := suite.G2().Point()
	if err := p.UnmarshalBinary(pk); err != nil {
		return false, errors.Wrap(err, "unmarshalling bn256 point")
	}

	s := suite.G1().Point()
	if err := s.UnmarshalBinary(sig); err != nil {
		return false, errors.Wrap(err, "unmarshalling bn256 signature")
	}

	canonical, err := s.MarshalBinary()
	if err != nil {
		return false, errors.Wrap(err, "marshalling bn256 signature")
	}

	if !bytes.Equal(canonical, sig) {
		return false, errors.New("non-canonical bn256 signature")
	}

	if err := bls.Verify(suite, p, msg, sig); err != nil {
		return false, nil
	}

	return true, nil
}
