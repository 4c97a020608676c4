package tx

import (
	"crypto"

	"github.com/pkg/errors"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/vmihailenco/msgpack/v5"
)

// Tx moves a single coin to Output. A Tx without an Input creates a coin;
// its Signature is then an opaque nonce and is never verified.
type Tx struct {
	Input     TxID                 `msgpack:"i"`
	Output    cryptography.Address `msgpack:"o"`
	Signature []byte               `msgpack:"s"`
}

// signingPayload is the message a spend signature commits to
type signingPayload struct {
	Input  string `msgpack:"input"`
	Output string `msgpack:"output"`
}

func New(input TxID, output cryptography.Address, signature []byte) *Tx {
	return &Tx{
		Input:     input,
		Output:    output,
		Signature: signature,
	}
}

// Sign builds a spend of input to output, signed by the input's owner
func Sign(key cryptography.PrivateKey, input TxID, output cryptography.Address) (*Tx, error) {
	msg, err := SigningPayload(input, output)
	if err != nil {
		return nil, err
	}

	sig, err := key.Sign(nil, msg, crypto.Hash(0))
	if err != nil {
		return nil, errors.Wrap(err, "signing tx")
	}

	return New(input, output, sig), nil
}

func SigningPayload(input TxID, output cryptography.Address) ([]byte, error) {
	b, err := msgpack.Marshal(&signingPayload{
		Input:  input.String(),
		Output: output.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshalling signing payload")
	}

	return b, nil
}

// ID is the content hash over every field, signature included
func (t *Tx) ID() TxID {
	c, _, err := ContentID(t)
	if err != nil {
		panic(errors.Wrap(err, "hashing tx"))
	}

	return TxID(c)
}

func (t *Tx) IsMint() bool {
	return !t.Input.Defined()
}

// VerifyOwner reports whether owner signed this spend
func (t *Tx) VerifyOwner(owner cryptography.Address) bool {
	if t.IsMint() {
		return false
	}

	msg, err := SigningPayload(t.Input, t.Output)
	if err != nil {
		return false
	}

	return cryptography.Verify(owner, msg, t.Signature)
}

func (t *Tx) Marshal() ([]byte, error) {
	b, err := msgpack.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "mashaling tx")
	}

	return b, nil
}

func (t *Tx) Unmarshal(b []byte) error {
	if err := msgpack.Unmarshal(b, t); err != nil {
		return errors.Wrap(err, "unmarshalling tx")
	}

	if len(t.Output) == 0 {
		return errors.New("tx has no output")
	}

	return nil
}

// Clone returns a deep copy so holders cannot mutate a shared tx
func (t *Tx) Clone() *Tx {
	return &Tx{
		Input:     t.Input,
		Output:    cryptography.Address(cloneBytes(t.Output)),
		Signature: cloneBytes(t.Signature),
	}
}

// cloneBytes keeps nil and empty distinct, they encode differently
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	c := make([]byte, len(b))
	copy(c, b)
	return c
}
