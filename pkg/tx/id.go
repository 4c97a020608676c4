package tx

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = TxID{}
	_ msgpack.CustomDecoder = (*TxID)(nil)
)

// TxID identifies a transaction, and therefore the coin it outputs
type TxID cid.Cid

func (id TxID) Defined() bool {
	return cid.Cid(id).Defined()
}

func (id TxID) String() string {
	if !id.Defined() {
		return ""
	}

	return cid.Cid(id).String()
}

func (id TxID) Bytes() []byte {
	if !id.Defined() {
		return nil
	}

	return cid.Cid(id).Bytes()
}

func (id TxID) EncodeMsgpack(enc *msgpack.Encoder) error {
	return EncodeCid(enc, cid.Cid(id))
}

func (id *TxID) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := DecodeCid(dec)
	if err != nil {
		return err
	}

	*id = TxID(c)
	return nil
}

// ContentID msgpack encodes obj and addresses it by the SHA3-256 multihash
// of the encoding
func ContentID(obj interface{}) (cid.Cid, []byte, error) {
	d, err := msgpack.Marshal(obj)
	if err != nil {
		return cid.Undef, nil, errors.Wrap(err, "marshalling object")
	}

	h, err := multihash.Sum(d, multihash.SHA3_256, multihash.DefaultLengths[multihash.SHA3_256])
	if err != nil {
		return cid.Undef, nil, errors.Wrap(err, "hashing object")
	}

	return cid.NewCidV1(cid.Raw, h), d, nil
}

// EncodeCid writes c as raw bytes. cid.Undef is written as empty bytes
func EncodeCid(enc *msgpack.Encoder, c cid.Cid) error {
	if !c.Defined() {
		return enc.EncodeBytes([]byte{})
	}

	return enc.EncodeBytes(c.Bytes())
}

func DecodeCid(dec *msgpack.Decoder) (cid.Cid, error) {
	b, err := dec.DecodeBytes()
	if err != nil {
		return cid.Undef, err
	}

	if len(b) == 0 {
		return cid.Undef, nil
	}

	c, err := cid.Cast(b)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "parsing cid")
	}

	return c, nil
}
