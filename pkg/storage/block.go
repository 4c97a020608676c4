package storage

import (
	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/tx"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = BlockID{}
	_ msgpack.CustomDecoder = (*BlockID)(nil)
)

type BlockID cid.Cid

func (id BlockID) Defined() bool {
	return cid.Cid(id).Defined()
}

func (id BlockID) String() string {
	if !id.Defined() {
		return "genesis"
	}

	return cid.Cid(id).String()
}

func (id BlockID) EncodeMsgpack(enc *msgpack.Encoder) error {
	return tx.EncodeCid(enc, cid.Cid(id))
}

func (id *BlockID) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := tx.DecodeCid(dec)
	if err != nil {
		return err
	}

	*id = BlockID(c)
	return nil
}

// Block is an ordered batch of committed transactions linked to its parent.
// Bloom is derived from Txs and is not part of the block identity.
type Block struct {
	Parent BlockID  `msgpack:"p"`
	Txs    []*tx.Tx `msgpack:"x"`

	Bloom []byte `msgpack:"-"`
}

func NewBlock(parent BlockID, txs []*tx.Tx) (*Block, error) {
	b := &Block{
		Parent: parent,
		Txs:    txs,
	}

	var err error
	b.Bloom, err = MakeBloom(txs)
	if err != nil {
		return nil, errors.Wrap(err, "creating block bloom filter")
	}

	return b, nil
}

func (b *Block) ID() BlockID {
	c, _, err := tx.ContentID(b)
	if err != nil {
		panic(errors.Wrap(err, "hashing block"))
	}

	return BlockID(c)
}

func (b *Block) Transactions() []*tx.Tx {
	return b.Txs
}

func (b *Block) PreviousHash() BlockID {
	return b.Parent
}

// MayTouch reports whether the block could hold an output to addr or a
// spend of any of the given coins. False positives are possible, false
// negatives are not. Blocks without a bloom are always considered touched.
func (b *Block) MayTouch(addr cryptography.Address, coins []tx.TxID) bool {
	if len(b.Bloom) == 0 {
		return true
	}

	if ok, err := BloomContains(b.Bloom, addr); err != nil || ok {
		return true
	}

	for _, c := range coins {
		if ok, err := BloomContains(b.Bloom, c.Bytes()); err != nil || ok {
			return true
		}
	}

	return false
}
