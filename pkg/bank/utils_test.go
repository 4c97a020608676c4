package bank

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/storage"
	"github.com/tcfw/bankchain/pkg/tx"
)

func newKey(t *testing.T) cryptography.PrivateKey {
	sk, err := cryptography.NewEd25519PrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	return sk
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return logrus.NewEntry(l)
}

func newTestBank(t *testing.T, opts ...Option) (*Bank, *Operator) {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)

	b, op, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}

	return b, op
}

// fundedCoin mints a coin to owner and commits it
func fundedCoin(t *testing.T, b *Bank, op *Operator, owner cryptography.Address) *tx.Tx {
	coin, err := op.Mint(owner)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.CommitDay(); err != nil {
		t.Fatal(err)
	}

	return coin
}

func spend(t *testing.T, owner cryptography.PrivateKey, coin tx.TxID, to cryptography.Address) *tx.Tx {
	s, err := tx.Sign(owner, coin, to)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

func ids(txs []*tx.Tx) map[tx.TxID]struct{} {
	m := make(map[tx.TxID]struct{}, len(txs))
	for _, x := range txs {
		m[x.ID()] = struct{}{}
	}
	return m
}

// expectedUTXO derives the unspent set straight from its definition: every
// tx on the chain whose id is never used as an input on the chain
func expectedUTXO(t *testing.T, b *Bank) map[tx.TxID]struct{} {
	var all []*tx.Tx
	spent := map[tx.TxID]struct{}{}

	for id := b.LatestHash(); id != storage.GenesisBlockID; {
		blk, err := b.LookupBlock(id)
		if err != nil {
			t.Fatal(err)
		}

		for _, x := range blk.Transactions() {
			all = append(all, x)
			if !x.IsMint() {
				spent[x.Input] = struct{}{}
			}
		}

		id = blk.PreviousHash()
	}

	unspent := map[tx.TxID]struct{}{}
	for _, x := range all {
		if _, ok := spent[x.ID()]; !ok {
			unspent[x.ID()] = struct{}{}
		}
	}

	return unspent
}
