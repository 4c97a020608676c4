package storage

import (
	"testing"

	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/tx"
)

// strangers is how many unrelated addresses bloom tests look up. With a 1%
// false positive rate a quarter of them hitting does not happen in practice.
const strangers = 64

func newAddr(t *testing.T) (cryptography.PrivateKey, cryptography.Address) {
	sk, err := cryptography.NewEd25519PrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	return sk, sk.Address()
}

func mint(addr cryptography.Address, nonce byte) *tx.Tx {
	return tx.New(tx.TxID{}, addr, []byte{nonce})
}
