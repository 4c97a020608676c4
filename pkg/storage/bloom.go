package storage

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/tcfw/bankchain/pkg/tx"
)

const (
	falsePositive = 0.01
)

// MakeBloom indexes every output address and spent input of txs
func MakeBloom(txs []*tx.Tx) ([]byte, error) {
	n := uint(2 * len(txs))
	if n == 0 {
		n = 1
	}

	b := bloom.NewWithEstimates(n, falsePositive)

	for _, t := range txs {
		b.Add(t.Output)
		if !t.IsMint() {
			b.Add(t.Input.Bytes())
		}
	}

	return b.GobEncode()
}

func BloomContains(b []byte, key []byte) (bool, error) {
	bloom := bloom.NewWithEstimates(1, falsePositive)

	if err := bloom.GobDecode(b); err != nil {
		return false, err
	}

	return bloom.Test(key), nil
}
