package storage

import (
	"github.com/pkg/errors"
	"github.com/tcfw/bankchain/pkg/tx"
)

type Validator interface {
	IsBlockValid(b *Block, parent BlockID) error
}

// LinkValidator checks a block's structure in isolation: its parent link
// and that it neither repeats a tx nor spends one input twice
type LinkValidator struct{}

func NewLinkValidator() *LinkValidator {
	return &LinkValidator{}
}

func (v *LinkValidator) IsBlockValid(b *Block, parent BlockID) error {
	if b.Parent != parent {
		return errors.Wrapf(ErrBrokenLink, "want %s got %s", parent, b.Parent)
	}

	txSeen := map[tx.TxID]struct{}{}
	inputSeen := map[tx.TxID]struct{}{}

	for _, t := range b.Txs {
		id := t.ID()
		if _, ok := txSeen[id]; ok {
			return errors.Wrap(ErrDuplicateTx, id.String())
		}
		txSeen[id] = struct{}{}

		if t.IsMint() {
			continue
		}

		if _, ok := inputSeen[t.Input]; ok {
			return errors.Wrap(ErrDuplicateInput, t.Input.String())
		}
		inputSeen[t.Input] = struct{}{}
	}

	return nil
}
