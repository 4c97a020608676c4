package bank

import (
	"github.com/pkg/errors"
	"github.com/tcfw/bankchain/pkg/storage"
)

// Audit replays the whole chain from genesis. It checks every block's
// identity and parent link, that every spend consumed a then-unspent coin
// with its owner's signature, and that the replayed UTXO set matches the
// live one.
func (b *Bank) Audit() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	replay := NewUTXOSet()
	parent := storage.GenesisBlockID

	for height, id := range b.chain {
		blk, err := b.store.GetBlock(id)
		if err != nil {
			return errors.Wrapf(ErrChainCorrupt, "block %d missing: %s", height, err)
		}

		if blk.ID() != id {
			return errors.Wrapf(ErrChainCorrupt, "block %d hash mismatch", height)
		}

		if err := b.validator.IsBlockValid(blk, parent); err != nil {
			return errors.Wrapf(ErrChainCorrupt, "block %d: %s", height, err)
		}

		for _, t := range blk.Txs {
			if t.IsMint() {
				continue
			}

			coin, ok := replay.Get(t.Input)
			if !ok {
				return errors.Wrapf(ErrChainCorrupt, "block %d spends unknown coin %s", height, t.Input)
			}

			if !t.VerifyOwner(coin.Output) {
				return errors.Wrapf(ErrChainCorrupt, "block %d has unsigned spend of %s", height, t.Input)
			}
		}

		replay.Apply(blk.Txs)
		parent = id
	}

	if !replay.SameCoins(b.utxo) {
		return errors.Wrap(ErrChainCorrupt, "utxo set diverged from chain")
	}

	return nil
}
