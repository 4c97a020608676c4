package wallet

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/internal/utils/logging"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/storage"
	"github.com/tcfw/bankchain/pkg/tx"
)

// Wallet tracks the coins addressed to a single key. Its view is only as
// fresh as the last Refresh; coins offered in unconfirmed spends are frozen
// until UnfreezeAll.
type Wallet struct {
	mu sync.Mutex

	logger *logrus.Entry
	key    cryptography.PrivateKey

	unspent  []coin
	frozen   map[tx.TxID]struct{}
	lastSeen storage.BlockID
}

// coin is an unspent tx with its id computed once on arrival
type coin struct {
	id tx.TxID
	tx *tx.Tx
}

// Generate creates a wallet with a fresh ed25519 key unless an option
// provides another.
func Generate(opts ...Option) (*Wallet, error) {
	w := &Wallet{
		frozen:   make(map[tx.TxID]struct{}),
		lastSeen: storage.GenesisBlockID,
	}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	if w.key == nil {
		k, err := cryptography.GenerateKey(cryptography.KeyTypeEd25519)
		if err != nil {
			return nil, errors.Wrap(err, "generating key")
		}
		w.key = k
	}

	if w.logger == nil {
		w.logger = logging.Component("wallet")
	}
	w.logger = w.logger.WithField("address", w.key.Address().String())

	return w, nil
}

// Refresh folds every block committed since the last refresh into the
// wallet, oldest first. If the last seen block is no longer reachable from
// the chain tip, ErrUnknownLastSeen is returned and nothing changes.
func (w *Wallet) Refresh(chain Chain) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	tip := chain.LatestHash()

	var newBlocks []*storage.Block
	for id := tip; id != w.lastSeen; {
		if id == storage.GenesisBlockID {
			return errors.Wrap(ErrUnknownLastSeen, w.lastSeen.String())
		}

		blk, err := chain.LookupBlock(id)
		if err != nil {
			return errors.Wrapf(err, "looking up block %s", id)
		}

		newBlocks = append(newBlocks, blk)
		id = blk.PreviousHash()
	}

	addr := w.key.Address()

	skipped := 0
	for i := len(newBlocks) - 1; i >= 0; i-- {
		if !newBlocks[i].MayTouch(addr, w.coinIDs()) {
			skipped++
			continue
		}

		w.fold(addr, newBlocks[i])
	}

	w.lastSeen = tip

	w.logger.WithFields(logrus.Fields{
		"blocks":  len(newBlocks),
		"skipped": skipped,
		"balance": len(w.unspent),
		"tip":     tip.String(),
	}).Debug("refreshed wallet")

	return nil
}

func (w *Wallet) coinIDs() []tx.TxID {
	ids := make([]tx.TxID, 0, len(w.unspent))
	for _, c := range w.unspent {
		ids = append(ids, c.id)
	}

	return ids
}

func (w *Wallet) fold(addr cryptography.Address, blk *storage.Block) {
	for _, t := range blk.Transactions() {
		if t.Output.Equal(addr) {
			w.unspent = append(w.unspent, coin{id: t.ID(), tx: t.Clone()})
		}
	}

	spent := make(map[tx.TxID]struct{})
	for _, t := range blk.Transactions() {
		if !t.IsMint() {
			spent[t.Input] = struct{}{}
		}
	}

	if len(spent) == 0 {
		return
	}

	kept := w.unspent[:0]
	for _, c := range w.unspent {
		if _, ok := spent[c.id]; ok {
			delete(w.frozen, c.id)
			continue
		}
		kept = append(kept, c)
	}
	w.unspent = kept
}

// CreateTransaction signs a spend of the first unspent, unfrozen coin to
// target and freezes that coin. It returns nil when no coin is available.
// The wallet balance is unaffected until the spend is committed and seen
// by Refresh.
func (w *Wallet) CreateTransaction(target cryptography.Address) (*tx.Tx, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, c := range w.unspent {
		if _, ok := w.frozen[c.id]; ok {
			continue
		}

		t, err := tx.Sign(w.key, c.id, target)
		if err != nil {
			return nil, errors.Wrap(err, "signing spend")
		}

		w.frozen[c.id] = struct{}{}

		return t, nil
	}

	return nil, nil
}

// UnfreezeAll makes every frozen coin spendable again. Coins whose spend
// was committed are already gone after the next Refresh.
func (w *Wallet) UnfreezeAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.frozen = make(map[tx.TxID]struct{})
}

// Balance is the number of coins seen at the last Refresh, frozen included
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.unspent)
}

// Coins returns copies of the unspent coins in arrival order
func (w *Wallet) Coins() []*tx.Tx {
	w.mu.Lock()
	defer w.mu.Unlock()

	txs := make([]*tx.Tx, 0, len(w.unspent))
	for _, c := range w.unspent {
		txs = append(txs, c.tx.Clone())
	}

	return txs
}

func (w *Wallet) Frozen() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.frozen)
}

func (w *Wallet) LastSeen() storage.BlockID {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.lastSeen
}

func (w *Wallet) Address() cryptography.Address {
	return w.key.Address().Clone()
}
