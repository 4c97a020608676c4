package bank

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/internal/utils/logging"
	"github.com/tcfw/bankchain/pkg/storage"
	"github.com/tcfw/bankchain/pkg/tx"
)

// Ledger is the public surface of a trusted single-authority ledger.
// Coin creation is not part of it; see Operator.
type Ledger interface {
	Submit(*tx.Tx) bool
	CommitDay(limit ...int) (storage.BlockID, error)

	LatestHash() storage.BlockID
	LookupBlock(storage.BlockID) (*storage.Block, error)

	Mempool() []*tx.Tx
	UTXO() []*tx.Tx
}

var (
	_ Ledger = (*Bank)(nil)
)

// Bank validates txs on admission and commits them blindly. chain, memPool
// and utxo only change together under mu.
type Bank struct {
	mu sync.RWMutex

	logger    *logrus.Entry
	store     storage.Store
	validator storage.Validator

	chain    []storage.BlockID
	chainIdx map[storage.BlockID]int
	memPool  *TxMemPool
	utxo     *UTXOSet

	commitLimit   int
	mintNonceSize int
}

// New creates an empty bank. The returned Operator is the only handle able
// to mint coins and should stay with whoever runs the bank.
func New(opts ...Option) (*Bank, *Operator, error) {
	b := &Bank{
		chainIdx:      make(map[storage.BlockID]int),
		memPool:       NewTxMemPool(),
		utxo:          NewUTXOSet(),
		commitLimit:   DefaultCommitLimit,
		mintNonceSize: DefaultMintNonceSize,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, nil, errors.Wrap(err, "applying option")
		}
	}

	if b.store == nil {
		b.store = storage.NewMemStore()
	}
	if b.validator == nil {
		b.validator = storage.NewLinkValidator()
	}
	if b.logger == nil {
		b.logger = logging.Component("bank")
	}

	return b, &Operator{b}, nil
}

// Submit admits t into the mempool if it spends an unspent, uncontested
// coin and is signed by that coin's owner. Rejections never mutate state.
func (b *Bank) Submit(t *tx.Tx) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.validate(t); err != nil {
		b.logger.WithField("reason", err.Error()).Debug("rejected tx")
		return false
	}

	t = t.Clone()
	if err := b.memPool.AddTx(t); err != nil {
		b.logger.WithError(err).Error("adding tx to mempool")
		return false
	}

	b.logger.WithField("tx", t.ID().String()).Debug("admitted tx")

	return true
}

func (b *Bank) validate(t *tx.Tx) error {
	if t == nil {
		return ErrNilTx
	}

	if t.IsMint() {
		return ErrMintNotAllowed
	}

	if b.memPool.HasInput(t.Input) {
		return errors.Wrap(ErrInputContested, t.Input.String())
	}

	coin, ok := b.utxo.Get(t.Input)
	if !ok {
		return errors.Wrap(ErrUnknownInput, t.Input.String())
	}

	if !t.VerifyOwner(coin.Output) {
		return ErrInvalidSignature
	}

	return nil
}

// CommitDay seals the oldest min(limit, len(mempool)) txs into a new block
// on the chain tip. Without a limit the configured default is used; a
// negative limit commits nothing. An empty mempool yields an empty block.
func (b *Bank) CommitDay(limit ...int) (storage.BlockID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.commitLimit
	if len(limit) > 0 {
		n = limit[0]
	}

	txs := b.memPool.Peek(n)

	block, err := storage.NewBlock(b.latestHash(), txs)
	if err != nil {
		return storage.GenesisBlockID, errors.Wrap(err, "making block")
	}

	id, err := b.store.PutBlock(block)
	if err != nil {
		return storage.GenesisBlockID, errors.Wrap(err, "storing block")
	}

	for range txs {
		b.memPool.GetTx()
	}

	b.chainIdx[id] = len(b.chain)
	b.chain = append(b.chain, id)

	added, spent := b.utxo.Apply(txs)

	b.logger.WithFields(logrus.Fields{
		"height":  len(b.chain),
		"block":   id.String(),
		"txs":     len(txs),
		"added":   added,
		"spent":   spent,
		"pending": b.memPool.Len(),
	}).Info("committed block")

	return id, nil
}

func (b *Bank) LatestHash() storage.BlockID {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.latestHash()
}

func (b *Bank) latestHash() storage.BlockID {
	if len(b.chain) == 0 {
		return storage.GenesisBlockID
	}

	return b.chain[len(b.chain)-1]
}

// LookupBlock returns a committed block. Ids that never came from this
// chain are a caller bug and yield storage.ErrNotFound.
func (b *Bank) LookupBlock(id storage.BlockID) (*storage.Block, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.chainIdx[id]; !ok {
		return nil, errors.Wrapf(storage.ErrNotFound, "block %s", id)
	}

	return b.store.GetBlock(id)
}

// Height is the number of committed blocks
func (b *Bank) Height() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.chain)
}

// TxBlock returns the block that committed the given tx
func (b *Bank) TxBlock(id tx.TxID) (storage.BlockID, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	blkId, err := b.store.GetTxBlock(id)
	if err != nil {
		return storage.GenesisBlockID, errors.Wrapf(err, "tx %s", id)
	}

	if _, ok := b.chainIdx[blkId]; !ok {
		return storage.GenesisBlockID, errors.Wrapf(storage.ErrNotFound, "tx %s", id)
	}

	return blkId, nil
}

// Mempool returns copies of the pending txs, oldest first
func (b *Bank) Mempool() []*tx.Tx {
	b.mu.RLock()
	defer b.mu.RUnlock()

	pending := b.memPool.Peek(b.memPool.Len())
	txs := make([]*tx.Tx, 0, len(pending))
	for _, t := range pending {
		txs = append(txs, t.Clone())
	}

	return txs
}

// UTXO returns copies of the unspent txs in commit order
func (b *Bank) UTXO() []*tx.Tx {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.utxo.Snapshot()
}
