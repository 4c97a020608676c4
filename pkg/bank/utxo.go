package bank

import (
	"sort"

	"github.com/tcfw/bankchain/pkg/tx"
)

type utxoEntry struct {
	tx  *tx.Tx
	seq uint64
}

// UTXOSet holds the txs whose output is unspent, keyed by tx id.
// Entries remember commit order so snapshots are stable.
type UTXOSet struct {
	coins map[tx.TxID]utxoEntry
	seq   uint64
}

func NewUTXOSet() *UTXOSet {
	return &UTXOSet{
		coins: make(map[tx.TxID]utxoEntry),
	}
}

func (s *UTXOSet) Get(id tx.TxID) (*tx.Tx, bool) {
	e, ok := s.coins[id]
	if !ok {
		return nil, false
	}

	return e.tx, true
}

func (s *UTXOSet) Len() int {
	return len(s.coins)
}

// Apply folds a committed block: every tx becomes unspent, then every
// entry referenced as an input is removed
func (s *UTXOSet) Apply(txs []*tx.Tx) (added int, spent int) {
	for _, t := range txs {
		id := t.ID()
		if _, ok := s.coins[id]; ok {
			continue
		}
		s.seq++
		s.coins[id] = utxoEntry{tx: t, seq: s.seq}
		added++
	}

	for _, t := range txs {
		if t.IsMint() {
			continue
		}
		if _, ok := s.coins[t.Input]; ok {
			delete(s.coins, t.Input)
			spent++
		}
	}

	return added, spent
}

// Snapshot returns copies of the unspent txs in commit order
func (s *UTXOSet) Snapshot() []*tx.Tx {
	entries := make([]utxoEntry, 0, len(s.coins))
	for _, e := range s.coins {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	txs := make([]*tx.Tx, 0, len(entries))
	for _, e := range entries {
		txs = append(txs, e.tx.Clone())
	}

	return txs
}

// SameCoins reports whether both sets hold exactly the same tx ids
func (s *UTXOSet) SameCoins(o *UTXOSet) bool {
	if len(s.coins) != len(o.coins) {
		return false
	}

	for id := range s.coins {
		if _, ok := o.coins[id]; !ok {
			return false
		}
	}

	return true
}
