package bank

import (
	"sync"

	"github.com/gammazero/deque"
	"github.com/tcfw/bankchain/pkg/tx"
)

type MemPool interface {
	AddTx(*tx.Tx) error
	GetTx() *tx.Tx
	Peek(int) []*tx.Tx
	HasInput(tx.TxID) bool
	Len() int
}

var (
	_ MemPool = (*TxMemPool)(nil)
)

// TxMemPool is a FIFO of admitted txs. It refuses a second pending spend
// of any input; mints carry no input and are never contested.
type TxMemPool struct {
	queue  deque.Deque[*tx.Tx]
	inputs map[tx.TxID]struct{}
	mu     sync.Mutex
}

func NewTxMemPool() *TxMemPool {
	return &TxMemPool{
		inputs: make(map[tx.TxID]struct{}),
	}
}

func (m *TxMemPool) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.queue.Len()
}

func (m *TxMemPool) HasInput(id tx.TxID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.inputs[id]
	return ok
}

func (m *TxMemPool) AddTx(t *tx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !t.IsMint() {
		if _, ok := m.inputs[t.Input]; ok {
			return ErrInputContested
		}
		m.inputs[t.Input] = struct{}{}
	}

	m.queue.PushBack(t)

	return nil
}

// GetTx removes and returns the oldest tx, or nil when empty
func (m *TxMemPool) GetTx() *tx.Tx {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.queue.Len() == 0 {
		return nil
	}

	t := m.queue.PopFront()
	if !t.IsMint() {
		delete(m.inputs, t.Input)
	}

	return t
}

// Peek returns up to n of the oldest txs without removing them
func (m *TxMemPool) Peek(n int) []*tx.Tx {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > m.queue.Len() {
		n = m.queue.Len()
	}
	if n < 0 {
		n = 0
	}

	txs := make([]*tx.Tx, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, m.queue.At(i))
	}

	return txs
}
