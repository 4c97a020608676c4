package storage

import (
	"sync"

	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"
	"github.com/tcfw/bankchain/pkg/tx"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ Store = (*MemStore)(nil)
)

type MemStore struct {
	mu sync.RWMutex

	objects  map[cid.Cid][]byte
	blooms   map[BlockID][]byte
	txbIndex map[tx.TxID]BlockID
}

func NewMemStore() *MemStore {
	return &MemStore{
		objects:  make(map[cid.Cid][]byte),
		blooms:   make(map[BlockID][]byte),
		txbIndex: make(map[tx.TxID]BlockID),
	}
}

func (m *MemStore) putObj(obj interface{}) (cid.Cid, error) {
	id, d, err := tx.ContentID(obj)
	if err != nil {
		return cid.Undef, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[id] = d

	return id, nil
}

func (m *MemStore) getObj(id cid.Cid) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.objects[id]
}

func (m *MemStore) PutBlock(b *Block) (BlockID, error) {
	c, err := m.putObj(b)
	if err != nil {
		return GenesisBlockID, errors.Wrap(err, "storing block")
	}

	id := BlockID(c)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.blooms[id] = b.Bloom
	for _, t := range b.Txs {
		m.txbIndex[t.ID()] = id
	}

	return id, nil
}

// GetBlock returns a fresh copy of the stored block
func (m *MemStore) GetBlock(id BlockID) (*Block, error) {
	d := m.getObj(cid.Cid(id))
	if d == nil {
		return nil, ErrNotFound
	}

	b := &Block{}
	if err := msgpack.Unmarshal(d, b); err != nil {
		return nil, errors.Wrap(err, "unmarshalling ")
	}

	m.mu.RLock()
	b.Bloom = m.blooms[id]
	m.mu.RUnlock()

	return b, nil
}

func (m *MemStore) GetTxBlock(id tx.TxID) (BlockID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blkId, ok := m.txbIndex[id]
	if !ok {
		return GenesisBlockID, ErrNotFound
	}

	return blkId, nil
}
