package storage

import "github.com/tcfw/bankchain/pkg/tx"

// Store holds committed blocks by content address
type Store interface {
	PutBlock(*Block) (BlockID, error)
	GetBlock(BlockID) (*Block, error)

	// GetTxBlock returns the block that committed the tx
	GetTxBlock(tx.TxID) (BlockID, error)
}
