//go:generate go run github.com/vektra/mockery/v2 --name Chain

package wallet

import (
	"github.com/tcfw/bankchain/pkg/storage"
)

// Chain is the read-only view of a ledger a wallet replays
type Chain interface {
	LatestHash() storage.BlockID
	LookupBlock(storage.BlockID) (*storage.Block, error)
}
