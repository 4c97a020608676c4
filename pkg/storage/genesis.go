package storage

import "github.com/ipfs/go-cid"

// GenesisBlockID stands in for the parent of the first block
var GenesisBlockID = BlockID(cid.Undef)
