package wallet

import "github.com/pkg/errors"

var (
	ErrUnknownLastSeen = errors.New("last seen block is not on chain")
)
