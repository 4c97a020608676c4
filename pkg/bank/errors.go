package bank

import "github.com/pkg/errors"

var (
	ErrNilTx            = errors.New("nil tx")
	ErrMintNotAllowed   = errors.New("coin creation is reserved to the operator")
	ErrInputContested   = errors.New("input already spent by a pending tx")
	ErrUnknownInput     = errors.New("input is not an unspent output")
	ErrInvalidSignature = errors.New("tx not signed by the input's owner")

	ErrChainCorrupt = errors.New("chain corrupt")
)
