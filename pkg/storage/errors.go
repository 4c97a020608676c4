package storage

import "github.com/pkg/errors"

var (
	ErrNotFound = errors.New("not found")

	ErrBrokenLink     = errors.New("block does not link to expected parent")
	ErrDuplicateTx    = errors.New("tx appears more than once")
	ErrDuplicateInput = errors.New("input spent more than once")
)
