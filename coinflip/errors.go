package coinflip

import "errors"

// ErrInvalidState is returned when a Party method is called out of its
// required lifecycle order (Fresh -> Keyed -> Shared -> Reconstructed).
var ErrInvalidState = errors.New("coinflip: method called out of order")

// ErrDimensionMismatch is returned when a caller-supplied slice (shared
// public keys, the encrypted-share matrix, revealed secret keys) does not
// have the expected length. This is a caller contract violation, not a
// peer-misbehavior signal — it is not recorded in warnings.
var ErrDimensionMismatch = errors.New("coinflip: dimension mismatch in protocol input")
