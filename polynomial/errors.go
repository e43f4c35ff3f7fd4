package polynomial

import "errors"

// ErrZeroDivisor is returned when a polynomial division is attempted
// against the zero polynomial.
var ErrZeroDivisor = errors.New("polynomial: division by the zero polynomial")

// ErrDecodingFailed is returned by Decode when the surviving points admit
// no degree-<k polynomial consistent with the computed error pattern —
// either the remainder of the final divmod is nonzero, or the quotient's
// degree is not below k.
var ErrDecodingFailed = errors.New("polynomial: reed-solomon decoding failed")
