package elgamal

import "errors"

// ErrNoSecretKey is returned by Decrypt when the PrivateKey carries no
// exponent to decrypt with.
var ErrNoSecretKey = errors.New("elgamal: no secret key available for decryption")

// ErrZeroPlaintext is returned by Encrypt for a zero-valued plaintext.
// Zero is indistinguishable from an all-zero ciphertext under this
// construction and is outside its security promise; callers are expected
// to never produce a zero share (shamir shares of a random polynomial at
// a nonzero point are zero only with negligible probability).
var ErrZeroPlaintext = errors.New("elgamal: plaintext must be nonzero")
