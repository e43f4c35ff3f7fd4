// Package wire defines the on-the-wire CBOR encoding for the protocol
// messages parties exchange: published public keys and encrypted deals.
// Coinflip itself only needs in-process structs; wire exists for
// embedders that actually ship these values over a network or into
// storage.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/lavode/coinflip/coinflip"
)

// PublicKeyMessage is the CBOR-tagged form of coinflip.PublicKeyTriple,
// broadcast by a party once GenerateKeys has run.
type PublicKeyMessage struct {
	From      int    `cbor:"from"`
	To        int    `cbor:"to"`
	Mod       uint64 `cbor:"mod"`
	Generator uint64 `cbor:"generator"`
	Y         uint64 `cbor:"y"`
}

// DealMessage is the CBOR-tagged form of one encrypted share, sent by a
// dealer to a single recipient.
type DealMessage struct {
	From int    `cbor:"from"`
	To   int    `cbor:"to"`
	C1   uint64 `cbor:"c1"`
	C2   uint64 `cbor:"c2"`
}

// RevealMessage carries a dealer's disclosed secret key for one
// recipient, published during reconstruction so every party can audit
// the dealing.
type RevealMessage struct {
	From int    `cbor:"from"`
	To   int    `cbor:"to"`
	X    uint64 `cbor:"x"`
}

// EncodePublicKey serializes a published public key message to CBOR.
func EncodePublicKey(from, to int, key coinflip.PublicKeyTriple) ([]byte, error) {
	msg := PublicKeyMessage{From: from, To: to, Mod: key.Mod, Generator: key.Generator, Y: key.Y}
	b, err := cbor.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("wire: encoding public key message: %w", err)
	}
	return b, nil
}

// DecodePublicKey parses a CBOR-encoded public key message.
func DecodePublicKey(b []byte) (PublicKeyMessage, error) {
	var msg PublicKeyMessage
	if err := cbor.Unmarshal(b, &msg); err != nil {
		return PublicKeyMessage{}, fmt.Errorf("wire: decoding public key message: %w", err)
	}
	return msg, nil
}

// PublicKeyTriple extracts the coinflip-shaped key from a decoded message.
func (m PublicKeyMessage) PublicKeyTriple() coinflip.PublicKeyTriple {
	return coinflip.PublicKeyTriple{Mod: m.Mod, Generator: m.Generator, Y: m.Y}
}

// EncodeDeal serializes one encrypted deal to CBOR.
func EncodeDeal(from, to int, ctxt coinflip.CiphertextPair) ([]byte, error) {
	msg := DealMessage{From: from, To: to, C1: ctxt.C1, C2: ctxt.C2}
	b, err := cbor.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("wire: encoding deal message: %w", err)
	}
	return b, nil
}

// DecodeDeal parses a CBOR-encoded deal message.
func DecodeDeal(b []byte) (DealMessage, error) {
	var msg DealMessage
	if err := cbor.Unmarshal(b, &msg); err != nil {
		return DealMessage{}, fmt.Errorf("wire: decoding deal message: %w", err)
	}
	return msg, nil
}

// CiphertextPair extracts the coinflip-shaped ciphertext from a decoded
// message.
func (m DealMessage) CiphertextPair() coinflip.CiphertextPair {
	return coinflip.CiphertextPair{C1: m.C1, C2: m.C2}
}

// EncodeReveal serializes a disclosed secret key to CBOR.
func EncodeReveal(from, to int, x uint64) ([]byte, error) {
	msg := RevealMessage{From: from, To: to, X: x}
	b, err := cbor.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("wire: encoding reveal message: %w", err)
	}
	return b, nil
}

// DecodeReveal parses a CBOR-encoded reveal message.
func DecodeReveal(b []byte) (RevealMessage, error) {
	var msg RevealMessage
	if err := cbor.Unmarshal(b, &msg); err != nil {
		return RevealMessage{}, fmt.Errorf("wire: decoding reveal message: %w", err)
	}
	return msg, nil
}
