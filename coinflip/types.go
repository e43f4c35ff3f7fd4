package coinflip

// State is a Party's position in its linear lifecycle.
type State int

const (
	StateFresh State = iota
	StateKeyed
	StateShared
	StateReconstructed
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "Fresh"
	case StateKeyed:
		return "Keyed"
	case StateShared:
		return "Shared"
	case StateReconstructed:
		return "Reconstructed"
	default:
		return "Unknown"
	}
}

// Warning is the per-dealer label reconstruct attaches during auditing.
type Warning int

const (
	// WarningNone means the dealer behaved honestly: all points verified
	// and the interpolated polynomial had degree <= t.
	WarningNone Warning = iota
	// WarningAborted means the dealer never revealed its public/private
	// key bundle for this run.
	WarningAborted
	// WarningMalicious means a revealed secret key did not match its
	// published public key, a dealt share failed to decrypt, the dealer's
	// points could not be interpolated, or the dealer's interpolated
	// polynomial exceeded degree t.
	WarningMalicious
)

func (w Warning) String() string {
	switch w {
	case WarningNone:
		return "None"
	case WarningAborted:
		return "Aborted"
	case WarningMalicious:
		return "Malicious"
	default:
		return "Unknown"
	}
}

// PublicKeyTriple is the wire representation of one ElGamal public key:
// the field's reduction polynomial, a generator of its multiplicative
// group, and Y = generator^x.
type PublicKeyTriple struct {
	Mod       uint64
	Generator uint64
	Y         uint64
}

// CiphertextPair is the wire representation of one ElGamal ciphertext.
type CiphertextPair struct {
	C1 uint64
	C2 uint64
}
