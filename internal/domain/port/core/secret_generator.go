package core

// SecretGenerator produces payment preimages for hold invoices
type SecretGenerator interface {
	// Preimage returns 32 random bytes
	Preimage() ([]byte, error)
}
