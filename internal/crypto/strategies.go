package crypto

// NewStrategies builds one strategy per supported algorithm, all sharing kdf.
func NewStrategies(kdf KeyDeriver) []CipherStrategy {
	return []CipherStrategy{
		NewAESGCMStrategy(kdf),
		NewBlowfishCBCStrategy(kdf),
		NewChaCha20Poly1305Strategy(kdf),
		NewTwofishCTRStrategy(kdf),
	}
}

// DefaultStrategies builds the strategy list with [DefaultKeyDeriver].
func DefaultStrategies() []CipherStrategy {
	return NewStrategies(DefaultKeyDeriver())
}
