package application

// Keys carries the sub-keys handed to a crypto backend. Cipher keys are
// optional: integrity-only protection configures HMAC keys alone.
type Keys struct {
	CipherEncrypt []byte
	CipherDecrypt []byte
	HMACSend      []byte
	HMACReceive   []byte
}

// Encrypter is the outbound half of a configured crypto backend.
type Encrypter interface {
	// SignBytes computes the integrity tag over data.
	// NOTE: the returned slice is only valid until the next SignBytes call.
	SignBytes(data []byte) ([]byte, error)
}

// Decrypter is the inbound half of a configured crypto backend.
type Decrypter interface {
	// VerifyBytes authenticates a buffer laid out as [tag][signed region]
	// and returns an error when the tag does not match.
	VerifyBytes(buf []byte) error
}

// Backend is the external crypto capability boundary. The protocol code has
// no dependency on any specific cryptographic implementation behind it.
type Backend interface {
	Configure(keys Keys) error
	Encrypter() (Encrypter, error)
	Decrypter() (Decrypter, error)
	DigestLength() int
}
