package tlsauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"ovpncc/application"
	"ovpncc/infrastructure/settings"
)

// Backend implements application.Backend with HMAC-only protection, the
// protection tls-auth applies to the control channel. Cipher keys passed to
// Configure are retained for callers that layer a cipher on top, but are
// not used here.
type Backend struct {
	digest  settings.Digest
	newHash func() hash.Hash
	tagLen  int

	signer   *hmacSigner
	verifier *hmacVerifier

	cipherEncryptKey []byte
	cipherDecryptKey []byte
}

func NewBackend(digest settings.Digest) (*Backend, error) {
	var newHash func() hash.Hash
	switch digest {
	case settings.SHA1:
		newHash = sha1.New
	case settings.SHA256:
		newHash = sha256.New
	case settings.SHA512:
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDigest, digest)
	}

	return &Backend{
		digest:  digest,
		newHash: newHash,
		tagLen:  newHash().Size(),
	}, nil
}

// Configure installs the per-channel keys. HMAC keys are mandatory; cipher
// keys are optional.
func (b *Backend) Configure(keys application.Keys) error {
	if len(keys.HMACSend) == 0 || len(keys.HMACReceive) == 0 {
		return ErrMissingHMACKey
	}

	b.cipherEncryptKey = keys.CipherEncrypt
	b.cipherDecryptKey = keys.CipherDecrypt
	b.signer = &hmacSigner{newHash: b.newHash, key: keys.HMACSend, sum: make([]byte, 0, b.tagLen)}
	b.verifier = &hmacVerifier{newHash: b.newHash, key: keys.HMACReceive, tagLen: b.tagLen, sum: make([]byte, 0, b.tagLen)}
	return nil
}

func (b *Backend) Encrypter() (application.Encrypter, error) {
	if b.signer == nil {
		return nil, ErrNotConfigured
	}
	return b.signer, nil
}

func (b *Backend) Decrypter() (application.Decrypter, error) {
	if b.verifier == nil {
		return nil, ErrNotConfigured
	}
	return b.verifier, nil
}

func (b *Backend) DigestLength() int {
	return b.tagLen
}

// hmacSigner - concurrently unsafe application.Encrypter over crypto/hmac.
// sum is reused across calls to avoid allocations, so a returned tag is only
// valid until the next SignBytes call.
type hmacSigner struct {
	newHash func() hash.Hash
	key     []byte
	sum     []byte
}

func (s *hmacSigner) SignBytes(data []byte) ([]byte, error) {
	mac := hmac.New(s.newHash, s.key)
	mac.Write(data)
	s.sum = mac.Sum(s.sum[:0])
	return s.sum, nil
}

// hmacVerifier - concurrently unsafe application.Decrypter over crypto/hmac.
// Expects buf laid out as [tag][signed region].
type hmacVerifier struct {
	newHash func() hash.Hash
	key     []byte
	tagLen  int
	sum     []byte
}

func (v *hmacVerifier) VerifyBytes(buf []byte) error {
	if len(buf) < v.tagLen {
		return ErrShortBuffer
	}

	mac := hmac.New(v.newHash, v.key)
	mac.Write(buf[v.tagLen:])
	v.sum = mac.Sum(v.sum[:0])
	if !hmac.Equal(v.sum, buf[:v.tagLen]) {
		return ErrUnexpectedSignature
	}
	return nil
}
