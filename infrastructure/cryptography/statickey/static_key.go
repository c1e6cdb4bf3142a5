package statickey

import (
	"fmt"

	"ovpncc/infrastructure/cryptography/mem"
)

// Direction tags which end of the tunnel owns a static key. The two peers
// derive complementary sub-keys from the identical 256-byte blob, so the
// server's encrypt key is the client's decrypt key and vice versa.
type Direction int

const (
	Bidirectional Direction = iota
	Server
	Client
)

func (d Direction) String() string {
	switch d {
	case Bidirectional:
		return "bidirectional"
	case Server:
		return "server"
	case Client:
		return "client"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

const (
	// KeyLength is the size of the shared secret blob.
	KeyLength = 256
	// SubkeyLength is the size of each of the four derived sub-keys.
	SubkeyLength = 64
)

// StaticKey owns a 256-byte shared secret and derives the four directional
// sub-keys on demand. Immutable after construction; wipe with Zeroize when
// the owning session goes away.
type StaticKey struct {
	secret    [KeyLength]byte
	direction Direction
}

// NewStaticKey copies secret into an exclusively-owned buffer. A secret of
// the wrong length is a caller bug, not a runtime condition, and panics:
// validate untrusted input with ParseKeyFile before reaching this point.
func NewStaticKey(secret []byte, direction Direction) *StaticKey {
	if len(secret) != KeyLength {
		panic(fmt.Sprintf("statickey: secret must be %d bytes, got %d", KeyLength, len(secret)))
	}
	k := &StaticKey{direction: direction}
	copy(k.secret[:], secret)
	return k
}

func (k *StaticKey) Direction() Direction {
	return k.direction
}

// subkey returns the i-th 64-byte slice of the secret, i in 0..3.
// The slice aliases the owned buffer; callers must not retain it past
// Zeroize.
func (k *StaticKey) subkey(i int) []byte {
	return k.secret[i*SubkeyLength : (i+1)*SubkeyLength]
}

// CipherEncryptKey requires a directional key: requesting cipher keys on a
// bidirectional key is a programming-contract violation and panics.
func (k *StaticKey) CipherEncryptKey() []byte {
	switch k.direction {
	case Server:
		return k.subkey(0)
	case Client:
		return k.subkey(2)
	default:
		panic("statickey: cipher keys require a directional key")
	}
}

// CipherDecryptKey requires a directional key, see CipherEncryptKey.
func (k *StaticKey) CipherDecryptKey() []byte {
	switch k.direction {
	case Server:
		return k.subkey(2)
	case Client:
		return k.subkey(0)
	default:
		panic("statickey: cipher keys require a directional key")
	}
}

// HMACSendKey is usable regardless of direction; a bidirectional key shares
// one hmac key for both directions.
func (k *StaticKey) HMACSendKey() []byte {
	switch k.direction {
	case Server:
		return k.subkey(1)
	case Client:
		return k.subkey(3)
	default:
		return k.subkey(1)
	}
}

// HMACReceiveKey is usable regardless of direction.
func (k *StaticKey) HMACReceiveKey() []byte {
	switch k.direction {
	case Server:
		return k.subkey(3)
	case Client:
		return k.subkey(1)
	default:
		return k.subkey(1)
	}
}

// Zeroize wipes the owned secret. All previously returned sub-key slices
// become zero as well, since they alias the same buffer.
func (k *StaticKey) Zeroize() {
	mem.ZeroBytes(k.secret[:])
}
