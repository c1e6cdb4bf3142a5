package statickey

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Standard OpenVPN static key file markers. The body between them is the
// 256-byte secret as 512 hex characters, conventionally wrapped at 32
// characters per line.
const (
	beginMarker = "-----BEGIN OpenVPN Static key V1-----"
	endMarker   = "-----END OpenVPN Static key V1-----"

	hexLineLength = 32
)

// ParseKeyFile decodes a static key file into a StaticKey. Comment lines
// (# or ;) before the begin marker are ignored, as openvpn --genkey emits
// them. All failures are recoverable errdomain errors: the secret length is
// validated here, before NewStaticKey is reached.
func ParseKeyFile(content string, direction Direction) (*StaticKey, error) {
	begin := strings.Index(content, beginMarker)
	if begin < 0 {
		return nil, ErrMissingHeader
	}
	end := strings.Index(content, endMarker)
	if end < 0 || end < begin {
		return nil, ErrMissingFooter
	}

	body := content[begin+len(beginMarker) : end]
	var compact strings.Builder
	for _, line := range strings.Split(body, "\n") {
		compact.WriteString(strings.TrimSpace(line))
	}

	secret, decodeErr := hex.DecodeString(compact.String())
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHex, decodeErr)
	}
	if len(secret) != KeyLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBadKeyLength, len(secret))
	}

	return NewStaticKey(secret, direction), nil
}

// EncodeKeyFile renders the key in the standard file format, 16 lines of
// 32 hex characters between the markers.
func EncodeKeyFile(k *StaticKey) string {
	var b strings.Builder
	b.WriteString(beginMarker)
	b.WriteByte('\n')

	body := hex.EncodeToString(k.secret[:])
	for off := 0; off < len(body); off += hexLineLength {
		b.WriteString(body[off : off+hexLineLength])
		b.WriteByte('\n')
	}

	b.WriteString(endMarker)
	b.WriteByte('\n')
	return b.String()
}

// GenerateStaticKey draws a fresh 256-byte secret from crypto/rand.
func GenerateStaticKey(direction Direction) (*StaticKey, error) {
	secret := make([]byte, KeyLength)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("failed to generate static key: %w", err)
	}
	return NewStaticKey(secret, direction), nil
}

// DirectionFromKeyDirection maps the key-direction configuration value onto
// a Direction: nil means bidirectional, 0 the server end, 1 the client end.
func DirectionFromKeyDirection(keyDirection *int) (Direction, error) {
	if keyDirection == nil {
		return Bidirectional, nil
	}
	switch *keyDirection {
	case 0:
		return Server, nil
	case 1:
		return Client, nil
	default:
		return Bidirectional, fmt.Errorf("%w: got %d", ErrBadKeyDirection, *keyDirection)
	}
}
