package control

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// SessionIDLength is the fixed size of an opaque session identifier.
const SessionIDLength = 8

// SessionID identifies one end of a control-channel session.
type SessionID [SessionIDLength]byte

// NewRandomSessionID draws a session id from crypto/rand.
func NewRandomSessionID() (SessionID, error) {
	var id SessionID
	_, err := io.ReadFull(rand.Reader, id[:])
	return id, err
}

func (s SessionID) String() string {
	return hex.EncodeToString(s[:])
}
