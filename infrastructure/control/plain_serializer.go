package control

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// Wire field sizes. All multi-byte integers are big-endian.
const (
	opcodeLength    = 1
	ackCountLength  = 1
	packetIDLength  = 4
	ackIDLength     = 4
	replayIDLength  = 4
	timestampLength = 4

	// prefixLength covers the header byte and the local session id, the
	// fields an authenticated frame keeps ahead of its auth region.
	prefixLength = opcodeLength + SessionIDLength
)

// Serializer encodes control packets to their wire form and back. Reset
// clears any per-channel state; it is a no-op on the plain serializer.
type Serializer interface {
	Serialize(p *Packet) ([]byte, error)
	Deserialize(buf []byte, start, end int) (*Packet, error)
	Reset()
}

// PlainSerializer implements the unauthenticated control-channel wire
// format: [header][sessionID][ackCount][ackIDs...][ackRemoteSessionID]
// [packetID][payload], where the ack block appears only when ackCount > 0
// and packetID/payload only for non-ack opcodes.
type PlainSerializer struct{}

func NewPlainSerializer() *PlainSerializer {
	return &PlainSerializer{}
}

func (s *PlainSerializer) Serialize(p *Packet) ([]byte, error) {
	if len(p.AckIDs) > 0xFF {
		return nil, fmt.Errorf("%w: %d", ErrAckOverflow, len(p.AckIDs))
	}

	size := prefixLength + ackCountLength
	if len(p.AckIDs) > 0 {
		size += ackIDLength*len(p.AckIDs) + SessionIDLength
	}
	if p.Code != AckV1 {
		size += packetIDLength + len(p.Payload)
	}

	buf := make([]byte, size)
	buf[0] = byte(p.Code)<<3 | p.KeyID&0x07
	off := opcodeLength
	off += copy(buf[off:], p.SessionID[:])

	buf[off] = byte(len(p.AckIDs))
	off += ackCountLength
	for _, id := range p.AckIDs {
		binary.BigEndian.PutUint32(buf[off:], id)
		off += ackIDLength
	}
	if len(p.AckIDs) > 0 {
		off += copy(buf[off:], p.AckRemoteSessionID[:])
	}

	if p.Code != AckV1 {
		binary.BigEndian.PutUint32(buf[off:], p.PacketID)
		off += packetIDLength
		copy(buf[off:], p.Payload)
	}
	return buf, nil
}

// Deserialize parses buf[start:end] field by field, validating that enough
// bytes remain before consuming each field. Every failure identifies the
// field that was truncated or invalid.
func (s *PlainSerializer) Deserialize(buf []byte, start, end int) (*Packet, error) {
	str := cryptobyte.String(buf[start:end])

	var header uint8
	if !str.ReadUint8(&header) {
		return nil, ErrMissingOpcode
	}
	code := Opcode(header >> 3)
	if !code.Valid() {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownOpcode, header>>3)
	}

	p := &Packet{Code: code, KeyID: header & 0x07}
	if !str.CopyBytes(p.SessionID[:]) {
		return nil, ErrMissingSessionID
	}

	var ackCount uint8
	if !str.ReadUint8(&ackCount) {
		return nil, ErrMissingAckCount
	}
	if ackCount > 0 {
		p.AckIDs = make([]uint32, ackCount)
		for i := range p.AckIDs {
			if !str.ReadUint32(&p.AckIDs[i]) {
				return nil, fmt.Errorf("%w: declared %d", ErrShortAckBlock, ackCount)
			}
		}
		if !str.CopyBytes(p.AckRemoteSessionID[:]) {
			return nil, ErrMissingAckRemoteSessionID
		}
	}

	if code == AckV1 {
		if ackCount == 0 {
			return nil, ErrMissingAckBlock
		}
		return p, nil
	}

	if !str.ReadUint32(&p.PacketID) {
		return nil, ErrMissingPacketID
	}
	if !str.Empty() {
		p.Payload = []byte(str)
	}
	return p, nil
}

// Reset is a no-op; the plain serializer holds no per-channel state.
func (s *PlainSerializer) Reset() {}
