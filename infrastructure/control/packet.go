package control

import (
	"encoding/binary"

	"ovpncc/application"
)

// Packet is one control-channel message. Shape invariant: an AckV1 packet
// has no PacketID/Payload and always carries AckIDs plus
// AckRemoteSessionID; any other packet has a PacketID and may piggyback an
// ack block next to its payload. AckRemoteSessionID is meaningful only when
// AckIDs is non-empty.
type Packet struct {
	Code               Opcode
	KeyID              byte
	SessionID          SessionID
	PacketID           uint32
	Payload            []byte
	AckIDs             []uint32
	AckRemoteSessionID SessionID
}

// NewPacket builds a non-ack packet. KeyID is a 3-bit key slot; higher bits
// are dropped on the wire.
func NewPacket(code Opcode, keyID byte, sessionID SessionID, packetID uint32, payload []byte) *Packet {
	return &Packet{
		Code:      code,
		KeyID:     keyID,
		SessionID: sessionID,
		PacketID:  packetID,
		Payload:   payload,
	}
}

// NewAckPacket builds a standalone acknowledgment.
func NewAckPacket(keyID byte, sessionID SessionID, ackIDs []uint32, remoteSessionID SessionID) *Packet {
	return &Packet{
		Code:               AckV1,
		KeyID:              keyID,
		SessionID:          sessionID,
		AckIDs:             ackIDs,
		AckRemoteSessionID: remoteSessionID,
	}
}

// WithAcks piggybacks an ack block onto a data-bearing packet.
func (p *Packet) WithAcks(ackIDs []uint32, remoteSessionID SessionID) *Packet {
	p.AckIDs = ackIDs
	p.AckRemoteSessionID = remoteSessionID
	return p
}

// IsAck reports whether p is a standalone acknowledgment.
func (p *Packet) IsAck() bool {
	return p.Code == AckV1
}

// marshalAuthenticated produces the authenticated wire form
// [prefix][tag][replayID][timestamp][rest], where the tag is computed over
// [replayID][timestamp][prefix][rest]. The tag placement ahead of the
// replay id, after the plain prefix, is what peers expect bit-exact.
func (p *Packet) marshalAuthenticated(encrypter application.Encrypter, replayID, timestamp uint32) ([]byte, error) {
	var plainSerializer PlainSerializer
	plain, err := plainSerializer.Serialize(p)
	if err != nil {
		return nil, err
	}

	signed := make([]byte, replayIDLength+timestampLength+len(plain))
	binary.BigEndian.PutUint32(signed[0:replayIDLength], replayID)
	binary.BigEndian.PutUint32(signed[replayIDLength:replayIDLength+timestampLength], timestamp)
	copy(signed[replayIDLength+timestampLength:], plain)

	tag, err := encrypter.SignBytes(signed)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(plain)+len(tag)+replayIDLength+timestampLength)
	off := copy(out, plain[:prefixLength])
	off += copy(out[off:], tag)
	off += copy(out[off:], signed[:replayIDLength+timestampLength])
	copy(out[off:], plain[prefixLength:])
	return out, nil
}
