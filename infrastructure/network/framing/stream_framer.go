package framing

import (
	"encoding/binary"
	"fmt"

	"ovpncc/domain/errdomain"
)

// OpenVPN stream transports carry each datagram behind a 2-byte big-endian
// length word; the words define the packetization of the byte stream.
const (
	lengthPrefixSize = 2
	// MaxPacketSize is the largest packet a 2-byte length word can frame.
	MaxPacketSize = 0xFFFF
)

const Domain = "ovpncc.framing"

const (
	CodePacketTooLarge = iota + 1
)

var ErrPacketTooLarge = errdomain.New(Domain, CodePacketTooLarge,
	"stream framing: packet exceeds the 2-byte length prefix")

// StreamFramer packetizes control-channel datagrams over a stream
// transport.
type StreamFramer interface {
	Frame(packet []byte) ([]byte, error)
	Next(stream []byte) (packet, rest []byte, ok bool)
}

type DefaultStreamFramer struct{}

func NewDefaultStreamFramer() StreamFramer {
	return &DefaultStreamFramer{}
}

// Frame prepends the length word to packet.
func (f *DefaultStreamFramer) Frame(packet []byte) ([]byte, error) {
	if len(packet) > MaxPacketSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, len(packet))
	}
	framed := make([]byte, lengthPrefixSize+len(packet))
	binary.BigEndian.PutUint16(framed[:lengthPrefixSize], uint16(len(packet)))
	copy(framed[lengthPrefixSize:], packet)
	return framed, nil
}

// Next extracts the first complete packet from stream. When the stream does
// not yet hold a whole frame, ok is false and rest is the untouched stream:
// the caller reads more bytes and retries.
func (f *DefaultStreamFramer) Next(stream []byte) (packet, rest []byte, ok bool) {
	if len(stream) < lengthPrefixSize {
		return nil, stream, false
	}
	size := int(binary.BigEndian.Uint16(stream[:lengthPrefixSize]))
	if len(stream) < lengthPrefixSize+size {
		return nil, stream, false
	}
	return stream[lengthPrefixSize : lengthPrefixSize+size], stream[lengthPrefixSize+size:], true
}
