package control

import (
	"encoding/binary"
	"fmt"
	"time"

	"ovpncc/application"
)

// AuthSerializer wraps the plain wire format with the tls-auth preamble:
// an integrity tag, a replay id and a timestamp inserted between the packet
// prefix and the remaining fields. It holds no session state beyond the
// replay counter pair. Not safe for concurrent use.
type AuthSerializer struct {
	encrypter application.Encrypter
	decrypter application.Decrypter
	counters  *ReplayCounterPair
	plain     PlainSerializer

	hmacLength     int
	authLength     int
	preambleLength int
}

// NewAuthSerializer builds a serializer from a backend already configured
// with the channel's hmac send/receive keys. Control-channel protection is
// integrity-only; no cipher keys are involved.
func NewAuthSerializer(backend application.Backend) (*AuthSerializer, error) {
	encrypter, err := backend.Encrypter()
	if err != nil {
		return nil, fmt.Errorf("auth serializer: %w", err)
	}
	decrypter, err := backend.Decrypter()
	if err != nil {
		return nil, fmt.Errorf("auth serializer: %w", err)
	}

	hmacLength := backend.DigestLength()
	authLength := hmacLength + replayIDLength + timestampLength
	return &AuthSerializer{
		encrypter:      encrypter,
		decrypter:      decrypter,
		counters:       NewReplayCounterPair(),
		hmacLength:     hmacLength,
		authLength:     authLength,
		preambleLength: prefixLength + authLength,
	}, nil
}

// Serialize stamps the packet with the current outbound replay id and the
// wall clock, then advances the counter.
func (s *AuthSerializer) Serialize(p *Packet) ([]byte, error) {
	return s.SerializeWithTimestamp(p, uint32(time.Now().Unix()))
}

// SerializeWithTimestamp is Serialize with an explicit timestamp, in
// seconds.
func (s *AuthSerializer) SerializeWithTimestamp(p *Packet, timestamp uint32) ([]byte, error) {
	out, err := p.marshalAuthenticated(s.encrypter, s.counters.Outbound(), timestamp)
	if err != nil {
		return nil, err
	}
	s.counters.AdvanceOutbound()
	return out, nil
}

// Deserialize authenticates and decodes a whole datagram. The start/end
// range is ignored: this path always processes the full buffer, since
// callers hand in one datagram at a time. The input is never modified; the
// reordering happens on a copy.
func (s *AuthSerializer) Deserialize(buf []byte, _, _ int) (*Packet, error) {
	if len(buf) < s.preambleLength {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrMissingAuthBlock, len(buf), s.preambleLength)
	}

	work := make([]byte, len(buf))
	copy(work, buf)

	// [prefix][tag+replayID+timestamp][rest] -> [tag+replayID+timestamp][prefix][rest],
	// which puts the tag first and the signed region right behind it.
	swapRegions(work, prefixLength, s.authLength)

	if err := s.decrypter.VerifyBytes(work); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	s.counters.ObserveInbound(binary.BigEndian.Uint32(work[s.hmacLength : s.hmacLength+replayIDLength]))
	return s.plain.Deserialize(work, s.authLength, len(work))
}

// Reset restores the replay counters; called when the owning channel
// restarts.
func (s *AuthSerializer) Reset() {
	s.counters.Reset()
}
