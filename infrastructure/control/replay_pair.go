package control

// replayCounterReset is the value both counters restart from; the first
// authenticated packet of a channel carries replay id 1.
const replayCounterReset = 1

// ReplayCounterPair tracks the outbound and inbound replay ids of one
// control-channel instance. Outbound advances on every authenticated
// serialize; inbound records the last id seen on the wire but is not
// validated here. Not safe for concurrent use: a channel is driven by a
// single control-plane goroutine.
type ReplayCounterPair struct {
	outbound uint32
	inbound  uint32
}

func NewReplayCounterPair() *ReplayCounterPair {
	return &ReplayCounterPair{
		outbound: replayCounterReset,
		inbound:  replayCounterReset,
	}
}

// Outbound returns the replay id to stamp on the next outgoing packet.
func (r *ReplayCounterPair) Outbound() uint32 {
	return r.outbound
}

// AdvanceOutbound consumes the current outbound id and returns it.
func (r *ReplayCounterPair) AdvanceOutbound() uint32 {
	id := r.outbound
	r.outbound++
	return id
}

// Inbound returns the last observed inbound replay id.
func (r *ReplayCounterPair) Inbound() uint32 {
	return r.inbound
}

// ObserveInbound records the replay id of a verified inbound packet.
func (r *ReplayCounterPair) ObserveInbound(id uint32) {
	r.inbound = id
}

// Reset restores both counters; called when the owning channel is torn
// down and re-established.
func (r *ReplayCounterPair) Reset() {
	r.outbound = replayCounterReset
	r.inbound = replayCounterReset
}
