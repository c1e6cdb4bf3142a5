package control

import "ovpncc/domain/errdomain"

// Domain tags every recoverable serializer failure. Malformed-packet codes
// identify the field that was truncated or invalid; callers drop the packet.
const Domain = "ovpncc.control"

const (
	CodeMissingOpcode = iota + 1
	CodeUnknownOpcode
	CodeMissingSessionID
	CodeMissingAckCount
	CodeShortAckBlock
	CodeMissingAckRemoteSessionID
	CodeMissingPacketID
	CodeMissingAckBlock
	CodeAckOverflow
	CodeMissingAuthBlock
	CodeAuthFailed
)

var (
	ErrMissingOpcode = errdomain.New(Domain, CodeMissingOpcode,
		"malformed control packet: missing opcode byte")
	ErrUnknownOpcode = errdomain.New(Domain, CodeUnknownOpcode,
		"malformed control packet: unrecognized opcode")
	ErrMissingSessionID = errdomain.New(Domain, CodeMissingSessionID,
		"malformed control packet: missing session id")
	ErrMissingAckCount = errdomain.New(Domain, CodeMissingAckCount,
		"malformed control packet: missing ack count byte")
	ErrShortAckBlock = errdomain.New(Domain, CodeShortAckBlock,
		"malformed control packet: insufficient bytes for declared ack ids")
	ErrMissingAckRemoteSessionID = errdomain.New(Domain, CodeMissingAckRemoteSessionID,
		"malformed control packet: missing remote session id after ack ids")
	ErrMissingPacketID = errdomain.New(Domain, CodeMissingPacketID,
		"malformed control packet: missing packet id")
	ErrMissingAckBlock = errdomain.New(Domain, CodeMissingAckBlock,
		"malformed control packet: ack packet carries no ack ids")
	ErrAckOverflow = errdomain.New(Domain, CodeAckOverflow,
		"control packet: ack id count exceeds one byte")
	ErrMissingAuthBlock = errdomain.New(Domain, CodeMissingAuthBlock,
		"authentication: buffer shorter than the preamble")
	ErrAuthFailed = errdomain.New(Domain, CodeAuthFailed,
		"authentication: integrity verification failed")
)
