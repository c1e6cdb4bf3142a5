package statickey

import "ovpncc/domain/errdomain"

// Domain tags recoverable key-file errors under the process-wide error
// convention. Contract violations (wrong secret length, cipher keys on a
// bidirectional key) panic instead and never carry this tag.
const Domain = "ovpncc.statickey"

const (
	CodeMissingHeader = iota + 1
	CodeMissingFooter
	CodeBadHex
	CodeBadKeyLength
	CodeBadKeyDirection
)

var (
	ErrMissingHeader = errdomain.New(Domain, CodeMissingHeader,
		"static key file: missing begin marker")
	ErrMissingFooter = errdomain.New(Domain, CodeMissingFooter,
		"static key file: missing end marker")
	ErrBadHex = errdomain.New(Domain, CodeBadHex,
		"static key file: body is not valid hex")
	ErrBadKeyLength = errdomain.New(Domain, CodeBadKeyLength,
		"static key file: decoded key has wrong length")
	ErrBadKeyDirection = errdomain.New(Domain, CodeBadKeyDirection,
		"static key: key-direction must be 0 or 1")
)
