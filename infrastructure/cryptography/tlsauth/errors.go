package tlsauth

import "ovpncc/domain/errdomain"

const Domain = "ovpncc.tlsauth"

const (
	CodeUnexpectedSignature = iota + 1
	CodeShortBuffer
	CodeMissingHMACKey
	CodeUnsupportedDigest
	CodeNotConfigured
)

var (
	ErrUnexpectedSignature = errdomain.New(Domain, CodeUnexpectedSignature,
		"tls-auth: integrity tag does not match")
	ErrShortBuffer = errdomain.New(Domain, CodeShortBuffer,
		"tls-auth: buffer shorter than the integrity tag")
	ErrMissingHMACKey = errdomain.New(Domain, CodeMissingHMACKey,
		"tls-auth: hmac send and receive keys are required")
	ErrUnsupportedDigest = errdomain.New(Domain, CodeUnsupportedDigest,
		"tls-auth: unsupported digest")
	ErrNotConfigured = errdomain.New(Domain, CodeNotConfigured,
		"tls-auth: backend is not configured")
)
