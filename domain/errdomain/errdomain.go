package errdomain

import "errors"

// Error is the process-wide failure classification convention: a stable
// domain tag plus a numeric code. Callers test "is this one of my errors"
// with errors.Is against a sentinel, or pull the code with Code, without
// ever inspecting the human-readable message.
type Error struct {
	Domain  string
	Code    int
	Message string
}

// New builds a sentinel error for the given domain and code.
func New(domain string, code int, message string) *Error {
	return &Error{Domain: domain, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on domain and code only, so a wrapped instance still matches
// its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Domain == e.Domain && t.Code == e.Code
}

// Code extracts the numeric code carried by err if err belongs to domain.
func Code(err error, domain string) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Domain == domain {
		return e.Code, true
	}
	return 0, false
}

// In reports whether err belongs to domain.
func In(err error, domain string) bool {
	_, ok := Code(err, domain)
	return ok
}
