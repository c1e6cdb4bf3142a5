package logging

// Logger is the minimal logging capability consumed by entrypoints.
// Protocol packages never log; observability is the caller's concern.
type Logger interface {
	Printf(format string, v ...any)
}
