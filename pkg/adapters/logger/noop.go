package logger

import "github.com/user/webmrec/pkg/ports"

// NoopLogger discards everything. The CLI uses it for --quiet; tests use it
// wherever log output is irrelevant.
type NoopLogger struct{}

func NewNoop() NoopLogger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, ...interface{}) {}
func (NoopLogger) Info(string, ...interface{})  {}
func (NoopLogger) Warn(string, ...interface{})  {}
func (NoopLogger) Error(string, ...interface{}) {}

func (l NoopLogger) WithComponent(string) ports.Logger {
	return l
}

var (
	_ ports.Logger = NoopLogger{}
	_ ports.Logger = (*ConsoleLogger)(nil)
)
