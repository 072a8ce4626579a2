//go:generate mockgen -package=mocks -destination=../../mocks/mock_logger.go github.com/solidrace/solidrace/pkg/logging Logger

package logging

// Logger is the structured logger used across the simulator.
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}
