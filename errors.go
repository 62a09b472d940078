//////////////////////////////////////////////////////
// errors.go
// programmer-error reporting for component construction
//////////////////////////////////////////////////////

package threesus

import "github.com/pkg/errors"

// ConfigError reports an invalid SearchConfig or BotConfig. It is always a
// programmer error, distinct from the "no legal move" operational outcome,
// which is never an error.
type ConfigError struct {
	cause error
}

func (e *ConfigError) Error() string {
	return "threesus: invalid configuration: " + e.cause.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.cause
}

func newConfigError(msg string) *ConfigError {
	return &ConfigError{cause: errors.New(msg)}
}
