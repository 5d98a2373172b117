package usage

import "fmt"

// InvalidConfig is returned when the config file cannot be parsed.
func InvalidConfig(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidConfig,
		Message: fmt.Sprintf("kp: invalid config file %s: %v", path, err),
	}
}
