package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrDuplicateTrigger
	ErrReservedTrigger
	ErrKubectlNotInstalled
	ErrNotATerminal
	ErrInvalidConfig
	ErrInvalidArgument
)

// Exit codes:
//
//	Exit 1: Environment/configuration errors
//	  - Unknown errors
//	  - Duplicate trigger registration
//	  - Reserved trigger registration
//	  - kubectl not installed
//	  - Not running in a terminal
//	  - Invalid config file
//
//	Exit 2: User input errors
//	  - Invalid argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:             1,
	ErrDuplicateTrigger:    1,
	ErrReservedTrigger:     1,
	ErrKubectlNotInstalled: 1,
	ErrNotATerminal:        1,
	ErrInvalidConfig:       1,
	ErrInvalidArgument:     2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind when zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is
// derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
