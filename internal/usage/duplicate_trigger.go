package usage

import "fmt"

// DuplicateTrigger is returned when two actions register the same key.
func DuplicateTrigger(trigger string) *Error {
	return &Error{
		Kind:    ErrDuplicateTrigger,
		Message: fmt.Sprintf("kp: duplicate binding for trigger '%s'", trigger),
	}
}
