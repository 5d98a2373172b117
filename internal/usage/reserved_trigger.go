package usage

import "fmt"

// ReservedTrigger is returned when an action claims a key the picker
// keeps for itself.
func ReservedTrigger(trigger string) *Error {
	return &Error{
		Kind:    ErrReservedTrigger,
		Message: fmt.Sprintf("kp: trigger '%s' is reserved by the picker", trigger),
	}
}
