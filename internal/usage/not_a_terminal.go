package usage

// NotATerminal is returned when the picker is started without a TTY.
func NotATerminal() *Error {
	return &Error{
		Kind:    ErrNotATerminal,
		Message: "kp: an interactive terminal is required",
	}
}
