package usage

// KubectlNotInstalled is returned when kubectl cannot be found in PATH.
func KubectlNotInstalled() *Error {
	return &Error{
		Kind:    ErrKubectlNotInstalled,
		Message: "kp: kubectl not found in PATH",
	}
}
