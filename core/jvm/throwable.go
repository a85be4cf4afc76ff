package jvm

// Throwable is an exception left pending in the VM by a failed lookup. It
// travels as an ordinary Go error; the receiver owns propagation and must
// either rethrow it into the VM or clear it, per JNI convention.
type Throwable struct {
	// Ref is the pending exception object, when the Env captured one.
	Ref Ref
	// Class is the exception class binary name,
	// e.g. "java.lang.NoSuchMethodError".
	Class string
	// Message is the detail message, if any.
	Message string
}

func (t *Throwable) Error() string {
	if t.Message == "" {
		return t.Class
	}
	return t.Class + ": " + t.Message
}
