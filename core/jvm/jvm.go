package jvm

// Ref is an opaque local or global reference to an object living in the
// attached VM. The zero Ref is the null reference.
type Ref uintptr

// IsNull reports whether r is the null reference.
func (r Ref) IsNull() bool { return r == 0 }

// Weak is a non-owning weak global reference. It never keeps its referent
// alive; whether it still points at a given live object is answered by
// [Env.IsSameObject], which returns false once the referent is collected.
type Weak Ref

// Ref converts the weak reference into a plain Ref for identity checks.
func (w Weak) Ref() Ref { return Ref(w) }

// RawMember is the pointer-sized member handle returned by the VM's lookup
// primitives (jmethodID / jfieldID). It remains valid as long as the
// declaring class is loaded.
type RawMember uintptr

// Env is the per-thread attachment to the VM, reduced to the primitives the
// resolver consumes. Implementations wrapping a real JNIEnv are bound to
// one thread; callers pass the Env of the current thread on every
// operation. InMemoryEnv is additionally safe for concurrent use.
type Env interface {
	// FindMethod resolves a method of class by name and method descriptor.
	// A failed lookup returns a *Throwable carrying the VM's pending
	// exception (e.g. java.lang.NoSuchMethodError).
	FindMethod(class Ref, name, descriptor string) (RawMember, error)

	// FindField resolves a field of class by name and type descriptor.
	// Failures behave like FindMethod (java.lang.NoSuchFieldError).
	FindField(class Ref, name, descriptor string) (RawMember, error)

	// NewWeakGlobalRef produces a non-owning weak reference to ref.
	// It never fails.
	NewWeakGlobalRef(ref Ref) Weak

	// IsSameObject reports whether a and b currently refer to the same live
	// object. It is false, never an error, when either referent has been
	// collected.
	IsSameObject(a, b Ref) bool
}
