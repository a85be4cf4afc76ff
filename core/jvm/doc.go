// Package jvm defines the boundary to the attached Java VM: opaque
// reference and member handle types, the [Env] lookup interface, and the
// pending-exception error type.
//
// The package deliberately stays on the resolution side of JNI. It knows how
// to find a method or field and how to compare object identity; invoking a
// resolved member and marshaling arguments is the job of the call layer
// built on top of the typed [Method] and [Field] handles.
//
// # Env
//
// [Env] mirrors the JNI primitives the resolver consumes: FindMethod,
// FindField, IsSameObject and NewWeakGlobalRef. A real implementation wraps
// the JNIEnv of the calling thread; [InMemoryEnv] is a VM stand-in for
// tests and development that counts lookups and supports simulated
// collection of its objects.
//
// # Pending exceptions
//
// A failed lookup leaves an exception pending in the VM. Env
// implementations surface it as a [*Throwable] error; the caller must
// either propagate it back into the VM or clear it, per JNI convention.
//
// # Lookup deduplication
//
// [NewDedupEnv] wraps an Env so identical concurrent lookups are coalesced
// into a single VM call. The resolver does not require this — redundant
// lookups are benign — but it helps on hosts where lookups are expensive.
package jvm
