// Package signature renders JVM type and method descriptors.
//
// The grammar is the JNI one: single-letter codes for primitives,
// L<binary/name>; for object types, a [ prefix per array dimension. Method
// descriptors concatenate the argument descriptors in declaration order,
// wrap them in parentheses and append the return descriptor:
//
//	signature.Method([]signature.Descriptor{signature.Int, signature.Float}, signature.Void)
//	// "(IF)V"
//
// Rendering is pure and deterministic; the resolver calls it once per cache
// miss, so no caching happens here.
package signature

import "strings"

// Descriptor is a JVM type descriptor in wire form, e.g. "I" or
// "Ljava/lang/String;".
type Descriptor string

// Primitive descriptors.
const (
	Boolean Descriptor = "Z"
	Byte    Descriptor = "B"
	Char    Descriptor = "C"
	Short   Descriptor = "S"
	Int     Descriptor = "I"
	Long    Descriptor = "J"
	Float   Descriptor = "F"
	Double  Descriptor = "D"
	Void    Descriptor = "V"
)

// String is the descriptor of java.lang.String, the one object type with
// first-class marshaling support.
var String = Object("java/lang/String")

// Object returns the descriptor for a class given its binary name. Dotted
// names are normalized, so Object("java.lang.String") and
// Object("java/lang/String") render the same descriptor.
func Object(name string) Descriptor {
	return Descriptor("L" + strings.ReplaceAll(name, ".", "/") + ";")
}

// Array returns the descriptor of an array with the given element type.
func Array(elem Descriptor) Descriptor { return "[" + elem }

// Method renders the lookup descriptor of a method from its argument and
// return types.
func Method(args []Descriptor, ret Descriptor) string {
	var b strings.Builder
	b.Grow(2 + len(ret) + 8*len(args))
	b.WriteByte('(')
	for _, a := range args {
		b.WriteString(string(a))
	}
	b.WriteByte(')')
	b.WriteString(string(ret))
	return b.String()
}

// Field renders the lookup descriptor of a field, which is just its type
// descriptor.
func Field(typ Descriptor) string { return string(typ) }
