package jvm

// Method is a resolved method handle plus its static/non-static
// classification. The call layer decides between CallStatic<Type>Method and
// Call<Type>Method based on Static.
type Method struct {
	raw    RawMember
	static bool
}

// MethodFromRaw rebuilds a typed method handle from its raw form, e.g. one
// taken out of the resolver cache.
func MethodFromRaw(raw RawMember, static bool) Method {
	return Method{raw: raw, static: static}
}

// Raw returns the underlying jmethodID value.
func (m Method) Raw() RawMember { return m.raw }

// Static reports whether the method is static.
func (m Method) Static() bool { return m.static }

// Field is a resolved field handle plus its static/non-static
// classification.
type Field struct {
	raw    RawMember
	static bool
}

// FieldFromRaw rebuilds a typed field handle from its raw form.
func FieldFromRaw(raw RawMember, static bool) Field {
	return Field{raw: raw, static: static}
}

// Raw returns the underlying jfieldID value.
func (f Field) Raw() RawMember { return f.raw }

// Static reports whether the field is static.
func (f Field) Static() bool { return f.static }
