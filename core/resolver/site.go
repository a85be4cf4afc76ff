package resolver

import (
	"github.com/codewandler/jni-go/core/jvm"
	"github.com/codewandler/jni-go/core/signature"
	"github.com/codewandler/jni-go/core/symbol"
	"github.com/codewandler/jni-go/internal/token"
)

// MethodSite is the precomputed static shape of one method call site: the
// interned name, staticness, rendered descriptor and call-site token.
// Declaring a site in a package-level var pays for interning, rendering and
// the token digest once instead of on every resolution.
//
//	var siteGetID = resolver.NewMethodSite("getId", false, nil, signature.Long)
//
//	m, err := siteGetID.Resolve(r, env, class)
type MethodSite struct {
	name       *symbol.Symbol
	static     bool
	descriptor string
	id         token.ID
}

// NewMethodSite builds the call site for a method with the given name,
// staticness, argument descriptors and return descriptor.
func NewMethodSite(name string, static bool, args []signature.Descriptor, ret signature.Descriptor) *MethodSite {
	descriptor := signature.Method(args, ret)
	return &MethodSite{
		name:       symbol.Intern(name),
		static:     static,
		descriptor: descriptor,
		id:         token.For(token.Method, static, descriptor),
	}
}

// Name returns the interned member name.
func (s *MethodSite) Name() *symbol.Symbol { return s.name }

// Descriptor returns the rendered method descriptor.
func (s *MethodSite) Descriptor() string { return s.descriptor }

// Resolve resolves the site's method on class, consulting r's cache.
func (s *MethodSite) Resolve(r *Resolver, env jvm.Env, class jvm.Ref) (jvm.Method, error) {
	return r.resolveMethod(env, class, s.name, s.static, s.descriptor, s.id)
}

// FieldSite is the precomputed static shape of one field access site.
type FieldSite struct {
	name       *symbol.Symbol
	static     bool
	descriptor string
	id         token.ID
}

// NewFieldSite builds the call site for a field with the given name,
// staticness and type descriptor.
func NewFieldSite(name string, static bool, typ signature.Descriptor) *FieldSite {
	descriptor := signature.Field(typ)
	return &FieldSite{
		name:       symbol.Intern(name),
		static:     static,
		descriptor: descriptor,
		id:         token.For(token.Field, static, descriptor),
	}
}

// Name returns the interned member name.
func (s *FieldSite) Name() *symbol.Symbol { return s.name }

// Descriptor returns the field's type descriptor.
func (s *FieldSite) Descriptor() string { return s.descriptor }

// Resolve resolves the site's field on class, consulting r's cache.
func (s *FieldSite) Resolve(r *Resolver, env jvm.Env, class jvm.Ref) (jvm.Field, error) {
	return r.resolveField(env, class, s.name, s.static, s.descriptor, s.id)
}
