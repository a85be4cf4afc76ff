package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/jni-go/core/jvm"
	"github.com/codewandler/jni-go/core/signature"
)

func TestMethodSite_Resolve(t *testing.T) {
	env, class := newTestEnv(t)
	r := New()

	site := NewMethodSite("getValue", false, nil, signature.Int)
	require.Equal(t, "()I", site.Descriptor())
	require.Same(t, nameGetValue, site.Name())

	first, err := site.Resolve(r, env, class)
	require.NoError(t, err)

	second, err := site.Resolve(r, env, class)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, uint64(1), env.MethodLookups())
}

func TestMethodSite_SharesCacheWithDirectResolve(t *testing.T) {
	env, class := newTestEnv(t)
	r := New()

	// A site and a direct call with the same shape derive the same token
	// and name pointer, so they share one cache entry.
	site := NewMethodSite("getValue", false, nil, signature.Int)

	_, err := site.Resolve(r, env, class)
	require.NoError(t, err)

	_, err = r.Method(env, class, nameGetValue, false, nil, signature.Int)
	require.NoError(t, err)

	require.Equal(t, uint64(1), env.MethodLookups())
}

func TestFieldSite_Resolve(t *testing.T) {
	env, class := newTestEnv(t)
	r := New()

	site := NewFieldSite("count", false, signature.Int)
	require.Equal(t, "I", site.Descriptor())

	first, err := site.Resolve(r, env, class)
	require.NoError(t, err)
	require.False(t, first.Static())

	_, err = site.Resolve(r, env, class)
	require.NoError(t, err)
	require.Equal(t, uint64(1), env.FieldLookups())
}

func TestSite_NullClass(t *testing.T) {
	env, _ := newTestEnv(t)
	r := New()

	site := NewMethodSite("getValue", false, nil, signature.Int)
	_, err := site.Resolve(r, env, 0)
	require.ErrorIs(t, err, ErrNullClass)
}

func BenchmarkMethodSiteResolve(b *testing.B) {
	env := jvm.NewInMemoryEnv()
	class := env.DefineClass("com/example/Example")
	env.DefineMethod(class, "getValue", "()I")

	r := New()
	site := NewMethodSite("getValue", false, nil, signature.Int)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := site.Resolve(r, env, class); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMethodResolve(b *testing.B) {
	env := jvm.NewInMemoryEnv()
	class := env.DefineClass("com/example/Example")
	env.DefineMethod(class, "getValue", "()I")

	r := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Method(env, class, nameGetValue, false, nil, signature.Int); err != nil {
			b.Fatal(err)
		}
	}
}
