package resolver

import (
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/jni-go/core/jvm"
	"github.com/codewandler/jni-go/core/signature"
	"github.com/codewandler/jni-go/core/symbol"
	"github.com/codewandler/jni-go/internal/slotpool"
	"github.com/codewandler/jni-go/internal/token"
)

const (
	kindMethod = "method"
	kindField  = "field"
)

// entry is one cached resolution. It is valid to return only when the
// token and name pointer match exactly and the weak class still refers to
// the same live object as the caller's class reference.
type entry struct {
	class  jvm.Weak
	token  token.ID
	name   *symbol.Symbol
	member jvm.RawMember
}

// Resolver resolves class members to native handles. Safe for concurrent
// use from any number of goroutines; pass the Env attached to the calling
// thread on every operation.
type Resolver struct {
	id   string
	log  *slog.Logger
	met  Metrics
	pool *slotpool.Pool[entry] // nil when caching is disabled
}

// New creates a Resolver. By default it caches into slots of
// [slotpool.DefaultCapacity] entries and reports no metrics.
func New(opts ...Option) *Resolver {
	options := newOptions(opts...)

	r := &Resolver{
		id:  gonanoid.Must(6),
		met: options.metrics,
	}

	log := options.log
	if log == nil {
		log = slog.Default()
	}
	r.log = log.With(slog.String("resolver", r.id))

	if !options.noCache {
		r.pool = slotpool.New[entry](slotpool.Opts{
			Capacity: options.slotCapacity,
			OnAlloc:  r.met.SlotAllocated,
		})
	}

	return r
}

// Probe attempts the host lookup for one member. On a cache hit it is
// called with the cached raw handle and ok=true; implementations may
// rebuild the typed handle from it, though the VM is still allowed to fail
// revalidation. With ok=false a full VM lookup must be performed; the
// returned raw handle is what gets cached.
type Probe[M any] func(cached jvm.RawMember, ok bool) (M, jvm.RawMember, error)

// Member is the generic resolution core shared by Method and Field: lease
// a slot, probe its entries for (id, name, class), call probe with the
// cached handle on a hit or with nothing on a miss, insert the fresh
// result, release the slot. The release is unconditional; a failed lookup
// leaves no entry behind and still returns the slot.
func Member[M any](r *Resolver, env jvm.Env, class jvm.Ref, name *symbol.Symbol, id token.ID, probe Probe[M]) (M, error) {
	if r.pool == nil {
		m, _, err := probe(0, false)
		return m, err
	}

	slot := r.pool.Lease()
	defer slot.Release()

	if e := slot.Find(func(e *entry) bool {
		return e.token == id && e.name == name && env.IsSameObject(e.class.Ref(), class)
	}); e != nil {
		r.met.CacheHit()
		m, _, err := probe(e.member, true)
		return m, err
	}
	r.met.CacheMiss()

	m, raw, err := probe(0, false)
	if err != nil {
		var zero M
		return zero, err
	}

	if _, evicted := slot.Insert(entry{
		class:  env.NewWeakGlobalRef(class),
		token:  id,
		name:   name,
		member: raw,
	}); evicted {
		r.met.Eviction()
	}

	return m, nil
}

// Method resolves a method of class from its statically known shape:
// interned name, staticness, argument descriptors and return descriptor.
// The descriptor and token are rendered on every call; hot call sites
// should hold a [MethodSite] instead.
func (r *Resolver) Method(env jvm.Env, class jvm.Ref, name *symbol.Symbol, static bool, args []signature.Descriptor, ret signature.Descriptor) (jvm.Method, error) {
	descriptor := signature.Method(args, ret)
	return r.resolveMethod(env, class, name, static, descriptor, token.For(token.Method, static, descriptor))
}

func (r *Resolver) resolveMethod(env jvm.Env, class jvm.Ref, name *symbol.Symbol, static bool, descriptor string, id token.ID) (jvm.Method, error) {
	if err := checkTarget(class, name); err != nil {
		return jvm.Method{}, err
	}

	return Member(r, env, class, name, id, func(cached jvm.RawMember, ok bool) (jvm.Method, jvm.RawMember, error) {
		if ok {
			return jvm.MethodFromRaw(cached, static), cached, nil
		}

		timer := r.met.LookupDuration(kindMethod)
		raw, err := env.FindMethod(class, name.String(), descriptor)
		timer.ObserveDuration()
		r.met.LookupCompleted(kindMethod, err == nil)

		if err != nil {
			r.log.Debug("method lookup failed",
				slog.String("name", name.String()),
				slog.String("descriptor", descriptor),
			)
			return jvm.Method{}, 0, err
		}
		return jvm.MethodFromRaw(raw, static), raw, nil
	})
}

// Field resolves a field of class from its statically known shape:
// interned name, staticness and type descriptor. Hot call sites should
// hold a [FieldSite] instead.
func (r *Resolver) Field(env jvm.Env, class jvm.Ref, name *symbol.Symbol, static bool, typ signature.Descriptor) (jvm.Field, error) {
	descriptor := signature.Field(typ)
	return r.resolveField(env, class, name, static, descriptor, token.For(token.Field, static, descriptor))
}

func (r *Resolver) resolveField(env jvm.Env, class jvm.Ref, name *symbol.Symbol, static bool, descriptor string, id token.ID) (jvm.Field, error) {
	if err := checkTarget(class, name); err != nil {
		return jvm.Field{}, err
	}

	return Member(r, env, class, name, id, func(cached jvm.RawMember, ok bool) (jvm.Field, jvm.RawMember, error) {
		if ok {
			return jvm.FieldFromRaw(cached, static), cached, nil
		}

		timer := r.met.LookupDuration(kindField)
		raw, err := env.FindField(class, name.String(), descriptor)
		timer.ObserveDuration()
		r.met.LookupCompleted(kindField, err == nil)

		if err != nil {
			r.log.Debug("field lookup failed",
				slog.String("name", name.String()),
				slog.String("descriptor", descriptor),
			)
			return jvm.Field{}, 0, err
		}
		return jvm.FieldFromRaw(raw, static), raw, nil
	})
}

// Slots returns how many cache slots have been allocated so far. Zero when
// caching is disabled.
func (r *Resolver) Slots() int {
	if r.pool == nil {
		return 0
	}
	return r.pool.Size()
}

func checkTarget(class jvm.Ref, name *symbol.Symbol) error {
	if class.IsNull() {
		return ErrNullClass
	}
	if name == nil {
		return ErrNilName
	}
	return nil
}
