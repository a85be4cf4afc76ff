package jvm

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// InMemoryEnv is a simple, correct VM stand-in for tests/dev. Classes are
// defined up front with their member tables; every FindMethod/FindField
// call is counted so tests can observe whether a resolution hit the cache
// or went to the "VM".
//
// Collect marks an object as reclaimed, after which IsSameObject answers
// false for it, like a weak reference whose referent is gone. Defining the
// same class name twice yields two distinct objects, mirroring the same
// class loaded by two loaders.
type InMemoryEnv struct {
	mu         sync.Mutex
	nextRef    Ref
	nextMember RawMember
	objects    map[Ref]*memObject

	methodLookups atomic.Uint64
	fieldLookups  atomic.Uint64
}

type memObject struct {
	name      string
	collected bool
	methods   map[string]RawMember // keyed by name + descriptor
	fields    map[string]RawMember
}

func NewInMemoryEnv() *InMemoryEnv {
	return &InMemoryEnv{objects: make(map[Ref]*memObject)}
}

// DefineClass registers a class object and returns a live reference to it.
func (e *InMemoryEnv) DefineClass(name string) Ref {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextRef++
	ref := e.nextRef
	e.objects[ref] = &memObject{
		name:    name,
		methods: make(map[string]RawMember),
		fields:  make(map[string]RawMember),
	}
	return ref
}

// DefineMethod registers a method on class and returns its handle.
func (e *InMemoryEnv) DefineMethod(class Ref, name, descriptor string) RawMember {
	return e.define(class, name, descriptor, func(o *memObject) map[string]RawMember {
		return o.methods
	})
}

// DefineField registers a field on class and returns its handle.
func (e *InMemoryEnv) DefineField(class Ref, name, descriptor string) RawMember {
	return e.define(class, name, descriptor, func(o *memObject) map[string]RawMember {
		return o.fields
	})
}

func (e *InMemoryEnv) define(class Ref, name, descriptor string, table func(*memObject) map[string]RawMember) RawMember {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[class]
	if !ok {
		panic(fmt.Sprintf("jvm: define on unknown class ref %#x", uintptr(class)))
	}
	e.nextMember++
	table(obj)[name+descriptor] = e.nextMember
	return e.nextMember
}

// Collect marks ref as reclaimed by the garbage collector. Identity checks
// against it answer false from then on; lookups fail with
// java.lang.NoClassDefFoundError.
func (e *InMemoryEnv) Collect(ref Ref) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if obj, ok := e.objects[ref]; ok {
		obj.collected = true
	}
}

func (e *InMemoryEnv) FindMethod(class Ref, name, descriptor string) (RawMember, error) {
	e.methodLookups.Add(1)
	return e.find(class, name, descriptor, "java.lang.NoSuchMethodError", func(o *memObject) map[string]RawMember {
		return o.methods
	})
}

func (e *InMemoryEnv) FindField(class Ref, name, descriptor string) (RawMember, error) {
	e.fieldLookups.Add(1)
	return e.find(class, name, descriptor, "java.lang.NoSuchFieldError", func(o *memObject) map[string]RawMember {
		return o.fields
	})
}

func (e *InMemoryEnv) find(class Ref, name, descriptor, missingClass string, table func(*memObject) map[string]RawMember) (RawMember, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[class]
	if !ok || obj.collected {
		return 0, &Throwable{
			Class:   "java.lang.NoClassDefFoundError",
			Message: fmt.Sprintf("ref %#x", uintptr(class)),
		}
	}
	m, ok := table(obj)[name+descriptor]
	if !ok {
		return 0, &Throwable{
			Class:   missingClass,
			Message: obj.name + "." + name + " " + descriptor,
		}
	}
	return m, nil
}

func (e *InMemoryEnv) NewWeakGlobalRef(ref Ref) Weak { return Weak(ref) }

func (e *InMemoryEnv) IsSameObject(a, b Ref) bool {
	if a.IsNull() || b.IsNull() {
		// JNI: two nulls are the same object.
		return a == b
	}
	if a != b {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[a]
	return ok && !obj.collected
}

// MethodLookups returns the number of FindMethod calls observed.
func (e *InMemoryEnv) MethodLookups() uint64 { return e.methodLookups.Load() }

// FieldLookups returns the number of FindField calls observed.
func (e *InMemoryEnv) FieldLookups() uint64 { return e.fieldLookups.Load() }

// Lookups returns the total number of lookup calls observed.
func (e *InMemoryEnv) Lookups() uint64 {
	return e.methodLookups.Load() + e.fieldLookups.Load()
}

var _ Env = (*InMemoryEnv)(nil)
