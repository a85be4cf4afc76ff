package signature

import (
	"fmt"
	"reflect"
	"sync"
)

// maxCacheSize bounds the derived-descriptor cache. The number of distinct
// binding types in a program is small, so the limit is rarely hit; when it
// is, the cache is cleared.
const maxCacheSize = 1024

var (
	mu         sync.RWMutex
	registered = make(map[reflect.Type]Descriptor)
	derived    = make(map[reflect.Type]Descriptor)
)

// Of returns the descriptor for the Go binding type T.
//
// Builtin kinds map to their JVM counterparts: bool→Z, int8→B, uint16→C,
// int16→S, int32→I, int64→J, float32→F, float64→D,
// string→Ljava/lang/String;. Slices map to arrays of their element
// descriptor. Any other type must be bound through [RegisterClass] first;
// Of panics otherwise, since a missing binding is a programming error at a
// static call site, not a runtime condition.
//
// Results are cached; safe for concurrent use.
func Of[T any]() Descriptor {
	t := reflect.TypeOf((*T)(nil)).Elem()
	d, ok := ofType(t)
	if !ok {
		panic(fmt.Sprintf("signature: no binding for type %v", t))
	}
	return d
}

// RegisterClass binds the Go type T to a JVM class by binary name, after
// which Of[T] renders L<name>;. This is how strongly typed wrapper types
// declare which class they stand for.
func RegisterClass[T any](binaryName string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	d := Object(binaryName)

	mu.Lock()
	registered[t] = d
	mu.Unlock()
}

func ofType(t reflect.Type) (Descriptor, bool) {
	mu.RLock()
	if d, ok := registered[t]; ok {
		mu.RUnlock()
		return d, true
	}
	if d, ok := derived[t]; ok {
		mu.RUnlock()
		return d, true
	}
	mu.RUnlock()

	d, ok := derive(t)
	if !ok {
		return "", false
	}

	mu.Lock()
	if len(derived) >= maxCacheSize {
		derived = make(map[reflect.Type]Descriptor)
	}
	derived[t] = d
	mu.Unlock()

	return d, true
}

func derive(t reflect.Type) (Descriptor, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return Boolean, true
	case reflect.Int8:
		return Byte, true
	case reflect.Uint16:
		return Char, true
	case reflect.Int16:
		return Short, true
	case reflect.Int32:
		return Int, true
	case reflect.Int64:
		return Long, true
	case reflect.Float32:
		return Float, true
	case reflect.Float64:
		return Double, true
	case reflect.String:
		return String, true
	case reflect.Slice:
		elem, ok := ofType(t.Elem())
		if !ok {
			return "", false
		}
		return Array(elem), true
	default:
		return "", false
	}
}
