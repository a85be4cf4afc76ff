package jvm

import (
	"fmt"

	"github.com/codewandler/jni-go/core/sf"
)

// dedupEnv coalesces identical concurrent lookups so a burst of cache
// misses for the same member performs one VM call. Weak-ref and identity
// operations pass through untouched.
type dedupEnv struct {
	Env
	methods *sf.Singleflight[RawMember]
	fields  *sf.Singleflight[RawMember]
}

// NewDedupEnv wraps env so concurrent FindMethod/FindField calls with the
// same (class, name, descriptor) execute once and share the result.
// Redundant lookups are correct without it; this is for hosts where a
// lookup is expensive enough to be worth the coordination.
//
// A shared failure is delivered to every waiter, so only one of them holds
// a VM with that exception actually pending. Callers that rethrow must
// tolerate the exception having been cleared already.
func NewDedupEnv(env Env) Env {
	return &dedupEnv{
		Env:     env,
		methods: sf.New[RawMember](),
		fields:  sf.New[RawMember](),
	}
}

func (d *dedupEnv) FindMethod(class Ref, name, descriptor string) (RawMember, error) {
	return d.lookup(d.methods, class, name, descriptor, d.Env.FindMethod)
}

func (d *dedupEnv) FindField(class Ref, name, descriptor string) (RawMember, error) {
	return d.lookup(d.fields, class, name, descriptor, d.Env.FindField)
}

var _ Env = (*dedupEnv)(nil)

func (d *dedupEnv) lookup(
	group *sf.Singleflight[RawMember],
	class Ref,
	name, descriptor string,
	find func(Ref, string, string) (RawMember, error),
) (RawMember, error) {
	key := fmt.Sprintf("%#x/%s%s", uintptr(class), name, descriptor)
	m, err := group.Do(key, func() (*RawMember, error) {
		raw, err := find(class, name, descriptor)
		if err != nil {
			return nil, err
		}
		return &raw, nil
	})
	if err != nil {
		return 0, err
	}
	return *m, nil
}
