// Package resolver resolves members of JVM classes to native handles,
// caching results so repeated resolutions of the same call site skip the VM
// lookup.
//
// # Cache model
//
// The cache is a pool of independently leased slots (see internal/slotpool).
// A resolution leases a slot, probes its LRU entries and releases the slot
// before returning. An entry matches only when three checks pass, cheapest
// first:
//
//   - the call-site token equals the probe's token,
//   - the interned name pointer equals the probe's name pointer,
//   - the cached weak class reference still refers to the same live object
//     as the caller's class reference (Env.IsSameObject).
//
// Entries keyed to a collected or replaced class simply stop matching and
// age out through the LRU; there is no invalidation sweep. Two goroutines
// racing on the same member may both perform a VM lookup and both insert an
// entry. That race is benign: every cached value is independently
// re-derivable and revalidated on each hit.
//
// # Usage
//
//	var nameGetID = symbol.Intern("getId")
//
//	r := resolver.New()
//	m, err := r.Method(env, class, nameGetID, false, nil, signature.Long)
//	if err != nil {
//	    var thr *jvm.Throwable
//	    if errors.As(err, &thr) {
//	        // rethrow or clear per JNI convention
//	    }
//	}
//
// With [WithoutCache] every resolution goes straight to the VM; the cache
// is an accelerant, never a correctness dependency.
package resolver
