package symbol

import (
	"fmt"
	"sync"
	"testing"
)

func TestIntern_SamePointer(t *testing.T) {
	a := Intern("getValue")
	b := Intern("getValue")

	if a != b {
		t.Errorf("expected identical pointers for same name")
	}
	if a.String() != "getValue" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestIntern_DistinctNames(t *testing.T) {
	a := Intern("getValue")
	b := Intern("setValue")

	if a == b {
		t.Errorf("expected distinct pointers for distinct names")
	}
}

func TestIntern_Concurrent(t *testing.T) {
	const workers = 16
	const names = 8

	results := make([][]*Symbol, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = make([]*Symbol, names)
			for i := 0; i < names; i++ {
				results[w][i] = Intern(fmt.Sprintf("member%d", i))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := 0; i < names; i++ {
			if results[w][i] != results[0][i] {
				t.Errorf("worker %d got different pointer for member%d", w, i)
			}
		}
	}
}
