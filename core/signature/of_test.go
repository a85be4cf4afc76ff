package signature

import "testing"

func TestOf_Builtins(t *testing.T) {
	tests := []struct {
		name string
		got  Descriptor
		want Descriptor
	}{
		{"bool", Of[bool](), Boolean},
		{"int8", Of[int8](), Byte},
		{"uint16", Of[uint16](), Char},
		{"int16", Of[int16](), Short},
		{"int32", Of[int32](), Int},
		{"int64", Of[int64](), Long},
		{"float32", Of[float32](), Float},
		{"float64", Of[float64](), Double},
		{"string", Of[string](), String},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Of[%s] = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestOf_Slices(t *testing.T) {
	if got := Of[[]int32](); got != "[I" {
		t.Errorf("Of[[]int32] = %q", got)
	}
	if got := Of[[][]int64](); got != "[[J" {
		t.Errorf("Of[[][]int64] = %q", got)
	}
	if got := Of[[]string](); got != "[Ljava/lang/String;" {
		t.Errorf("Of[[]string] = %q", got)
	}
}

type testPoint struct{}

func TestOf_Registered(t *testing.T) {
	RegisterClass[testPoint]("com.example.Point")

	if got := Of[testPoint](); got != "Lcom/example/Point;" {
		t.Errorf("Of[testPoint] = %q", got)
	}

	if got := Of[[]testPoint](); got != "[Lcom/example/Point;" {
		t.Errorf("Of[[]testPoint] = %q", got)
	}
}

type unbound struct{}

func TestOf_UnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unbound type")
		}
	}()
	Of[unbound]()
}

func TestOf_Cached(t *testing.T) {
	// Repeated derivation must be stable.
	first := Of[[]float64]()
	second := Of[[]float64]()
	if first != second {
		t.Errorf("Of not stable: %q vs %q", first, second)
	}
}
