package signature

import "testing"

func TestMethod(t *testing.T) {
	tests := []struct {
		name string
		args []Descriptor
		ret  Descriptor
		want string
	}{
		{"no args", nil, Int, "()I"},
		{"primitives and object", []Descriptor{Int, Float, Object("java/lang/String")}, Void, "(IFLjava/lang/String;)V"},
		{"all primitives", []Descriptor{Boolean, Byte, Char, Short, Int, Long, Float, Double}, Void, "(ZBCSIJFD)V"},
		{"array arg", []Descriptor{Array(Byte)}, Void, "([B)V"},
		{"object return", nil, Object("java/lang/Object"), "()Ljava/lang/Object;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Method(tt.args, tt.ret); got != tt.want {
				t.Errorf("Method() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObject(t *testing.T) {
	if got := Object("java/lang/String"); got != "Ljava/lang/String;" {
		t.Errorf("Object() = %q", got)
	}

	// Dotted binary names normalize to slashes.
	if got := Object("java.lang.String"); got != "Ljava/lang/String;" {
		t.Errorf("Object() = %q", got)
	}
}

func TestArray(t *testing.T) {
	if got := Array(Int); got != "[I" {
		t.Errorf("Array() = %q", got)
	}
	if got := Array(Array(Object("java/lang/String"))); got != "[[Ljava/lang/String;" {
		t.Errorf("nested Array() = %q", got)
	}
}

func TestField(t *testing.T) {
	if got := Field(Long); got != "J" {
		t.Errorf("Field() = %q", got)
	}
	if got := Field(Object("java/util/List")); got != "Ljava/util/List;" {
		t.Errorf("Field() = %q", got)
	}
}
