package optional

import "testing"

func TestOption(t *testing.T) {
	var none Option[int]
	if none.Has() {
		t.Errorf("zero Option should be unset")
	}
	if got := none.ValueOrDefault(7); got != 7 {
		t.Errorf("ValueOrDefault = %d, want 7", got)
	}
	if _, ok := none.Any(); ok {
		t.Errorf("Any on unset option reported a value")
	}

	some := Some(3)
	if !some.Has() || some.Value() != 3 {
		t.Errorf("Some(3) = %v", some)
	}
	if v, ok := some.Any(); !ok || v.(int) != 3 {
		t.Errorf("Any = %v, %v", v, ok)
	}

	n := 5
	if got := FromPtr(&n); got.Value() != 5 {
		t.Errorf("FromPtr = %v", got)
	}
	if FromPtr[int](nil).Has() {
		t.Errorf("FromPtr(nil) should be unset")
	}
	if FromNonDefault("").Has() {
		t.Errorf("FromNonDefault(\"\") should be unset")
	}
}

func TestUnless(t *testing.T) {
	tests := []struct {
		name string
		in   Option[string]
		want bool
	}{
		{"default is dropped", Some("inline"), false},
		{"other value kept", Some("square"), true},
		{"unset stays unset", None[string](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unless(tt.in, "inline").Has(); got != tt.want {
				t.Errorf("Unless(%v).Has() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
