package value

import (
	"errors"
	"testing"
)

type labeled struct{ text string }

func (l labeled) String() string { return l.text }

type failing struct{ msg string }

func (f *failing) Error() string { return f.msg }

func TestStringify_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "empty string", in: "", want: ""},
		{name: "string", in: "hello", want: "hello"},
		{name: "bytes", in: []byte("raw"), want: "raw"},
		{name: "int", in: 42, want: "42"},
		{name: "negative int", in: -7, want: "-7"},
		{name: "zero", in: 0, want: "0"},
		{name: "float", in: 3.25, want: "3.25"},
		{name: "bool", in: true, want: "true"},
		{name: "stringer", in: labeled{text: "tagged"}, want: "tagged"},
		{name: "error", in: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringify_Sequences(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "empty slice", in: []any{}, want: ""},
		{name: "strings", in: []string{"a", "b", "c"}, want: "a b c"},
		{name: "mixed scalars", in: []any{"a", 1, "b"}, want: "a 1 b"},
		{name: "ints", in: []int{1, 2, 3}, want: "1 2 3"},
		{name: "array", in: [2]string{"x", "y"}, want: "x y"},
		{name: "nil element", in: []any{"a", nil, "b"}, want: "a  b"},
		{name: "nested stays flat", in: []any{"a", []int{1, 2}}, want: "a [1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringify_Maps(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "empty map", in: map[string]any{}, want: ""},
		{name: "single entry", in: map[string]string{"k": "v"}, want: "k v"},
		{
			name: "keys sorted",
			in:   map[string]int{"b": 2, "a": 1, "c": 3},
			want: "a 1 b 2 c 3",
		},
		{
			name: "numeric keys sort by rendered form",
			in:   map[int]string{10: "ten", 2: "two"},
			want: "10 ten 2 two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringify_Pointers(t *testing.T) {
	s := "pointed"
	ps := &s
	pps := &ps
	var nilp *string

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "pointer to string", in: ps, want: "pointed"},
		{name: "pointer to pointer", in: pps, want: "pointed"},
		{name: "nil pointer", in: nilp, want: ""},
		{name: "pointer to slice", in: &[]string{"a", "b"}, want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringify_TypedNilReceivers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil stringer pointer", in: (*labeled)(nil), want: ""},
		{name: "nil error pointer", in: (*failing)(nil), want: ""},
		{name: "nil stringer element", in: []any{"a", (*labeled)(nil), "b"}, want: "a  b"},
		{name: "nil error map value", in: map[string]any{"k": (*failing)(nil)}, want: "k "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefine(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil becomes empty", in: nil, want: ""},
		{name: "string passes through", in: "kept", want: "kept"},
		{name: "zero is kept", in: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Define(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
