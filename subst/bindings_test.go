package subst

import "testing"

func TestBindings_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		template string
		bindings []Bindings
		want     string
	}{
		{
			name:     "map shape",
			template: "$a $b",
			bindings: []Bindings{Map(map[string]any{"a": 1, "b": 2})},
			want:     "1 2",
		},
		{
			name:     "pairs shape",
			template: "$a $b",
			bindings: []Bindings{Pairs("a", 1, "b", 2)},
			want:     "1 2",
		},
		{
			name:     "pairs with trailing name binds empty",
			template: "[$a]",
			bindings: []Bindings{Pairs("a")},
			want:     "[]",
		},
		{
			name:     "underscore-led name",
			template: "$_1",
			bindings: []Bindings{Pairs("_1", "first")},
			want:     "first",
		},
		{
			name:     "single binds the default name",
			template: "value: $_",
			bindings: []Bindings{Single(42)},
			want:     "value: 42",
		},
		{
			name:     "single leaves other names alone",
			template: "$_ vs $name",
			bindings: []Bindings{Single("x")},
			want:     "x vs $name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.template, tt.bindings...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBindings_MergeOrder(t *testing.T) {
	tests := []struct {
		name     string
		template string
		bindings []Bindings
		want     string
	}{
		{
			name:     "later set wins",
			template: "$a",
			bindings: []Bindings{
				Map(map[string]any{"a": "first"}),
				Map(map[string]any{"a": "second"}),
			},
			want: "second",
		},
		{
			name:     "sets of different shapes merge",
			template: "$a $b $_",
			bindings: []Bindings{
				Map(map[string]any{"a": "A"}),
				Pairs("b", "B"),
				Single("C"),
			},
			want: "A B C",
		},
		{
			name:     "pairs override map entries",
			template: "$a $b",
			bindings: []Bindings{
				Map(map[string]any{"a": "old", "b": "kept"}),
				Pairs("a", "new"),
			},
			want: "new kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.template, tt.bindings...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
