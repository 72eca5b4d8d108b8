package scaffold

import "testing"

func TestApply(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		replacements []Replacement
		want         string
	}{
		{
			name: "disjoint tokens",
			text: "X and Y",
			replacements: []Replacement{
				{Token: "X", Value: "1"},
				{Token: "Y", Value: "2"},
			},
			want: "1 and 2",
		},
		{
			name: "all occurrences replaced",
			text: "X X X",
			replacements: []Replacement{
				{Token: "X", Value: "ok"},
			},
			want: "ok ok ok",
		},
		{
			name: "later token matches earlier output",
			text: "XY",
			replacements: []Replacement{
				{Token: "X", Value: "Y"},
				{Token: "Y", Value: "Z"},
			},
			want: "ZZ",
		},
		{
			name: "no replacements",
			text: "untouched {{.Title}}",
			want: "untouched {{.Title}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.text, tt.replacements); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestApplyOnePass(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		replacements []Replacement
		want         string
	}{
		{
			name: "values are not rescanned",
			text: "XY",
			replacements: []Replacement{
				{Token: "X", Value: "Y"},
				{Token: "Y", Value: "Z"},
			},
			want: "YZ",
		},
		{
			name: "matches sequential result for disjoint tokens",
			text: "X and Y",
			replacements: []Replacement{
				{Token: "X", Value: "1"},
				{Token: "Y", Value: "2"},
			},
			want: "1 and 2",
		},
		{
			name: "no replacements",
			text: "as is",
			want: "as is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyOnePass(tt.text, tt.replacements); got != tt.want {
				t.Errorf("ApplyOnePass(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
