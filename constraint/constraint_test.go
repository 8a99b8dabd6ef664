package constraint

import "testing"

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		// Wildcard
		{"1.0.0", "*", true},
		{"0.0.0", "*", true},
		{"1.0.0", "", true},

		// Caret: same major, at least the base version
		{"2.3.1", "^2.0.0", true},
		{"2.0.0", "^2.0.0", true},
		{"3.0.0", "^2.0.0", false},
		{"1.9.9", "^2.0.0", false},

		// Tilde: same major and minor, at least the base version
		{"2.3.1", "~2.3.0", true},
		{"2.3.0", "~2.3.0", true},
		{"2.4.0", "~2.3.0", false},
		{"2.2.9", "~2.3.0", false},
		{"3.3.0", "~2.3.0", false},

		// Comparison operators
		{"5.0.0", ">=4.0.0", true},
		{"4.0.0", ">=4.0.0", true},
		{"3.9.9", ">=4.0.0", false},
		{"3.9.9", "<=4.0.0", true},
		{"4.0.1", "<=4.0.0", false},
		{"4.0.1", ">4.0.0", true},
		{"4.0.0", ">4.0.0", false},
		{"3.9.9", "<4.0.0", true},
		{"4.0.0", "<4.0.0", false},

		// Exact match after normalization
		{"1.0.0", "1.0.0", true},
		{"1.0.0", "1.0", true},
		{"1.0", "1.0.0", true},
		{"1.0.1", "1.0.0", false},

		// Numeric comparison, not string order
		{"10.0.0", ">9.0.0", true},
		{"10.0.0", "^9.0.0", false},

		// Non-numeric components coerce to 0
		{"1.x.0", "1.0.0", true},
		{"1.0.0", ">=1.x", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" vs "+tt.constraint, func(t *testing.T) {
			if got := Satisfies(tt.version, tt.constraint); got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v",
					tt.version, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0", "1.0.0", 0},
		{"1", "1.0.0", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"10.0.0", "9.0.0", 1},
		{"0.1", "0.0.9", 1},
		{"1.x.3", "1.0.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Components
	}{
		{"1.2.3", Components{1, 2, 3}},
		{"1.2", Components{1, 2, 0}},
		{"1", Components{1, 0, 0}},
		{"", Components{0, 0, 0}},
		{"1.beta.3", Components{1, 0, 3}},
		{"  2.0.1 ", Components{2, 0, 1}},
		{"1.2.3.4", Components{1, 2, 3}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMax(t *testing.T) {
	if got := Max("1.2.0", "1.10.0"); got != "1.10.0" {
		t.Errorf("Max = %q, want %q", got, "1.10.0")
	}
	if got := Max("2.0.0", "2.0.0"); got != "2.0.0" {
		t.Errorf("Max = %q, want %q", got, "2.0.0")
	}
}
