package fstree

import "testing"

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		less bool
	}{
		{"file2.txt", "file10.txt", true},
		{"file10.txt", "file2.txt", false},
		{"a.txt", "b.txt", true},
		{"file1.txt", "file1.txt", false},
		{"file01.txt", "file1.txt", false},
		{"v1.9.0", "v1.10.0", true},
		{"img9.png", "img10.png", true},
		{"img10.png", "img9.png", false},
	}
	for _, c := range cases {
		if got := NaturalLess(c.a, c.b); got != c.less {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", c.a, c.b, got, c.less)
		}
	}
}

func TestNaturalCompareEqualIsZero(t *testing.T) {
	if NaturalCompare("foo10", "foo10") != 0 {
		t.Errorf("expected equal strings to compare as 0")
	}
}
