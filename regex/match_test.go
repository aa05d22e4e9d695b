package regex

import "testing"

func TestMatches(t *testing.T) {
	type pair struct {
		re, input string
		want      bool
	}
	cases := []pair{
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"a(b|c)d", "abd", true},
		{"a(b|c)d", "acd", true},
		{"a(b|c)d", "a", false},
		{"a?bc", "abc", true},
		{"a?bc", "bc", true},
		{"ab*c", "ac", true},
		{"ab*c", "abbbc", true},
		{"a+bc", "abc", true},
		{"a+bc", "bc", false},
		{"constexpr|static_cast|namespace", "static_cast", true},
		{"constexpr|static_cast|namespace", "cosntexpr", false},
		{"(ab)*c", "c", true},
		{"(ab)*c", "abc", true},
		{"(ab)*c", "ababc", true},
		{"(ab)*c", "abab", false},
		{"(xy)+z", "xyz", true},
		{"(xy)+z", "xyxyz", true},
		{"(xy)+z", "z", false},
		{"(a|b)cd", "acd", true},
		{"(a|b)cd", "bcd", true},
		{"(a|b)cd", "cd", false},
		{"a**", "", true},
		{"a**", "a", true},
		{"a**", "aaaa", true},
		{"a**", "b", false},
		{"a*+", "", true},
		{"a*+", "aaa", true},
	}

	for _, c := range cases {
		got, err := Matches(c.re, c.input)
		if err != nil {
			t.Errorf("Matches(%q, %q): unexpected error: %v", c.re, c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", c.re, c.input, got, c.want)
		}
	}
}

// TestMatchesEmptyInput covers spec.md §8 property 4: matches(r, "") is
// true iff every atom in r is under '?' or '*'.
func TestMatchesEmptyInput(t *testing.T) {
	type pair struct {
		re   string
		want bool
	}
	cases := []pair{
		{"a*", true},
		{"a?", true},
		{"a*b*", true},
		{"a", false},
		{"ab", false},
		{"a?b", false},
	}
	for _, c := range cases {
		got, err := Matches(c.re, "")
		if err != nil {
			t.Errorf("Matches(%q, \"\"): unexpected error: %v", c.re, err)
			continue
		}
		if got != c.want {
			t.Errorf("Matches(%q, \"\") = %v, want %v", c.re, got, c.want)
		}
	}
}

// TestMatchesLiteralIdentity covers spec.md §8 property 5: for a regex of
// pure literals, matches(r, s) == (r == s).
func TestMatchesLiteralIdentity(t *testing.T) {
	re := "hello"
	samples := []string{"hello", "hell", "helloo", "world", ""}
	for _, s := range samples {
		got, err := Matches(re, s)
		if err != nil {
			t.Fatalf("Matches(%q, %q): unexpected error: %v", re, s, err)
		}
		want := re == s
		if got != want {
			t.Errorf("Matches(%q, %q) = %v, want %v", re, s, got, want)
		}
	}
}

func TestMatchesInvalidRegex(t *testing.T) {
	if _, err := Matches("((a)", "a"); err == nil {
		t.Errorf("Matches with unmatched paren: expected error, got nil")
	}
}
