package tinyre

import (
	"strings"
	"testing"
)

// FuzzFind checks the engine's invariants over arbitrary pattern/text pairs:
// a reported match is always a sub-slice, '^' matches always start at 0,
// '$' matches always end at len(text), and the prefiltered public search
// agrees with the bare simulator.
func FuzzFind(f *testing.F) {
	seeds := []struct{ pattern, text string }{
		{"abc", "xxabcxx"},
		{"(bc)+", "abcbca"},
		{"a*$", "Xaa"},
		{"[a-z]+", "Hello"},
		{`\d+`, "x42y"},
		{"[^0-9]+", "42abc42"},
		{"^a?b", "ab"},
		{"a?+", "aaaa"},
		{"[a-b-]", "-"},
		{"", ""},
	}
	for _, s := range seeds {
		f.Add(s.pattern, s.text)
	}

	f.Fuzz(func(t *testing.T, pattern, text string) {
		re, err := Compile(pattern)
		if err != nil {
			// A pattern that fails to compile matches nothing.
			if m := Matches([]byte(pattern), []byte(text)); m != nil {
				t.Fatalf("Matches(%q) = %q after compile failure", pattern, m)
			}
			return
		}

		b := []byte(text)
		loc := re.FindIndex(b)

		if want := findWithoutPrefilter(re, b); (loc == nil) != (want == nil) ||
			(loc != nil && (loc[0] != want[0] || loc[1] != want[1])) {
			t.Fatalf("pattern %q text %q: FindIndex = %v, simulator = %v", pattern, text, loc, want)
		}

		if loc == nil {
			if re.Match(b) {
				t.Fatalf("pattern %q text %q: Match true but FindIndex nil", pattern, text)
			}
			return
		}

		start, end := loc[0], loc[1]
		if start < 0 || start > end || end > len(b) {
			t.Fatalf("pattern %q text %q: bad range [%d, %d)", pattern, text, start, end)
		}
		// A quantified '^' rewrites the leading Begin away, so key the
		// anchoring law off the compiled program, not the pattern text.
		if re.prog.Anchored() && start != 0 {
			t.Fatalf("pattern %q text %q: anchored match at %d", pattern, text, start)
		}
		if strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`) && end != len(b) {
			t.Fatalf("pattern %q text %q: $-match ends at %d of %d", pattern, text, end, len(b))
		}
		if !re.Match(b) {
			t.Fatalf("pattern %q text %q: FindIndex %v but Match false", pattern, text, loc)
		}
	})
}
