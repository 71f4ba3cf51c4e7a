package ansi

import "testing"

func TestRuneWidth(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 'a', 1},
		{"space", ' ', 1},
		{"ellipsis", '…', 1},
		{"wide cjk", '深', 2},
		{"combining mark", '\u0301', 0},
		{"newline", '\n', Unprintable},
		{"tab", '\t', Unprintable},
		{"escape", '\x1b', Unprintable},
		{"delete", '\x7f', Unprintable},
	}
	for _, tc := range cases {
		if got := RuneWidth(tc.r); got != tc.want {
			t.Errorf("%s: RuneWidth(%q) = %d, want %d", tc.name, tc.r, got, tc.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"plain", "hello", 5},
		{"styled", "\x1b[32mhello\x1b[0m", 5},
		{"style only", "\x1b[1m\x1b[0m", 0},
		{"wide", "深圳", 4},
		{"combining", "e\u0301", 1},
		{"mixed", "a\x1b[31m深\x1b[0mb", 4},
		{"embedded newline", "a\nb", Unprintable},
		{"bare escape", "a\x1bb", Unprintable},
	}
	for _, tc := range cases {
		if got := StringWidth(tc.s); got != tc.want {
			t.Errorf("%s: StringWidth(%q) = %d, want %d", tc.name, tc.s, got, tc.want)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want int
	}{
		{"plain", "hello", 5},
		{"styled", "\x1b[32mhello\x1b[0m", 5},
		{"control char counts zero", "a\x01b", 2},
		{"newline counts zero", "a\nb", 2},
		{"wide plus control", "深\x01圳", 4},
	}
	for _, tc := range cases {
		if got := VisibleWidth(tc.s); got != tc.want {
			t.Errorf("%s: VisibleWidth(%q) = %d, want %d", tc.name, tc.s, got, tc.want)
		}
	}
}

func TestStyleSpans(t *testing.T) {
	s := "\x1b[1mBold\x1b[0m"
	spans := StyleSpans(s)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %#v", len(spans), spans)
	}
	if spans[0] != "\x1b[1m" {
		t.Errorf("span at 0 = %q, want %q", spans[0], "\x1b[1m")
	}
	if spans[8] != "\x1b[0m" {
		t.Errorf("span at 8 = %q, want %q", spans[8], "\x1b[0m")
	}

	if spans := StyleSpans("no styles here"); spans != nil {
		t.Errorf("expected nil spans for plain text, got %#v", spans)
	}
}

func TestStylesOrder(t *testing.T) {
	seqs := Styles("\x1b[1ma\x1b[32mb\x1b[0m")
	want := []string{"\x1b[1m", "\x1b[32m", "\x1b[0m"}
	if len(seqs) != len(want) {
		t.Fatalf("expected %d sequences, got %d: %#v", len(want), len(seqs), seqs)
	}
	for i := range want {
		if seqs[i] != want[i] {
			t.Errorf("sequence %d = %q, want %q", i, seqs[i], want[i])
		}
	}
}

func TestStrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\x1b[32mgreen\x1b[0m", "green"},
		{"plain", "plain"},
		{"\x1b[38;5;208mnumeric params\x1b[0m", "numeric params"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Strip(tc.in); got != tc.want {
			t.Errorf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextCluster(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		cluster string
		width   int
	}{
		{"ascii", "abc", "a", 1},
		{"wide", "深x", "深", 2},
		{"combining stays attached", "e\u0301x", "e\u0301", 1},
	}
	for _, tc := range cases {
		cluster, width := NextCluster(tc.in)
		if cluster != tc.cluster || width != tc.width {
			t.Errorf("%s: NextCluster(%q) = (%q, %d), want (%q, %d)",
				tc.name, tc.in, cluster, width, tc.cluster, tc.width)
		}
	}
}
