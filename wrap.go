package tabular

import (
	"math"
	"strings"
	"unicode"

	"github.com/lixenwraith/tabular/ansi"
)

// ellipsis is the truncation marker, display width 1. It is never split
// across lines.
const ellipsis = "…"

// unboundedLines disables the line budget.
const unboundedLines = math.MaxInt

// splitLines splits on newlines. A single trailing newline yields no extra
// line; interior blank lines survive.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// wrapLines wraps text into lines of display width <= maxWidth using at
// most maxLines lines. Pre-existing line breaks are hard boundaries. Words
// wrap whole when they fit; words wider than maxWidth break cluster by
// cluster. Inter-word whitespace is literal content: a run of spaces keeps
// as many of its characters as fit on the current line, and the excess is
// dropped so no line starts with leftover spacing. Once the budget runs
// out, remaining content on the final line is cut to leave room for the
// ellipsis marker. Style sequences ride along at zero width.
//
// Truncation is lazy: a full final line only gains the marker once the next
// word, cluster, or hard break fails to fit, so content that exactly fills
// the budget is left unmarked.
func wrapLines(text string, maxWidth, maxLines int) []string {
	dataLines := splitLines(text)
	if len(dataLines) == 0 {
		return nil
	}

	w := &wrapper{maxWidth: maxWidth, maxLines: maxLines}
	for li, dataLine := range dataLines {
		if w.done {
			break
		}
		if li > 0 {
			if w.onLastLine() {
				// A hard break with no lines left truncates what we have.
				w.truncate()
				break
			}
			w.flush()
		}
		for rest := dataLine; rest != "" && !w.done; {
			i := strings.IndexFunc(rest, isNotSpace)
			switch {
			case i == -1:
				w.addSpaceRun(rest)
				rest = ""
			case i > 0:
				w.addSpaceRun(rest[:i])
				rest = rest[i:]
			default:
				j := strings.IndexFunc(rest, unicode.IsSpace)
				if j == -1 {
					j = len(rest)
				}
				w.addWord(rest[:j])
				rest = rest[j:]
			}
		}
	}
	return append(w.lines, w.cur.String())
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }

// wrapper accumulates wrapped output within a width and line budget.
type wrapper struct {
	maxWidth int
	maxLines int

	lines    []string        // committed lines
	cur      strings.Builder // line being built
	curWidth int
	done     bool // marker emitted; all further content is dropped
}

// onLastLine reports whether the line being built is the final one allowed.
func (w *wrapper) onLastLine() bool { return len(w.lines)+1 == w.maxLines }

// flush commits the current line and starts a new one.
func (w *wrapper) flush() {
	w.lines = append(w.lines, w.cur.String())
	w.cur.Reset()
	w.curWidth = 0
}

// truncate cuts the current line to leave room for the marker, appends the
// marker, and stops all further output.
func (w *wrapper) truncate() {
	line := truncateLine(w.cur.String(), w.maxWidth)
	w.cur.Reset()
	w.cur.WriteString(line)
	w.done = true
}

// addSpaceRun emits a whitespace run character by character while the
// current line has room. Spaces never wrap or trigger truncation: the
// excess is dropped, so a new line never opens with leftover spacing.
func (w *wrapper) addSpaceRun(run string) {
	for _, r := range run {
		rw := ansi.RuneWidth(r)
		if rw < 0 {
			rw = 0
		}
		if w.curWidth+rw > w.maxWidth {
			return
		}
		w.cur.WriteRune(r)
		w.curWidth += rw
	}
}

// addWord places one whitespace-delimited word, starting a new line when it
// does not fit after the spacing already emitted. On the last permitted
// line the word is appended and the line truncated instead.
func (w *wrapper) addWord(word string) {
	wordWidth := ansi.VisibleWidth(word)

	if wordWidth > w.maxWidth {
		w.addLongWord(word)
		return
	}

	if w.curWidth+wordWidth <= w.maxWidth {
		w.cur.WriteString(word)
		w.curWidth += wordWidth
		return
	}

	if w.onLastLine() {
		// No budget for another line: take what fits, then the marker.
		w.cur.WriteString(word)
		w.truncate()
		return
	}

	w.flush()
	w.cur.WriteString(word)
	w.curWidth = wordWidth
}

// addLongWord places a word wider than maxWidth. It starts on its own line
// when it is not the first content on the current one, then breaks grapheme
// cluster by grapheme cluster. A single cluster wider than maxWidth is
// replaced by the marker outright.
func (w *wrapper) addLongWord(word string) {
	if w.curWidth > 0 {
		if w.onLastLine() {
			w.cur.WriteString(word)
			w.truncate()
			return
		}
		w.flush()
	}

	spans := ansi.StyleSpans(word)
	i := 0
	for i < len(word) {
		if seq, ok := spans[i]; ok {
			w.cur.WriteString(seq)
			i += len(seq)
			continue
		}
		cluster, cw := ansi.NextCluster(word[i:])
		i += len(cluster)
		if cw > w.maxWidth {
			cluster = ellipsis
			cw = 1
		}
		if w.curWidth+cw > w.maxWidth {
			if w.onLastLine() {
				w.truncate()
				return
			}
			w.flush()
		}
		w.cur.WriteString(cluster)
		w.curWidth += cw
	}
}

// truncateLine cuts line so its visible width leaves room for the marker,
// then appends the marker. Style sequences before the cut are kept;
// sequences after it were never emitted and are dropped.
func truncateLine(line string, maxWidth int) string {
	target := maxWidth - 1
	spans := ansi.StyleSpans(line)
	var buf strings.Builder
	width := 0
	i := 0
	for i < len(line) {
		if seq, ok := spans[i]; ok {
			buf.WriteString(seq)
			i += len(seq)
			continue
		}
		cluster, cw := ansi.NextCluster(line[i:])
		if width+cw > target {
			break
		}
		buf.WriteString(cluster)
		width += cw
		i += len(cluster)
	}
	buf.WriteString(ellipsis)
	return buf.String()
}
