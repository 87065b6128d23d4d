package rewrite

import (
	"strconv"
	"strings"
)

const (
	negationMarker = '~'
	inverterPrefix = "N"
	inverterGate   = "IV INVL"
)

// isSymbolChar reports whether c may appear in a negated symbol name,
// including bus indices and escaped identifiers.
func isSymbolChar(c rune) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '[', c == ']', c == '\\':
		return true
	}
	return false
}

// negatedSymbols returns every `~symbol` run of line from left to right.
// A marker followed by no symbol character yields nothing.
func negatedSymbols(line string) []string {
	var (
		symbols    []string
		current    strings.Builder
		collecting bool
	)
	flush := func() {
		if current.Len() > 0 {
			symbols = append(symbols, current.String())
		}
		current.Reset()
	}

	for _, c := range line {
		if c == negationMarker {
			flush()
			collecting = true
			continue
		}
		if !collecting {
			continue
		}
		if isSymbolChar(c) {
			current.WriteRune(c)
			continue
		}
		flush()
		collecting = false
	}
	flush()

	return symbols
}

// notConverter carries the state of one negation pass.
type notConverter struct {
	counter   int
	defined   map[string]struct{}
	inverters int
}

func newNotConverter() *notConverter {
	return &notConverter{defined: make(map[string]struct{})}
}

// convertLine returns the output lines for line: zero or more inverter
// declarations followed by the line with its markers replaced.
func (nc *notConverter) convertLine(line string) []string {
	if !strings.ContainsRune(line, negationMarker) {
		return []string{line}
	}
	rewritten := strings.ReplaceAll(line, string(negationMarker), inverterPrefix)

	symbols := negatedSymbols(line)
	if len(symbols) == 0 {
		return []string{rewritten}
	}
	nc.counter++
	indent := Indent(rewritten)

	out := make([]string, 0, len(symbols)+1)
	for _, sym := range symbols {
		if _, ok := nc.defined[sym]; ok {
			continue
		}
		nc.defined[sym] = struct{}{}
		nc.inverters++
		out = append(out, inverterLine(indent, nc.counter, sym))
	}
	return append(out, rewritten)
}

func inverterLine(indent string, n int, sym string) string {
	return indent + inverterGate + "_" + strconv.Itoa(n) + " (" + inverterPrefix + sym + ", " + sym + ");"
}

// ConvertNots declares an inverter for every distinct negated symbol right
// before the first line negating it, and rewrites every `~` to `N`.
// All inverters declared for one line share that line's counter value.
// The counter only advances on lines with at least one negated symbol.
func ConvertNots(doc []string) []string {
	nc := newNotConverter()
	out := make([]string, 0, len(doc))
	for _, line := range doc {
		out = append(out, nc.convertLine(line)...)
	}
	return out
}
