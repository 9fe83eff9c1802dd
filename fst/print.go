package fst

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"
)

// String returns a prettified, line-oriented dump of the FST suitable for
// line-by-line comparison in tests. Two FSTs built from the same
// construction sequence produce identical String() output regardless of
// map iteration order, since states and arcs are always sorted first.
func (f FST) String() string {
	return f.StringWithWrap(76)
}

// StringWithWrap is String with the arc-line wrap column configurable,
// so a caller such as the fstc shell can honor a configured print
// width instead of the package default.
func (f FST) StringWithWrap(wrapWidth int) string {
	var sb strings.Builder

	sb.WriteString("FST\n")
	fmt.Fprintf(&sb, " START: %d\n", f.Start)

	finals := f.Final.Sorted()
	finalStrs := make([]string, len(finals))
	for i, st := range finals {
		finalStrs[i] = fmt.Sprintf("%d", st)
	}
	fmt.Fprintf(&sb, " FINAL: {%s}\n", strings.Join(finalStrs, ", "))

	syms := make([]string, 0, len(f.Alphabet))
	for s := range f.Alphabet {
		syms = append(syms, s.String())
	}
	sort.Strings(syms)
	fmt.Fprintf(&sb, " SIGMA: {%s}\n", strings.Join(syms, ", "))

	arcLines := make([]string, len(f.Arcs))
	for i, a := range f.Arcs {
		arcLines[i] = fmt.Sprintf("(%d, %s, %d, %s)", a.From, a.In, a.To, a.Out)
	}
	sort.Strings(arcLines)

	const arcStart = " D: "
	for i, line := range arcLines {
		wrapped := rosed.Edit(line).Wrap(wrapWidth).String()
		sb.WriteString(arcStart)
		sb.WriteString(spaceIndentNewlines(wrapped, len(arcStart)))
		if i+1 < len(arcLines) {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

func spaceIndentNewlines(str string, amount int) string {
	if strings.Contains(str, "\n") {
		pad := " "
		for len(pad) < amount {
			pad += " "
		}
		str = strings.ReplaceAll(str, "\n", "\n"+pad)
	}
	return str
}
