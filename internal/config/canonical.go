package config

import (
	"sort"
	"strconv"
	"strings"
)

// OptionNames returns every known option name in sorted order.
func OptionNames() []Name {
	names := make([]Name, 0, len(optionKinds))
	for n := range optionKinds {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Textual returns n's current value in the textual form `set` accepts, the
// inverse of Set's parsing.
func (o *Options) Textual(n Name) string {
	switch optionKinds[n] {
	case kindInt:
		return strconv.Itoa(o.Int(n))
	case kindBool:
		return strconv.FormatBool(o.Bool(n))
	default:
		return o.str(n)
	}
}

// Canonical renders the complete option/binding/button state as a
// configuration document in the same grammar ApplyLine parses: `set` lines
// first (sorted by option name), then `map` lines (sorted by scope and
// sequence), then `button` lines (scope-sorted, insertion order within a
// scope). Applying the result to a fresh Target reproduces the same
// binding and option state, and re-emitting that state yields the
// identical document.
func Canonical(target Target) string {
	var b strings.Builder
	for _, n := range OptionNames() {
		b.WriteString("set ")
		b.WriteString(string(n))
		b.WriteString(" ")
		b.WriteString(quoteIfSpaced(target.Options.Textual(n)))
		b.WriteString("\n")
	}
	for _, bd := range target.Bindings.All() {
		b.WriteString("map ")
		b.WriteString(string(bd.Scope))
		b.WriteString(" ")
		b.WriteString(bd.Sequence)
		b.WriteString(" ")
		b.WriteString(bd.Action.String())
		b.WriteString("\n")
	}
	for _, sb := range target.Buttons.All() {
		b.WriteString("button ")
		b.WriteString(string(sb.Scope))
		b.WriteString(" ")
		b.WriteString(quoteIfSpaced(sb.Button.Label))
		b.WriteString(" ")
		b.WriteString(sb.Button.Action.String())
		b.WriteString("\n")
	}
	return b.String()
}

// quoteIfSpaced wraps s in double quotes when it would otherwise split
// into multiple directive fields (or vanish entirely, for an empty value).
func quoteIfSpaced(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return "\"" + s + "\""
	}
	return s
}
