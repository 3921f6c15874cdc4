package subprocess

// Argv splits a resolved shell template into whitespace-separated argv
// entries, treating single- and double-quoted substrings as one literal
// entry even when they contain spaces (spec §4.4 "Constructing the
// command line by shell expansion ... whitespace-separated argv, with
// single- and double-quoted substrings preserved literally"). This is
// intentionally not a full shell grammar — no globbing, no variable
// expansion, no pipes — matching the same restrained tokenizer
// internal/config uses for its directive grammar.
func Argv(template string) []string {
	var argv []string
	var cur []rune
	has := false
	flush := func() {
		if has {
			argv = append(argv, string(cur))
			cur = cur[:0]
			has = false
		}
	}
	runes := []rune(template)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			flush()
			i++
		case r == '\'' || r == '"':
			quote := r
			i++
			has = true
			for i < len(runes) && runes[i] != quote {
				cur = append(cur, runes[i])
				i++
			}
			if i < len(runes) {
				i++ // consume closing quote
			}
		default:
			has = true
			cur = append(cur, r)
			i++
		}
	}
	flush()
	return argv
}
