package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gitrs/internal/action"
	"gitrs/internal/apperr"
	"gitrs/internal/keymap"
	"gitrs/internal/token"
)

// Target bundles the mutable state a configuration line can affect: the
// keymap registry, the button registry, and the option store (spec §4.3).
type Target struct {
	Bindings *keymap.Registry
	Buttons  *keymap.ButtonRegistry
	Options  *Options
}

// Load reads path (or "~/.gitrsrc" if path is empty), applying every line in
// order via ApplyLine. A missing file is not an error — defaults stand
// alone. Malformed lines are collected and returned, not raised as fatal
// (spec §4.3 "errors are accumulated and reported non-fatally").
func Load(path string, target Target) []error {
	resolved, err := resolveConfigPath(path)
	if err != nil {
		return []error{err}
	}

	f, err := os.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("open config: %w", err)}
	}
	defer f.Close()

	var errs []error
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ApplyLine(scanner.Text(), target); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read config: %w", err))
	}
	return errs
}

// ApplyLine parses and applies a single configuration line — the shared
// grammar used both for "~/.gitrsrc" lines and for "`:`-typed commands"
// (spec §4.3, §4.6). Comments (starting with `#`) and blank lines are
// silently skipped.
func ApplyLine(line string, target Target) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	fields := splitDirective(trimmed)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "map":
		return applyMap(fields[1:], target)
	case "button":
		return applyButton(fields[1:], target)
	case "set":
		return applySet(fields[1:], target)
	default:
		return apperr.New(apperr.ConfigSyntax, "unknown directive %q", fields[0])
	}
}

// splitDirective splits on runs of whitespace but keeps a single quoted
// label (for `button`) intact as one field.
func splitDirective(line string) []string {
	var fields []string
	i := 0
	n := len(line)
	for i < n {
		for i < n && isSpace(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		if line[i] == '"' || line[i] == '\'' {
			quote := line[i]
			j := i + 1
			for j < n && line[j] != quote {
				j++
			}
			fields = append(fields, line[i+1:min(j, n)])
			i = j + 1
			continue
		}
		j := i
		for j < n && !isSpace(line[j]) {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func applyMap(fields []string, target Target) error {
	if len(fields) < 3 {
		return apperr.New(apperr.ConfigSyntax, "map requires <scope> <tokens> <action>")
	}
	scope := keymap.Scope(fields[0])
	seq, err := parseSequence(fields[1])
	if err != nil {
		return err
	}
	act, err := parseAction(strings.Join(fields[2:], " "))
	if err != nil {
		return err
	}
	if err := target.Bindings.Bind(scope, seq, act); err != nil {
		return apperr.Wrap(apperr.ConfigPrefixConflict, err, "binding %s in scope %s", fields[1], scope)
	}
	return nil
}

func applyButton(fields []string, target Target) error {
	if len(fields) < 3 {
		return apperr.New(apperr.ConfigSyntax, "button requires <scope> <label> <action>")
	}
	scope := keymap.Scope(fields[0])
	label := fields[1]
	act, err := parseAction(strings.Join(fields[2:], " "))
	if err != nil {
		return err
	}
	target.Buttons.Add(scope, label, act)
	return nil
}

func applySet(fields []string, target Target) error {
	if len(fields) != 2 {
		return apperr.New(apperr.ConfigSyntax, "set requires <option> <value>")
	}
	return target.Options.Set(fields[0], fields[1])
}

// parseSequence tokenizes a `<tokens>` field: a concatenation of printable
// characters and angle-bracketed specials with no intervening spaces (spec
// §4.3).
func parseSequence(s string) ([]token.Token, error) {
	var seq []token.Token
	rest := s
	for rest != "" {
		tok, next, ok := token.Parse(rest)
		if !ok {
			return nil, apperr.New(apperr.ConfigSyntax, "malformed token sequence %q", s)
		}
		seq = append(seq, tok)
		rest = next
	}
	if len(seq) == 0 {
		return nil, apperr.New(apperr.ConfigSyntax, "empty token sequence")
	}
	return seq, nil
}

// parseAction parses an `<action>` field: a built-in verb name, or a shell
// template beginning with `!`, `>`, or `@` (spec §4.3, §3 "Action").
func parseAction(s string) (action.Action, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return action.Action{}, apperr.New(apperr.ConfigSyntax, "empty action")
	}
	switch s[0] {
	case '!':
		return action.Shell(action.Wait, strings.TrimSpace(s[1:])), nil
	case '>':
		return action.Shell(action.WaitAndExit, strings.TrimSpace(s[1:])), nil
	case '@':
		return action.Shell(action.Background, strings.TrimSpace(s[1:])), nil
	default:
		b, ok := action.ParseBuiltin(s)
		if !ok {
			return action.Action{}, apperr.New(apperr.UnknownBuiltin, "unknown builtin %q", s)
		}
		return action.Of(b), nil
	}
}
