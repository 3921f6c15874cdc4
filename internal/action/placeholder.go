package action

import (
	"regexp"
	"strconv"

	"gitrs/internal/apperr"
)

// Item is the minimal surface a focused view item must expose to resolve
// placeholders against it (spec §3 "View state", §4.5). Accessors return
// ok=false when the placeholder is "not applicable" for this item — that is
// never silently substituted as an empty string (spec invariant).
type Item interface {
	Rev() (string, bool)
	File() (string, bool)
	Line() (int, bool)
	Text() (string, bool)
}

// Options is the minimal surface of the option store the resolver needs for
// %(git) and %(clip). Both are plain option lookups — the configured VCS
// executable name and the configured clipboard helper name — not I/O, so
// that Resolve stays a pure function of (template, item, options) as spec
// §3/§8 requires.
type Options interface {
	Git() string
	Clip() string
}

var placeholderRe = regexp.MustCompile(`%\(([a-z]+)\)`)

// Resolve substitutes every %(name) occurrence in template against item and
// opts, pure as required by spec §3/§8. It returns PLACEHOLDER_UNAVAILABLE
// before any subprocess would be spawned if a referenced placeholder has no
// value.
func Resolve(template string, item Item, opts Options) (string, error) {
	var firstErr error
	result := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		if firstErr != nil {
			return ""
		}
		name := m[2 : len(m)-1]
		val, err := resolveOne(name, item, opts)
		if err != nil {
			firstErr = err
			return ""
		}
		return val
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

func resolveOne(name string, item Item, opts Options) (string, error) {
	switch name {
	case "rev":
		if item == nil {
			return "", unavailable(name)
		}
		if v, ok := item.Rev(); ok && v != "" {
			return v, nil
		}
		return "", unavailable(name)
	case "file":
		if item == nil {
			return "", unavailable(name)
		}
		if v, ok := item.File(); ok && v != "" {
			return v, nil
		}
		return "", unavailable(name)
	case "line":
		if item == nil {
			return "", unavailable(name)
		}
		if v, ok := item.Line(); ok {
			return strconv.Itoa(v), nil
		}
		return "", unavailable(name)
	case "text":
		if item == nil {
			return "", unavailable(name)
		}
		if v, ok := item.Text(); ok && v != "" {
			return v, nil
		}
		return "", unavailable(name)
	case "git":
		if opts == nil {
			return "", unavailable(name)
		}
		if v := opts.Git(); v != "" {
			return v, nil
		}
		return "", unavailable(name)
	case "clip":
		if opts == nil {
			return "", unavailable(name)
		}
		if v := opts.Clip(); v != "" {
			return v, nil
		}
		return "", unavailable(name)
	default:
		return "", apperr.New(apperr.PlaceholderUnavailable, "unknown placeholder %%(%s)", name)
	}
}

func unavailable(name string) error {
	return apperr.New(apperr.PlaceholderUnavailable, "%%(%s) is not applicable to the focused item", name)
}

// ReferencedPlaceholders returns the distinct placeholder names mentioned in
// template, in first-occurrence order.
func ReferencedPlaceholders(template string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
