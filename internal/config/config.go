package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gitrs/internal/apperr"
)

const defaultConfigPath = "~/.gitrsrc"

// Name identifies an option (spec §3 "Options").
type Name string

const (
	Git             Name = "git"
	Clipboard       Name = "clipboard"
	ScrollOff       Name = "scrolloff"
	ScrollStep      Name = "scroll_step"
	SmartCase       Name = "smart_case"
	MenuBar         Name = "menu_bar"
	DefaultMappings Name = "default_mappings"
	DefaultButtons  Name = "default_buttons"
)

// Options is the process-wide, read-mostly store of typed option values
// (spec §3). It is mutated only by the configuration parser, and only on
// the UI thread between event dispatches (spec §5) — no locking is
// required.
type Options struct {
	values map[Name]any
}

// defaults returns the platform-appropriate default option values (spec
// §6 "Environment": the VCS binary and clipboard helper names come from
// options, not the environment, with platform-appropriate defaults).
func defaults() map[Name]any {
	return map[Name]any{
		Git:             "git",
		Clipboard:       defaultClipboardHelper(),
		ScrollOff:       2,
		ScrollStep:      1,
		SmartCase:       true,
		MenuBar:         true,
		DefaultMappings: true,
		DefaultButtons:  true,
	}
}

func defaultClipboardHelper() string {
	if runtime.GOOS == "darwin" {
		return "pbcopy"
	}
	return "xclip -selection clipboard"
}

// New returns an Options store populated with defaults.
func New() *Options {
	return &Options{values: defaults()}
}

// Git returns the configured VCS executable name, the value of %(git).
func (o *Options) Git() string { return o.str(Git) }

// Clip returns the configured clipboard helper command, the value of
// %(clip) (spec §3 "Options", §4.4). Like the `git` option, this is the
// name of an external program — spec §6 routes all clipboard interaction
// through a subprocess reading stdin, never a direct platform API, so
// resolving %(clip) is a plain option lookup, not a clipboard read.
func (o *Options) Clip() string { return o.str(Clipboard) }

func (o *Options) str(n Name) string {
	v, ok := o.values[n]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Int returns an integer option's value (ScrollOff, ScrollStep).
func (o *Options) Int(n Name) int {
	v, ok := o.values[n]
	if !ok {
		return 0
	}
	i, _ := v.(int)
	return i
}

// Bool returns a boolean option's value (SmartCase, MenuBar,
// DefaultMappings, DefaultButtons).
func (o *Options) Bool(n Name) bool {
	v, ok := o.values[n]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

type kind int

const (
	kindString kind = iota
	kindInt
	kindBool
)

var optionKinds = map[Name]kind{
	Git:             kindString,
	Clipboard:       kindString,
	ScrollOff:       kindInt,
	ScrollStep:      kindInt,
	SmartCase:       kindBool,
	MenuBar:         kindBool,
	DefaultMappings: kindBool,
	DefaultButtons:  kindBool,
}

// Set validates and assigns value (the textual form from a `set` directive
// or `:set` command) to option name. An invalid name raises UNKNOWN_OPTION;
// an invalid value for a known option raises OPTION_VALUE and leaves the
// previous value in place (spec §3 invariant, §7).
func (o *Options) Set(name, value string) error {
	n := Name(name)
	k, ok := optionKinds[n]
	if !ok {
		return apperr.New(apperr.UnknownOption, "unknown option %q", name)
	}
	switch k {
	case kindString:
		o.values[n] = value
	case kindInt:
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return apperr.Wrap(apperr.OptionValue, err, "option %q expects an integer, got %q", name, value)
		}
		o.values[n] = i
	case kindBool:
		b, ok := parseBool(value)
		if !ok {
			return apperr.New(apperr.OptionValue, "option %q expects true/false, got %q", name, value)
		}
		o.values[n] = b
	}
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
