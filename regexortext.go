package argline

import (
	"regexp"
	"strings"
)

// RegexOrText holds either literal text or a regular expression against which
// argument values are matched. Both case variants are prepared when the value
// is created, so matching itself never fails.
//
// The zero value matches the empty string as literal text.
type RegexOrText struct {
	text    string
	isRegex bool

	overrideCaseSensitive    bool
	hasOverrideCaseSensitive bool

	upperText     string
	re            *regexp.Regexp
	insensitiveRe *regexp.Regexp
}

// NewText creates a RegexOrText matching the given literal text.
func NewText(text string) RegexOrText {
	return RegexOrText{
		text:      text,
		upperText: strings.ToUpper(text),
	}
}

// NewRegex creates a RegexOrText matching the given regular expression. This
// is the only fallible construction path: the pattern is compiled here, in
// both case sensitive and case insensitive form.
func NewRegex(pattern string) (RegexOrText, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return RegexOrText{}, err
	}
	insensitiveRe, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return RegexOrText{}, err
	}
	return RegexOrText{
		text:          pattern,
		isRegex:       true,
		re:            re,
		insensitiveRe: insensitiveRe,
	}, nil
}

// MustRegex is like NewRegex but panics if the pattern does not compile. Use
// for patterns known valid at compile time.
func MustRegex(pattern string) RegexOrText {
	rt, err := NewRegex(pattern)
	if err != nil {
		panic(err)
	}
	return rt
}

// Text returns the literal text or the regular expression source.
func (rt *RegexOrText) Text() string {
	return rt.text
}

// IsRegex reports whether the value matches as a regular expression.
func (rt *RegexOrText) IsRegex() bool {
	return rt.isRegex
}

// WithCaseSensitivity returns a copy whose case sensitivity overrides the
// parser-wide setting passed to IsMatch.
func (rt RegexOrText) WithCaseSensitivity(caseSensitive bool) RegexOrText {
	rt.overrideCaseSensitive = caseSensitive
	rt.hasOverrideCaseSensitive = true
	return rt
}

// OverrideCaseSensitive returns the override and whether one is set.
func (rt *RegexOrText) OverrideCaseSensitive() (caseSensitive bool, ok bool) {
	return rt.overrideCaseSensitive, rt.hasOverrideCaseSensitive
}

// IsMatch reports whether value matches. caseSensitive is the parser-wide
// setting for the field being matched; a per-value override takes precedence.
func (rt *RegexOrText) IsMatch(value string, caseSensitive bool) bool {
	if rt.hasOverrideCaseSensitive {
		caseSensitive = rt.overrideCaseSensitive
	}
	if rt.isRegex {
		if caseSensitive {
			return rt.re.MatchString(value)
		}
		return rt.insensitiveRe.MatchString(value)
	}
	if caseSensitive {
		return rt.text == value
	}
	return rt.upperText == strings.ToUpper(value)
}
