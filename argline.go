// Copyright 2024-2026, Ferris Aldaine. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package argline parses and classifies command lines and pre-split argument
// arrays into a binary name, options and positional parameters.
//
// A Parser is configured with the characters which announce options, announce
// option values, quote values and escape characters, then given a registry of
// matchers which classify each recognized argument. Parsing is a single pass
// over the input; the first matcher whose filters all pass claims each
// argument and supplies its application tag.
//
//	type cmdOption int
//	const (
//		optVerbose cmdOption = iota
//		optOutput
//	)
//
//	parser := argline.New[cmdOption, int]()
//	verbose := parser.NewOptionMatcher("verbose")
//	verbose.OptionTag = optVerbose
//	verbose.OptionCodes = []argline.RegexOrText{argline.NewText("v")}
//	output := parser.NewOptionMatcher("output")
//	output.OptionTag = optOutput
//	output.OptionCodes = []argline.RegexOrText{argline.NewText("o")}
//	output.OptionHasValue = argline.OptionValueAlways
//	parser.NewParamMatcher("param")
//
//	args, err := parser.ParseLine(`tool -v -o "out dir" input.txt`)
//
// With an empty registry every argument matches, which suits callers which
// only want tokenization with quoting, escaping and option recognition.
package argline

import "os"

// Parser parses command lines or pre-split argument arrays. The generic
// parameters O and P are the application tag types carried by option and
// parameter matchers.
//
// A Parser holds no state between parses, so a configured Parser may be
// reused. It must not be reconfigured concurrently with a parse.
type Parser[O, P any] struct {
	quoteChars                                 []rune
	optionAnnouncerChars                       []rune
	optionCodesCaseSensitive                   bool
	multiCharOptionCodeRequiresDoubleAnnouncer bool
	optionValueAnnouncerChars                  []rune
	optionValuesCaseSensitive                  bool
	paramsCaseSensitive                        bool
	embedQuoteCharWithDouble                   bool
	escapeChar                                 rune
	escapableLogicalChars                      []EscapableLogicalChar
	escapableChars                             []rune
	parseTerminateChars                        []rune
	firstArgIsBinary                           bool

	matchers []*Matcher[O, P]
	// anyMatcher claims binary arguments and, when the registry is empty,
	// every other argument.
	anyMatcher Matcher[O, P]
}

// New returns a parser configured with line defaults, suitable for parsing a
// full command line typed by a user.
func New[O, P any]() *Parser[O, P] {
	p := &Parser[O, P]{}
	return p.SetLineDefaults()
}

// NewEnvArgs returns a parser configured with defaults suitable for parsing
// arguments already split by the operating system shell, such as os.Args.
func NewEnvArgs[O, P any]() *Parser[O, P] {
	p := &Parser[O, P]{}
	return p.SetEnvArgsDefaults()
}

// SetLineDefaults resets all configuration, but not the matcher registry, to
// line defaults. Quoting with an embedded double quote is enabled and
// escaping is disabled.
func (p *Parser[O, P]) SetLineDefaults() *Parser[O, P] {
	p.quoteChars = append([]rune(nil), DefaultLineQuoteChars...)
	p.optionAnnouncerChars = append([]rune(nil), DefaultLineOptionAnnouncerChars...)
	p.optionCodesCaseSensitive = false
	p.multiCharOptionCodeRequiresDoubleAnnouncer = false
	p.optionValueAnnouncerChars = append([]rune(nil), DefaultLineOptionValueAnnouncerChars...)
	p.optionValuesCaseSensitive = false
	p.paramsCaseSensitive = false
	p.embedQuoteCharWithDouble = DefaultLineEmbedQuoteCharWithDouble
	p.escapeChar = NoEscapeChar
	p.escapableLogicalChars = append([]EscapableLogicalChar(nil), DefaultLineEscapableLogicalChars...)
	p.escapableChars = nil
	p.parseTerminateChars = nil
	p.firstArgIsBinary = DefaultLineFirstArgIsBinary
	return p
}

// SetEnvArgsDefaults resets all configuration, but not the matcher registry,
// to pre-split argument defaults. The shell has already resolved quoting, so
// quote characters and quote embedding are disabled.
func (p *Parser[O, P]) SetEnvArgsDefaults() *Parser[O, P] {
	p.quoteChars = append([]rune(nil), DefaultEnvArgsQuoteChars...)
	p.optionAnnouncerChars = append([]rune(nil), DefaultEnvArgsOptionAnnouncerChars...)
	p.optionCodesCaseSensitive = false
	p.multiCharOptionCodeRequiresDoubleAnnouncer = false
	p.optionValueAnnouncerChars = append([]rune(nil), DefaultEnvArgsOptionValueAnnouncerChars...)
	p.optionValuesCaseSensitive = false
	p.paramsCaseSensitive = false
	p.embedQuoteCharWithDouble = DefaultEnvArgsEmbedQuoteCharWithDouble
	p.escapeChar = NoEscapeChar
	p.escapableLogicalChars = append([]EscapableLogicalChar(nil), DefaultEnvArgsEscapableLogicalChars...)
	p.escapableChars = nil
	p.parseTerminateChars = nil
	p.firstArgIsBinary = DefaultEnvArgsFirstArgIsBinary
	return p
}

// QuoteChars returns the characters which may quote a value.
func (p *Parser[O, P]) QuoteChars() []rune { return p.quoteChars }

// SetQuoteChars sets the characters which may quote a value. A value is
// quoted when its first character is one of these; the same character must
// close it.
func (p *Parser[O, P]) SetQuoteChars(chars ...rune) *Parser[O, P] {
	p.quoteChars = chars
	return p
}

// OptionAnnouncerChars returns the characters which announce an option.
func (p *Parser[O, P]) OptionAnnouncerChars() []rune { return p.optionAnnouncerChars }

// SetOptionAnnouncerChars sets the characters which announce an option at the
// start of an argument.
func (p *Parser[O, P]) SetOptionAnnouncerChars(chars ...rune) *Parser[O, P] {
	p.optionAnnouncerChars = chars
	return p
}

// OptionCodesCaseSensitive reports whether option codes match matchers case
// sensitively.
func (p *Parser[O, P]) OptionCodesCaseSensitive() bool { return p.optionCodesCaseSensitive }

// SetOptionCodesCaseSensitive sets whether option codes match matchers case
// sensitively.
func (p *Parser[O, P]) SetOptionCodesCaseSensitive(value bool) *Parser[O, P] {
	p.optionCodesCaseSensitive = value
	return p
}

// MultiCharOptionCodeRequiresDoubleAnnouncer reports whether option codes
// longer than one character need a doubled announcer.
func (p *Parser[O, P]) MultiCharOptionCodeRequiresDoubleAnnouncer() bool {
	return p.multiCharOptionCodeRequiresDoubleAnnouncer
}

// SetMultiCharOptionCodeRequiresDoubleAnnouncer sets whether option codes
// longer than one character need a doubled announcer, as in "--verbose"
// versus "-v".
func (p *Parser[O, P]) SetMultiCharOptionCodeRequiresDoubleAnnouncer(value bool) *Parser[O, P] {
	p.multiCharOptionCodeRequiresDoubleAnnouncer = value
	return p
}

// OptionValueAnnouncerChars returns the characters which separate an option
// code from its value.
func (p *Parser[O, P]) OptionValueAnnouncerChars() []rune { return p.optionValueAnnouncerChars }

// SetOptionValueAnnouncerChars sets the characters which separate an option
// code from its value. A whitespace announcer is ambiguous: the following
// token may instead be a parameter, which matchers resolve.
func (p *Parser[O, P]) SetOptionValueAnnouncerChars(chars ...rune) *Parser[O, P] {
	p.optionValueAnnouncerChars = chars
	return p
}

// OptionValuesCaseSensitive reports whether option values match matcher
// value text case sensitively.
func (p *Parser[O, P]) OptionValuesCaseSensitive() bool { return p.optionValuesCaseSensitive }

// SetOptionValuesCaseSensitive sets whether option values match matcher
// value text case sensitively.
func (p *Parser[O, P]) SetOptionValuesCaseSensitive(value bool) *Parser[O, P] {
	p.optionValuesCaseSensitive = value
	return p
}

// ParamsCaseSensitive reports whether parameters match matcher value text
// case sensitively.
func (p *Parser[O, P]) ParamsCaseSensitive() bool { return p.paramsCaseSensitive }

// SetParamsCaseSensitive sets whether parameters match matcher value text
// case sensitively.
func (p *Parser[O, P]) SetParamsCaseSensitive(value bool) *Parser[O, P] {
	p.paramsCaseSensitive = value
	return p
}

// EmbedQuoteCharWithDouble reports whether a doubled quote character inside a
// quoted value embeds one literal quote character.
func (p *Parser[O, P]) EmbedQuoteCharWithDouble() bool { return p.embedQuoteCharWithDouble }

// SetEmbedQuoteCharWithDouble sets whether a doubled quote character inside a
// quoted value embeds one literal quote character.
func (p *Parser[O, P]) SetEmbedQuoteCharWithDouble(value bool) *Parser[O, P] {
	p.embedQuoteCharWithDouble = value
	return p
}

// EscapeChar returns the escape character, or NoEscapeChar when escaping is
// disabled.
func (p *Parser[O, P]) EscapeChar() rune { return p.escapeChar }

// SetEscapeChar sets the escape character. NoEscapeChar disables escaping.
func (p *Parser[O, P]) SetEscapeChar(char rune) *Parser[O, P] {
	p.escapeChar = char
	return p
}

// EscapableLogicalChars returns the classes of characters which may follow
// the escape character.
func (p *Parser[O, P]) EscapableLogicalChars() []EscapableLogicalChar {
	return p.escapableLogicalChars
}

// SetEscapableLogicalChars sets the classes of characters which may follow
// the escape character.
func (p *Parser[O, P]) SetEscapableLogicalChars(chars ...EscapableLogicalChar) *Parser[O, P] {
	p.escapableLogicalChars = chars
	return p
}

// EscapableChars returns the literal characters which may follow the escape
// character, in addition to the logical classes.
func (p *Parser[O, P]) EscapableChars() []rune { return p.escapableChars }

// SetEscapableChars sets the literal characters which may follow the escape
// character, in addition to the logical classes.
func (p *Parser[O, P]) SetEscapableChars(chars ...rune) *Parser[O, P] {
	p.escapableChars = chars
	return p
}

// ParseTerminateChars returns the characters which stop a parse.
func (p *Parser[O, P]) ParseTerminateChars() []rune { return p.parseTerminateChars }

// SetParseTerminateChars sets the characters which stop a parse when seen
// outside a quoted value. Arguments already recognized are kept; the
// terminator and everything after it are discarded.
func (p *Parser[O, P]) SetParseTerminateChars(chars ...rune) *Parser[O, P] {
	p.parseTerminateChars = chars
	return p
}

// FirstArgIsBinary reports whether the first argument is treated as the
// binary's name.
func (p *Parser[O, P]) FirstArgIsBinary() bool { return p.firstArgIsBinary }

// SetFirstArgIsBinary sets whether the first argument is treated as the
// binary's name. A binary argument bypasses the matcher registry.
func (p *Parser[O, P]) SetFirstArgIsBinary(value bool) *Parser[O, P] {
	p.firstArgIsBinary = value
	return p
}

// Matchers returns the registry in matching order.
func (p *Parser[O, P]) Matchers() []*Matcher[O, P] { return p.matchers }

// AddMatcher appends a matcher to the registry, assigns its index and returns
// it.
func (p *Parser[O, P]) AddMatcher(matcher *Matcher[O, P]) *Matcher[O, P] {
	matcher.index = len(p.matchers)
	p.matchers = append(p.matchers, matcher)
	return matcher
}

// NewMatcher creates a named matcher with no filters, appends it to the
// registry and returns it for further field assignment.
func (p *Parser[O, P]) NewMatcher(name string) *Matcher[O, P] {
	return p.AddMatcher(&Matcher[O, P]{Name: name})
}

// NewOptionMatcher creates a matcher restricted to options, appends it to the
// registry and returns it for further field assignment.
func (p *Parser[O, P]) NewOptionMatcher(name string) *Matcher[O, P] {
	return p.AddMatcher(&Matcher[O, P]{Name: name, ArgType: MatchArgTypeOption})
}

// NewParamMatcher creates a matcher restricted to parameters, appends it to
// the registry and returns it for further field assignment.
func (p *Parser[O, P]) NewParamMatcher(name string) *Matcher[O, P] {
	return p.AddMatcher(&Matcher[O, P]{Name: name, ArgType: MatchArgTypeParam})
}

// FindMatcher returns the first matcher with the given name, or nil.
func (p *Parser[O, P]) FindMatcher(name string) *Matcher[O, P] {
	for _, matcher := range p.matchers {
		if matcher.Name == name {
			return matcher
		}
	}
	return nil
}

// DeleteMatcher removes the first matcher with the given name and reports
// whether one was found. Remaining matchers are reindexed.
func (p *Parser[O, P]) DeleteMatcher(name string) bool {
	for i, matcher := range p.matchers {
		if matcher.Name == name {
			p.DeleteMatcherAt(i)
			return true
		}
	}
	return false
}

// DeleteMatcherAt removes the matcher at the given index. Remaining matchers
// are reindexed.
func (p *Parser[O, P]) DeleteMatcherAt(index int) {
	p.matchers = append(p.matchers[:index], p.matchers[index+1:]...)
	for i := index; i < len(p.matchers); i++ {
		p.matchers[i].index = i
	}
}

// ClearMatchers empties the registry.
func (p *Parser[O, P]) ClearMatchers() {
	p.matchers = nil
}

// ParseLine parses a full command line. On failure the returned error is a
// *ParseError describing the first offending character; no arguments are
// returned.
func (p *Parser[O, P]) ParseLine(line string) (Args[O, P], error) {
	args := make(Args[O, P], 0)
	state := newParseState(p.firstArgIsBinary, p.multiCharOptionCodeRequiresDoubleAnnouncer)
	for _, r := range line {
		more, err := p.processChar(state, envChar{r: r}, &args)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		state.lineOrEnvArgCharIdx++
		state.envLineApproxCharIdx++
	}
	if err := p.finaliseParse(state, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// ParseArgs parses arguments already split by the operating system shell. A
// synthetic whitespace boundary is inserted between consecutive arguments.
// Argument character indices restart at zero for each element; the
// approximate line-wide index accumulates across elements.
func (p *Parser[O, P]) ParseArgs(envArgs []string) (Args[O, P], error) {
	args := make(Args[O, P], 0)
	state := newParseState(p.firstArgIsBinary, p.multiCharOptionCodeRequiresDoubleAnnouncer)
	more := true
	for envArgIdx, envArg := range envArgs {
		if envArgIdx > 0 {
			var err error
			more, err = p.processChar(state, envChar{separator: true}, &args)
			if err != nil {
				return nil, err
			}
			if more {
				state.envLineApproxCharIdx++
			}
		}
		if more {
			state.envArgIdx = envArgIdx
			state.lineOrEnvArgCharIdx = 0
			for _, r := range envArg {
				var err error
				more, err = p.processChar(state, envChar{r: r}, &args)
				if err != nil {
					return nil, err
				}
				if !more {
					break
				}
				state.lineOrEnvArgCharIdx++
				state.envLineApproxCharIdx++
			}
		}
		if !more {
			break
		}
	}
	if err := p.finaliseParse(state, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// ParseEnv parses os.Args.
func (p *Parser[O, P]) ParseEnv() (Args[O, P], error) {
	return p.ParseArgs(os.Args)
}
