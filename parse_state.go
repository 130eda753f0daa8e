package argline

import (
	"strings"
	"unicode"
)

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// parseState is the transient state of one parse. It is created by the parse
// entry points and discarded when they return, so a Parser carries no state
// between parses.
type parseState struct {
	multiCharOptionCodeRequiresDoubleAnnouncer bool

	argState    argParseState
	optionState optionParseState

	// lineOrEnvArgCharIdx counts characters within the line, or within the
	// current pre-split argument.
	lineOrEnvArgCharIdx int
	// envLineApproxCharIdx counts characters across the whole input, with
	// one synthetic character per pre-split argument boundary. For a line
	// parse it tracks lineOrEnvArgCharIdx exactly.
	envLineApproxCharIdx int
	envArgIdx            int

	argStartCharIdx              int
	argStartEnvLineApproxCharIdx int

	argQuoteChar        rune
	optionAnnouncerChar rune
	valueQuoted         bool

	optionCodeRunes []rune
	optionCode      string

	optionValueAnnouncerIsAmbiguous bool
	currentOptionValueMayBeParam    bool
	currentParamIsBinary            bool

	valueBldr strings.Builder

	argCount    int
	optionCount int
	paramCount  int
}

func newParseState(firstArgIsBinary, multiCharOptionCodeRequiresDoubleAnnouncer bool) *parseState {
	state := &parseState{
		multiCharOptionCodeRequiresDoubleAnnouncer: multiCharOptionCodeRequiresDoubleAnnouncer,
	}
	if firstArgIsBinary {
		state.argState = argStateWaitBinary
	} else {
		state.argState = argStateWaitOptionOrParam
	}
	return state
}

// setOptionCode derives the option code from the accumulated code runes,
// stripping the second announcer when double announcing is configured.
// A multi character code without its second announcer is an error.
func (s *parseState) setOptionCode() error {
	raw := s.optionCodeRunes
	if !s.multiCharOptionCodeRequiresDoubleAnnouncer || len(raw) == 0 {
		s.optionCode = string(raw)
		return nil
	}
	if raw[0] == s.optionAnnouncerChar {
		s.optionCode = string(raw[1:])
		return nil
	}
	s.optionCode = string(raw)
	if len(raw) > 1 {
		return s.newOptionError(OptionCodeMissingDoubleAnnouncer)
	}
	return nil
}

func (s *parseState) newOptionError(kind ParseErrorKind) error {
	return &ParseError{
		Kind:        kind,
		CharIndex:   s.envLineApproxCharIdx,
		ArgIndex:    s.argCount,
		Option:      true,
		OptionIndex: s.optionCount,
		OptionCode:  s.optionCode,
	}
}

func (s *parseState) newParamError(kind ParseErrorKind) error {
	return &ParseError{
		Kind:           kind,
		CharIndex:      s.envLineApproxCharIdx,
		ArgIndex:       s.argCount,
		ParamIndex:     s.paramCount,
		ParamValueText: s.valueBldr.String(),
	}
}
