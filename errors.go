package argline

import (
	"fmt"
	"strings"
)

// ParseErrorKind identifies the reason a parse failed. The set is closed;
// every failure maps to exactly one kind.
type ParseErrorKind int

const (
	QuotedParamNotFollowedByWhitespace ParseErrorKind = iota
	NoMatchForOptionWithValue
	QuotedOptionValueNotFollowedByWhitespace
	EscapeCharAtEndOfLine
	EscapedCharInOptionValueCannotBeEscaped
	EscapeCharAtEndOfOptionValue
	ParamMissingClosingQuote
	EscapedCharInParamCannotBeEscaped
	EscapeCharAtEndOfParam
	OptionCodeMissingDoubleAnnouncer
	OptionCodeCannotContainQuoteChar
	OptionCodeCannotContainEscapeChar
	OptionMissingValue
	OptionValueCannotStartWithAnnouncer
	OptionValueMissingClosingQuote
	UnmatchedOption
	UnmatchedParam
)

var parseErrorKindTexts = map[ParseErrorKind]string{
	QuotedParamNotFollowedByWhitespace:       "Quoted parameter not followed by whitespace",
	NoMatchForOptionWithValue:                "No match for option with value",
	QuotedOptionValueNotFollowedByWhitespace: "Quoted option value not followed by whitespace",
	EscapeCharAtEndOfLine:                    "Escape character at end of line",
	EscapedCharInOptionValueCannotBeEscaped:  "Escaped character in option value cannot be escaped",
	EscapeCharAtEndOfOptionValue:             "Escape character at end of option value",
	ParamMissingClosingQuote:                 "Parameter missing closing quote character",
	EscapedCharInParamCannotBeEscaped:        "Escaped character in parameter cannot be escaped",
	EscapeCharAtEndOfParam:                   "Escape character at end of parameter",
	OptionCodeMissingDoubleAnnouncer:         "Option code missing double announcer",
	OptionCodeCannotContainQuoteChar:         "Option code cannot contain quote character",
	OptionCodeCannotContainEscapeChar:        "Option code cannot contain escape character",
	OptionMissingValue:                       "Option missing value",
	OptionValueCannotStartWithAnnouncer:      "Option value cannot start with option announcer character",
	OptionValueMissingClosingQuote:           "Option value missing closing quote character",
	UnmatchedOption:                          "Option not matched",
	UnmatchedParam:                           "Parameter not matched",
}

// Text returns the human readable description of the kind.
func (k ParseErrorKind) Text() string {
	if text, ok := parseErrorKindTexts[k]; ok {
		return text
	}
	return fmt.Sprintf("Unknown parse error (%d)", int(k))
}

func (k ParseErrorKind) String() string {
	return k.Text()
}

// ParseError reports the first failure encountered while parsing. Parsing is
// fail fast: no further input is consumed after the failing character.
//
// CharIndex is the index of the character being processed when the failure
// was detected. For pre-split arguments it is approximate: characters are
// counted across all arguments with one synthetic character per boundary.
type ParseError struct {
	Kind      ParseErrorKind
	CharIndex int
	ArgIndex  int
	// Option is true when the failure happened while an option was being
	// parsed. OptionIndex and OptionCode are then meaningful; otherwise
	// ParamIndex and ParamValueText are.
	Option         bool
	OptionIndex    int
	OptionCode     string
	ParamIndex     int
	ParamValueText string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(e.Kind.Text())
	b.WriteString(") [l:")
	fmt.Fprintf(&b, "%d a:%d", e.CharIndex, e.ArgIndex)
	if e.Option {
		fmt.Fprintf(&b, " o:%d c:\"%s\"", e.OptionIndex, e.OptionCode)
	} else {
		fmt.Fprintf(&b, " p:%d t:\"%s\"", e.ParamIndex, e.ParamValueText)
	}
	b.WriteByte(']')
	return b.String()
}
