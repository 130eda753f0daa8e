package argline

// OptionHasValue declares whether an option matched by a matcher carries a
// value.
type OptionHasValue int

const (
	// OptionValueNever matches options without a value.
	OptionValueNever OptionHasValue = iota
	// OptionValueIfPossible matches options with or without a value. When the
	// value announcer was whitespace, a trailing token is only tentatively
	// treated as the option's value and may be reclassified as a parameter.
	OptionValueIfPossible
	// OptionValueAlways only matches options which have a value.
	OptionValueAlways
)

// MatchArgType restricts a matcher to one kind of argument.
type MatchArgType int

const (
	// MatchArgTypeAny matches both options and parameters.
	MatchArgTypeAny MatchArgType = iota
	// MatchArgTypeOption matches options only.
	MatchArgTypeOption
	// MatchArgTypeParam matches parameters only.
	MatchArgTypeParam
)

// EscapableLogicalChar identifies a class of characters which may follow the
// escape character.
type EscapableLogicalChar int

const (
	EscapableEscape EscapableLogicalChar = iota
	EscapableQuote
	EscapableWhitespace
	EscapableOptionAnnouncer
	EscapableOptionValueAnnouncer
	// EscapableAll makes every character escapable.
	EscapableAll
)

// NoEscapeChar disables escaping when assigned with SetEscapeChar.
const NoEscapeChar rune = 0

// Defaults applied by New and SetLineDefaults. Suitable for parsing a full
// command line typed by a user.
var (
	DefaultLineQuoteChars                = []rune{'"'}
	DefaultLineOptionAnnouncerChars      = []rune{'-'}
	DefaultLineOptionValueAnnouncerChars = []rune{' '}
	DefaultLineEscapableLogicalChars     = []EscapableLogicalChar{EscapableEscape, EscapableQuote}
)

const (
	DefaultLineEmbedQuoteCharWithDouble = true
	DefaultLineFirstArgIsBinary         = true
)

// Defaults applied by NewEnvArgs and SetEnvArgsDefaults. Suitable for parsing
// arguments already split by the operating system shell, such as os.Args.
var (
	DefaultEnvArgsQuoteChars                = []rune{}
	DefaultEnvArgsOptionAnnouncerChars      = []rune{'-'}
	DefaultEnvArgsOptionValueAnnouncerChars = []rune{' '}
	DefaultEnvArgsEscapableLogicalChars     = []EscapableLogicalChar{EscapableEscape, EscapableQuote}
)

const (
	DefaultEnvArgsEmbedQuoteCharWithDouble = false
	DefaultEnvArgsFirstArgIsBinary         = true
)

// argParseState is the outer machine driving argument recognition.
type argParseState int

const (
	argStateWaitBinary argParseState = iota
	argStateWaitOptionOrParam
	argStateInParam
	argStateInParamPossibleEndQuote
	argStateInParamEscaped
	argStateInOption
)

// optionParseState is the inner machine, active while the outer machine is in
// argStateInOption.
type optionParseState int

const (
	optionStateInCode optionParseState = iota
	optionStateWaitOptionValue
	optionStateInValue
	optionStateInValuePossibleEndQuote
	optionStateInValueEscaped
)

// valueAnnounced records how the transition out of an option code happened.
type valueAnnounced int

const (
	valueAnnouncedDefinitely valueAnnounced = iota
	valueAnnouncedAmbiguous
	valueAnnouncedNot
)

// optionValueVerdict is a matcher's opinion on whether the token after a
// value announcer belongs to the option.
type optionValueVerdict int

const (
	verdictMustNot optionValueVerdict = iota
	verdictPossibly
	verdictMust
)

// envChar is one unit fed to the state machine. A separator stands in for
// the boundary between two pre-split arguments.
type envChar struct {
	r         rune
	separator bool
}

// nonWhitespace returns the rune when it should be treated as payload.
// Separators and whitespace runes report ok false.
func (c envChar) nonWhitespace() (rune, bool) {
	if c.separator || isWhitespace(c.r) {
		return 0, false
	}
	return c.r, true
}
