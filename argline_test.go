package argline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testOption int

const (
	optA testOption = iota
	optB
	optC
)

type testParam int

const (
	firstParam testParam = iota
	secondParam
)

func newDocParser() *Parser[testOption, testParam] {
	parser := New[testOption, testParam]()

	optionA := parser.NewOptionMatcher("optionA")
	optionA.OptionTag = optA
	optionA.OptionCodes = []RegexOrText{NewText("a")}

	optionB := parser.NewOptionMatcher("optionB")
	optionB.OptionTag = optB
	optionB.OptionCodes = []RegexOrText{NewText("b")}
	optionB.OptionHasValue = OptionValueIfPossible

	optionC := parser.NewOptionMatcher("optionC")
	optionC.OptionTag = optC
	optionC.OptionCodes = []RegexOrText{NewText("c")}
	optionC.OptionHasValue = OptionValueAlways

	paramOne := parser.NewParamMatcher("param1")
	paramOne.ParamTag = firstParam
	paramOne.ParamIndices = []int{0}

	paramTwo := parser.NewParamMatcher("param2")
	paramTwo.ParamTag = secondParam
	paramTwo.ParamIndices = []int{1}

	return parser
}

func TestParseLineClassifiesMixedArguments(t *testing.T) {
	parser := newDocParser()
	line := `"binary name" -a "1st ""Param""" -B optValue "param2" -c "C OptValue"`
	args, err := parser.ParseLine(line)
	assert.Nil(t, err, "line should parse without error")
	assert.Equal(t, 6, len(args))

	binary, ok := args[0].(*BinaryArg[testOption, testParam])
	assert.True(t, ok, "first arg should be the binary")
	assert.Equal(t, "binary name", binary.ValueText())
	assert.Equal(t, 0, binary.ArgIndex())
	assert.Equal(t, 0, binary.CharIndex())

	optionArgA, ok := args[1].(*OptionArg[testOption, testParam])
	assert.True(t, ok, "second arg should be option a")
	assert.Equal(t, "a", optionArgA.Code())
	assert.False(t, optionArgA.HasValue())
	assert.Equal(t, optA, optionArgA.Tag())
	assert.Equal(t, 1, optionArgA.ArgIndex())
	assert.Equal(t, 0, optionArgA.OptionIndex())
	assert.Equal(t, 14, optionArgA.CharIndex())

	paramArg1, ok := args[2].(*ParamArg[testOption, testParam])
	assert.True(t, ok, "third arg should be the first param")
	assert.Equal(t, `1st "Param"`, paramArg1.ValueText())
	assert.Equal(t, firstParam, paramArg1.Tag())
	assert.Equal(t, 2, paramArg1.ArgIndex())
	assert.Equal(t, 0, paramArg1.ParamIndex())
	assert.Equal(t, 17, paramArg1.CharIndex())

	optionArgB, ok := args[3].(*OptionArg[testOption, testParam])
	assert.True(t, ok, "fourth arg should be option B")
	assert.Equal(t, "B", optionArgB.Code(), "code keeps the case as typed")
	value, hasValue := optionArgB.Value()
	assert.True(t, hasValue)
	assert.Equal(t, "optValue", value)
	assert.Equal(t, optB, optionArgB.Tag())
	assert.Equal(t, 3, optionArgB.ArgIndex())
	assert.Equal(t, 1, optionArgB.OptionIndex())
	assert.Equal(t, 33, optionArgB.CharIndex())

	paramArg2, ok := args[4].(*ParamArg[testOption, testParam])
	assert.True(t, ok, "fifth arg should be the second param")
	assert.Equal(t, "param2", paramArg2.ValueText())
	assert.Equal(t, secondParam, paramArg2.Tag())
	assert.Equal(t, 1, paramArg2.ParamIndex())
	assert.Equal(t, 45, paramArg2.CharIndex())

	optionArgC, ok := args[5].(*OptionArg[testOption, testParam])
	assert.True(t, ok, "sixth arg should be option c")
	assert.Equal(t, "c", optionArgC.Code())
	value, hasValue = optionArgC.Value()
	assert.True(t, hasValue)
	assert.Equal(t, "C OptValue", value)
	assert.Equal(t, 5, optionArgC.ArgIndex())
	assert.Equal(t, 2, optionArgC.OptionIndex())
	assert.Equal(t, 54, optionArgC.CharIndex())
}

func TestParseLineIsDeterministicAndRepeatable(t *testing.T) {
	parser := newDocParser()
	line := `"binary name" -a "1st ""Param""" -B optValue "param2" -c "C OptValue"`

	first, err := parser.ParseLine(line)
	assert.Nil(t, err)
	second, err := parser.ParseLine(line)
	assert.Nil(t, err)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ArgIndex(), second[i].ArgIndex())
		assert.Equal(t, first[i].CharIndex(), second[i].CharIndex())
		assert.Same(t, first[i].Matcher(), second[i].Matcher())
	}
}

func TestParseArgsTracksPositions(t *testing.T) {
	parser := NewEnvArgs[int, int]()
	envArgs := []string{"binary", "param1", "param2", "-a", "-b", "param3"}
	args, err := parser.ParseArgs(envArgs)
	assert.Nil(t, err, "pre-split args should parse without error")
	assert.Equal(t, 6, len(args))

	expectedApprox := []int{0, 7, 14, 21, 24, 27}
	for i, arg := range args {
		assert.Equal(t, 0, arg.CharIndex(), "each arg starts at its own first char")
		assert.Equal(t, expectedApprox[i], arg.EnvLineApproxCharIndex())
		assert.Equal(t, i, arg.ArgIndex())
		assert.Equal(t, i, arg.EnvArgIndex())
	}

	_, isBinary := args[0].(*BinaryArg[int, int])
	assert.True(t, isBinary)
	_, isParam := args[1].(*ParamArg[int, int])
	assert.True(t, isParam)
	optionArgA, isOption := args[3].(*OptionArg[int, int])
	assert.True(t, isOption)
	assert.Equal(t, "a", optionArgA.Code())
	assert.False(t, optionArgA.HasValue())
}

func TestEmptyRegistryMatchesEverything(t *testing.T) {
	parser := New[int, int]()
	args, err := parser.ParseLine("tool -a -b value param")
	assert.Nil(t, err, "empty registry should accept any argument")
	assert.Equal(t, 5, len(args))

	_, ok := args[0].(*BinaryArg[int, int])
	assert.True(t, ok)
	optionArgA, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "a", optionArgA.Code())
	optionArgB, ok := args[2].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.False(t, optionArgB.HasValue(), "without matchers options take no value")
	valueParam, ok := args[3].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "value", valueParam.ValueText())
	tailParam, ok := args[4].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "param", tailParam.ValueText())
}

func TestQuoteEmbeddingWithDoubledQuote(t *testing.T) {
	parser := New[int, int]()
	args, err := parser.ParseLine(`tool "a""b"`)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, `a"b`, param.ValueText())
}

func TestQuoteEmbeddingRepeatedDoubledQuotes(t *testing.T) {
	parser := New[int, int]()
	for n := 0; n <= 4; n++ {
		line := `tool "a` + strings.Repeat(`""`, n) + `b"`
		args, err := parser.ParseLine(line)
		assert.Nil(t, err, "n=%d", n)
		assert.Equal(t, 2, len(args))
		param, ok := args[1].(*ParamArg[int, int])
		assert.True(t, ok)
		assert.Equal(t, "a"+strings.Repeat(`"`, n)+"b", param.ValueText())
	}

	args, err := parser.ParseLine(`tool ""`)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "", param.ValueText())
}

func TestQuoteEmbeddingDisabled(t *testing.T) {
	parser := New[int, int]().SetEmbedQuoteCharWithDouble(false)
	_, err := parser.ParseLine(`tool "a""b"`)
	assert.NotNil(t, err, "doubled quote should not embed when disabled")
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, QuotedParamNotFollowedByWhitespace, parseErr.Kind)
}

func TestSpeculativeValueReclassifiedAsParam(t *testing.T) {
	parser := New[int, int]()
	optionB := parser.NewOptionMatcher("optionB")
	optionB.OptionCodes = []RegexOrText{NewText("b")}
	optionB.OptionHasValue = OptionValueIfPossible
	valueText := NewText("yes")
	optionB.ValueText = &valueText
	parser.NewParamMatcher("anyParam")

	args, err := parser.ParseLine("tool -b maybe")
	assert.Nil(t, err, "rejected tentative value should become a param")
	assert.Equal(t, 3, len(args))

	optionArg, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "b", optionArg.Code())
	assert.False(t, optionArg.HasValue())

	param, ok := args[2].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "maybe", param.ValueText())
	assert.Equal(t, "anyParam", param.Matcher().Name)
}

func TestSpeculativeValueAccepted(t *testing.T) {
	parser := New[int, int]()
	optionB := parser.NewOptionMatcher("optionB")
	optionB.OptionCodes = []RegexOrText{NewText("b")}
	optionB.OptionHasValue = OptionValueIfPossible
	valueText := NewText("yes")
	optionB.ValueText = &valueText

	args, err := parser.ParseLine("tool -b yes")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	optionArg, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	value, hasValue := optionArg.Value()
	assert.True(t, hasValue)
	assert.Equal(t, "yes", value)
}

func TestReclassifiedParamWithNoParamMatcherFails(t *testing.T) {
	parser := New[int, int]()
	optionC := parser.NewOptionMatcher("optionC")
	optionC.OptionCodes = []RegexOrText{NewText("c")}
	optionC.OptionHasValue = OptionValueIfPossible
	valueText := NewText("yes")
	optionC.ValueText = &valueText

	_, err := parser.ParseLine("tool -c maybe")
	assert.NotNil(t, err, "rejected tentative value with no param matcher should fail")
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, UnmatchedParam, parseErr.Kind)
	assert.False(t, parseErr.Option)
	assert.Equal(t, "maybe", parseErr.ParamValueText)
}

func TestIfPossibleRejectsAnnouncerStartingValue(t *testing.T) {
	parser := New[int, int]()
	optionB := parser.NewOptionMatcher("optionB")
	optionB.OptionCodes = []RegexOrText{NewText("b")}
	optionB.OptionHasValue = OptionValueIfPossible
	optionA := parser.NewOptionMatcher("optionA")
	optionA.OptionCodes = []RegexOrText{NewText("a")}

	args, err := parser.ParseLine("tool -b -a")
	assert.Nil(t, err, "announcer after ambiguous announcer starts a new option")
	assert.Equal(t, 3, len(args))
	optionArgB, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "b", optionArgB.Code())
	assert.False(t, optionArgB.HasValue())
	optionArgA, ok := args[2].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "a", optionArgA.Code())
}

func TestAlwaysValueWithDefiniteAnnouncer(t *testing.T) {
	parser := New[int, int]().SetOptionValueAnnouncerChars(' ', '=')
	optionO := parser.NewOptionMatcher("output")
	optionO.OptionCodes = []RegexOrText{NewText("o")}
	optionO.OptionHasValue = OptionValueAlways

	args, err := parser.ParseLine("tool -o=file.txt")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	optionArg, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	value, hasValue := optionArg.Value()
	assert.True(t, hasValue)
	assert.Equal(t, "file.txt", value)
}

func TestDefiniteAnnouncerOnValuelessOption(t *testing.T) {
	parser := New[int, int]().SetOptionValueAnnouncerChars(' ', '=')
	optionA := parser.NewOptionMatcher("optionA")
	optionA.OptionCodes = []RegexOrText{NewText("a")}

	_, err := parser.ParseLine("tool -a=5")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, NoMatchForOptionWithValue, parseErr.Kind)
}

func TestOptionMissingValueAtEndOfLine(t *testing.T) {
	parser := New[int, int]()
	optionO := parser.NewOptionMatcher("output")
	optionO.OptionCodes = []RegexOrText{NewText("o")}
	optionO.OptionHasValue = OptionValueAlways

	_, err := parser.ParseLine("tool -o ")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, OptionMissingValue, parseErr.Kind)
}

func TestAlwaysValueCannotStartWithAnnouncer(t *testing.T) {
	parser := New[int, int]()
	optionO := parser.NewOptionMatcher("output")
	optionO.OptionCodes = []RegexOrText{NewText("o")}
	optionO.OptionHasValue = OptionValueAlways

	_, err := parser.ParseLine("tool -o -x")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, OptionValueCannotStartWithAnnouncer, parseErr.Kind)
}

func TestAlwaysValueCanStartWithAnnouncerWhenAllowed(t *testing.T) {
	parser := New[int, int]()
	optionO := parser.NewOptionMatcher("output")
	optionO.OptionCodes = []RegexOrText{NewText("o")}
	optionO.OptionHasValue = OptionValueAlways
	optionO.OptionValueCanStartWithAnnouncer = true

	args, err := parser.ParseLine("tool -o -x")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	optionArg, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	value, hasValue := optionArg.Value()
	assert.True(t, hasValue)
	assert.Equal(t, "-x", value)
}

func TestUnmatchedOption(t *testing.T) {
	parser := New[int, int]()
	parser.NewParamMatcher("params")

	_, err := parser.ParseLine("tool -z")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, UnmatchedOption, parseErr.Kind)
	assert.True(t, parseErr.Option)
	assert.Equal(t, "z", parseErr.OptionCode)
}

func TestUnmatchedParam(t *testing.T) {
	parser := New[int, int]()
	optionA := parser.NewOptionMatcher("optionA")
	optionA.OptionCodes = []RegexOrText{NewText("a")}

	_, err := parser.ParseLine("tool -a stray")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, UnmatchedParam, parseErr.Kind)
	assert.False(t, parseErr.Option)
	assert.Equal(t, "stray", parseErr.ParamValueText)
}

func TestFirstMatcherWins(t *testing.T) {
	parser := New[int, int]()
	parser.NewParamMatcher("first")
	parser.NewParamMatcher("second")

	args, err := parser.ParseLine("tool value")
	assert.Nil(t, err)
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "first", param.Matcher().Name)
	assert.Equal(t, 0, param.Matcher().Index())
}

func TestOptionCodeCaseSensitivity(t *testing.T) {
	parser := New[int, int]()
	optionA := parser.NewOptionMatcher("optionA")
	optionA.OptionCodes = []RegexOrText{NewText("a")}

	args, err := parser.ParseLine("tool -A")
	assert.Nil(t, err, "codes match case insensitively by default")
	assert.Equal(t, 2, len(args))

	parser.SetOptionCodesCaseSensitive(true)
	_, err = parser.ParseLine("tool -A")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, UnmatchedOption, parseErr.Kind)
}

func TestRegexOptionCode(t *testing.T) {
	parser := New[int, int]()
	verbose := parser.NewOptionMatcher("verbosity")
	verbose.OptionCodes = []RegexOrText{MustRegex("^v+$")}

	args, err := parser.ParseLine("tool -vvv")
	assert.Nil(t, err)
	optionArg, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "vvv", optionArg.Code())
}

func TestDoubleAnnouncerRequirement(t *testing.T) {
	parser := New[int, int]().SetMultiCharOptionCodeRequiresDoubleAnnouncer(true)

	args, err := parser.ParseLine("tool --verbose -v")
	assert.Nil(t, err)
	assert.Equal(t, 3, len(args))
	long, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "verbose", long.Code(), "second announcer is stripped from the code")
	short, ok := args[2].(*OptionArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "v", short.Code())

	_, err = parser.ParseLine("tool -verbose")
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, OptionCodeMissingDoubleAnnouncer, parseErr.Kind)
}

func TestParseTerminateChars(t *testing.T) {
	parser := New[int, int]().SetParseTerminateChars('|')

	args, err := parser.ParseLine("tool abc | def")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "abc", param.ValueText())
}

func TestParamMissingClosingQuote(t *testing.T) {
	parser := New[int, int]()
	_, err := parser.ParseLine(`tool "abc`)
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, ParamMissingClosingQuote, parseErr.Kind)
	assert.Equal(t, `(Parameter missing closing quote character) [l:9 a:1 p:0 t:"abc"]`, err.Error())
}

func TestQuotedParamNotFollowedByWhitespace(t *testing.T) {
	parser := New[int, int]()
	_, err := parser.ParseLine(`tool "abc"x`)
	assert.NotNil(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, QuotedParamNotFollowedByWhitespace, parseErr.Kind)
}

func TestEscaping(t *testing.T) {
	parser := New[int, int]().SetEscapeChar('\\')

	args, err := parser.ParseLine(`tool "a\"b"`)
	assert.Nil(t, err, "quote escape should embed the quote")
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, `a"b`, param.ValueText())

	_, err = parser.ParseLine(`tool a\x`)
	assert.NotNil(t, err, "x is not escapable with default escapable chars")
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, EscapedCharInParamCannotBeEscaped, parseErr.Kind)

	_, err = parser.ParseLine(`tool abc\`)
	assert.NotNil(t, err, "trailing escape cannot complete")
	parseErr, ok = err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, EscapedCharInParamCannotBeEscaped, parseErr.Kind)
}

func TestEscapableWhitespace(t *testing.T) {
	parser := New[int, int]().
		SetEscapeChar('\\').
		SetEscapableLogicalChars(EscapableEscape, EscapableQuote, EscapableWhitespace)

	args, err := parser.ParseLine(`tool a\ b`)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "a b", param.ValueText())
}

func TestEscapableCharsList(t *testing.T) {
	parser := New[int, int]().
		SetEscapeChar('\\').
		SetEscapableLogicalChars().
		SetEscapableChars('n')

	args, err := parser.ParseLine(`tool a\nb`)
	assert.Nil(t, err)
	param, ok := args[1].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "anb", param.ValueText(), "escaping inserts the literal char")
}

func TestOptionCodeCannotContainQuoteOrEscape(t *testing.T) {
	parser := New[int, int]().SetEscapeChar('\\')

	_, err := parser.ParseLine(`tool -a"b`)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, OptionCodeCannotContainQuoteChar, parseErr.Kind)

	_, err = parser.ParseLine(`tool -a\b`)
	parseErr, ok = err.(*ParseError)
	assert.True(t, ok)
	assert.Equal(t, OptionCodeCannotContainEscapeChar, parseErr.Kind)
}

func TestFirstArgIsBinaryDisabled(t *testing.T) {
	parser := New[int, int]().SetFirstArgIsBinary(false)

	args, err := parser.ParseLine("value -a")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(args))
	param, ok := args[0].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "value", param.ValueText())
	_, hasBinary := args.Binary()
	assert.False(t, hasBinary)
}

func TestParseArgsOptionWithValue(t *testing.T) {
	parser := NewEnvArgs[int, int]()
	optionO := parser.NewOptionMatcher("output")
	optionO.OptionCodes = []RegexOrText{NewText("o")}
	optionO.OptionHasValue = OptionValueAlways
	parser.NewParamMatcher("params")

	args, err := parser.ParseArgs([]string{"tool", "-o", "out.txt", "extra"})
	assert.Nil(t, err)
	assert.Equal(t, 3, len(args))
	optionArg, ok := args[1].(*OptionArg[int, int])
	assert.True(t, ok)
	value, hasValue := optionArg.Value()
	assert.True(t, hasValue)
	assert.Equal(t, "out.txt", value)
	param, ok := args[2].(*ParamArg[int, int])
	assert.True(t, ok)
	assert.Equal(t, "extra", param.ValueText())
}

func TestMatcherManagement(t *testing.T) {
	parser := New[int, int]()
	parser.NewOptionMatcher("one")
	parser.NewOptionMatcher("two")
	parser.NewParamMatcher("three")
	assert.Equal(t, 3, len(parser.Matchers()))

	found := parser.FindMatcher("two")
	assert.NotNil(t, found)
	assert.Equal(t, 1, found.Index())

	assert.True(t, parser.DeleteMatcher("one"))
	assert.False(t, parser.DeleteMatcher("one"))
	assert.Equal(t, 2, len(parser.Matchers()))
	assert.Equal(t, 0, parser.FindMatcher("two").Index(), "indices follow deletions")
	assert.Equal(t, 1, parser.FindMatcher("three").Index())

	parser.ClearMatchers()
	assert.Equal(t, 0, len(parser.Matchers()))
}

func TestArgsHelpers(t *testing.T) {
	parser := New[int, int]()
	args, err := parser.ParseLine("tool -n 42 -f 2.5 -flag true alpha beta")
	assert.Nil(t, err)

	binary, ok := args.Binary()
	assert.True(t, ok)
	assert.Equal(t, "tool", binary.ValueText())

	assert.Equal(t, []string{"42", "2.5", "true", "alpha", "beta"}, args.ParamValues())
	assert.True(t, args.HasOption("n"))
	assert.True(t, args.HasOption("N"), "helper lookups are case insensitive")
	assert.False(t, args.HasOption("x"))
}

func TestArgsTypedOptionValues(t *testing.T) {
	parser := New[int, int]().SetOptionValueAnnouncerChars('=')
	for _, code := range []string{"n", "f", "b", "t"} {
		matcher := parser.NewOptionMatcher(code)
		matcher.OptionCodes = []RegexOrText{NewText(code)}
		matcher.OptionHasValue = OptionValueAlways
	}

	args, err := parser.ParseLine("tool -n=42 -f=2.5 -b=true -t=2026-08-29")
	assert.Nil(t, err)

	n, err := args.OptionValueInt("n")
	assert.Nil(t, err)
	assert.Equal(t, int64(42), n)

	f, err := args.OptionValueFloat("f")
	assert.Nil(t, err)
	assert.Equal(t, 2.5, f)

	b, err := args.OptionValueBool("b")
	assert.Nil(t, err)
	assert.True(t, b)

	ts, err := args.OptionValueTime("t")
	assert.Nil(t, err)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, 8, int(ts.Month()))
	assert.Equal(t, 29, ts.Day())

	_, err = args.OptionValueInt("f")
	assert.NotNil(t, err)
	_, err = args.OptionValueInt("missing")
	assert.NotNil(t, err)
}

func TestSetLineDefaultsRestoresConfiguration(t *testing.T) {
	parser := New[int, int]().
		SetQuoteChars('\'').
		SetEscapeChar('\\').
		SetFirstArgIsBinary(false)

	parser.SetLineDefaults()
	assert.Equal(t, []rune{'"'}, parser.QuoteChars())
	assert.Equal(t, NoEscapeChar, parser.EscapeChar())
	assert.True(t, parser.FirstArgIsBinary())
}
