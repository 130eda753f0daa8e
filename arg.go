package argline

import (
	"strings"
	"time"

	"github.com/ferrith/argline/util"
)

// Arg is one classified argument produced by a parse. The concrete type is
// *BinaryArg, *OptionArg or *ParamArg.
type Arg[O, P any] interface {
	// Matcher returns the matcher which claimed the argument.
	Matcher() *Matcher[O, P]
	// ArgIndex returns the argument's position across all argument kinds,
	// including the binary.
	ArgIndex() int
	// CharIndex returns the index of the character at which the argument
	// started. For a line parse this is exact within the line; for pre-split
	// arguments it is exact within the argument's own text.
	CharIndex() int
	// EnvLineApproxCharIndex returns an approximate line-wide character
	// index. For a line parse it equals CharIndex. For pre-split arguments
	// characters are counted across all arguments with one synthetic
	// character per boundary.
	EnvLineApproxCharIndex() int
	// EnvArgIndex returns the index of the pre-split argument within which
	// the argument started. Zero for line parses.
	EnvArgIndex() int
}

type baseArg[O, P any] struct {
	matcher                *Matcher[O, P]
	argIndex               int
	charIndex              int
	envLineApproxCharIndex int
	envArgIndex            int
}

func (a *baseArg[O, P]) Matcher() *Matcher[O, P]    { return a.matcher }
func (a *baseArg[O, P]) ArgIndex() int              { return a.argIndex }
func (a *baseArg[O, P]) CharIndex() int             { return a.charIndex }
func (a *baseArg[O, P]) EnvLineApproxCharIndex() int { return a.envLineApproxCharIndex }
func (a *baseArg[O, P]) EnvArgIndex() int           { return a.envArgIndex }

// BinaryArg is the first argument of a parse when the parser treats it as the
// binary's name. It bypasses the matcher registry.
type BinaryArg[O, P any] struct {
	baseArg[O, P]
	valueText string
}

// ValueText returns the binary name as parsed, with quoting and escaping
// resolved.
func (a *BinaryArg[O, P]) ValueText() string { return a.valueText }

// ParamArg is a positional parameter.
type ParamArg[O, P any] struct {
	baseArg[O, P]
	paramIndex int
	valueText  string
}

// ParamIndex returns the parameter's position counting parameters only.
func (a *ParamArg[O, P]) ParamIndex() int { return a.paramIndex }

// ValueText returns the parameter text with quoting and escaping resolved.
func (a *ParamArg[O, P]) ValueText() string { return a.valueText }

// Tag returns the ParamTag of the matcher which claimed the parameter.
func (a *ParamArg[O, P]) Tag() P { return a.matcher.ParamTag }

// OptionArg is an announced option, with or without a value.
type OptionArg[O, P any] struct {
	baseArg[O, P]
	optionIndex int
	code        string
	valueText   string
	hasValue    bool
}

// OptionIndex returns the option's position counting options only.
func (a *OptionArg[O, P]) OptionIndex() int { return a.optionIndex }

// Code returns the option code without its announcer.
func (a *OptionArg[O, P]) Code() string { return a.code }

// Value returns the option's value and whether one was present.
func (a *OptionArg[O, P]) Value() (string, bool) { return a.valueText, a.hasValue }

// HasValue reports whether the option carried a value.
func (a *OptionArg[O, P]) HasValue() bool { return a.hasValue }

// Tag returns the OptionTag of the matcher which claimed the option.
func (a *OptionArg[O, P]) Tag() O { return a.matcher.OptionTag }

// Args is the ordered result of a parse.
type Args[O, P any] []Arg[O, P]

// Binary returns the binary argument if the parse produced one.
func (args Args[O, P]) Binary() (*BinaryArg[O, P], bool) {
	for _, arg := range args {
		if binary, ok := arg.(*BinaryArg[O, P]); ok {
			return binary, true
		}
	}
	return nil, false
}

// Options returns the option arguments in parse order.
func (args Args[O, P]) Options() []*OptionArg[O, P] {
	var options []*OptionArg[O, P]
	for _, arg := range args {
		if option, ok := arg.(*OptionArg[O, P]); ok {
			options = append(options, option)
		}
	}
	return options
}

// Params returns the parameter arguments in parse order.
func (args Args[O, P]) Params() []*ParamArg[O, P] {
	var params []*ParamArg[O, P]
	for _, arg := range args {
		if param, ok := arg.(*ParamArg[O, P]); ok {
			params = append(params, param)
		}
	}
	return params
}

// ParamValues returns the parameter texts in parse order.
func (args Args[O, P]) ParamValues() []string {
	params := args.Params()
	values := make([]string, len(params))
	for i, param := range params {
		values[i] = param.ValueText()
	}
	return values
}

// HasOption reports whether an option with the given code was parsed. Codes
// are compared case insensitively.
func (args Args[O, P]) HasOption(code string) bool {
	_, ok := args.findOption(code)
	return ok
}

// OptionValue returns the value of the first option with the given code.
// ok is false when no such option was parsed or it carried no value. Codes
// are compared case insensitively.
func (args Args[O, P]) OptionValue(code string) (value string, ok bool) {
	option, found := args.findOption(code)
	if !found {
		return "", false
	}
	return option.Value()
}

// OptionValueInt converts the value of the first option with the given code
// to an int64.
func (args Args[O, P]) OptionValueInt(code string) (int64, error) {
	var result int64
	err := args.convertOptionValue(code, &result)
	return result, err
}

// OptionValueFloat converts the value of the first option with the given
// code to a float64.
func (args Args[O, P]) OptionValueFloat(code string) (float64, error) {
	var result float64
	err := args.convertOptionValue(code, &result)
	return result, err
}

// OptionValueBool converts the value of the first option with the given code
// to a bool.
func (args Args[O, P]) OptionValueBool(code string) (bool, error) {
	var result bool
	err := args.convertOptionValue(code, &result)
	return result, err
}

// OptionValueTime converts the value of the first option with the given code
// to a time.Time. Most common date and time layouts are recognized.
func (args Args[O, P]) OptionValueTime(code string) (time.Time, error) {
	var result time.Time
	err := args.convertOptionValue(code, &result)
	return result, err
}

func (args Args[O, P]) convertOptionValue(code string, data any) error {
	value, ok := args.OptionValue(code)
	if !ok {
		return util.ErrMissingValue
	}
	return util.ConvertString(value, data, util.StandardDelimiters)
}

func (args Args[O, P]) findOption(code string) (*OptionArg[O, P], bool) {
	for _, arg := range args {
		if option, ok := arg.(*OptionArg[O, P]); ok && strings.EqualFold(option.Code(), code) {
			return option, true
		}
	}
	return nil, false
}
