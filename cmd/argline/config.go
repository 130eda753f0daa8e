package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ferrith/argline"
)

// Config is the TOML description of a parser and its matcher registry.
type Config struct {
	Parser   ParserConfig    `toml:"parser"`
	Matchers []MatcherConfig `toml:"matcher"`
}

type ParserConfig struct {
	// Mode selects the base defaults: "line" or "env_args".
	Mode string `toml:"mode"`

	QuoteChars                []string `toml:"quote_chars"`
	OptionAnnouncerChars      []string `toml:"option_announcer_chars"`
	OptionValueAnnouncerChars []string `toml:"option_value_announcer_chars"`
	EscapeChar                string   `toml:"escape_char"`
	EscapableChars            []string `toml:"escapable_chars"`
	ParseTerminateChars       []string `toml:"parse_terminate_chars"`

	OptionCodesCaseSensitive  *bool `toml:"option_codes_case_sensitive"`
	OptionValuesCaseSensitive *bool `toml:"option_values_case_sensitive"`
	ParamsCaseSensitive       *bool `toml:"params_case_sensitive"`
	EmbedQuoteCharWithDouble  *bool `toml:"embed_quote_char_with_double"`
	FirstArgIsBinary          *bool `toml:"first_arg_is_binary"`

	MultiCharOptionCodeRequiresDoubleAnnouncer *bool `toml:"multi_char_option_code_requires_double_announcer"`
}

type MatcherConfig struct {
	Name string `toml:"name"`
	Help string `toml:"help"`
	// Type restricts the matcher: "option", "param" or "any".
	Type string `toml:"type"`

	ArgIndices    []int    `toml:"arg_indices"`
	OptionIndices []int    `toml:"option_indices"`
	ParamIndices  []int    `toml:"param_indices"`
	OptionCodes   []string `toml:"option_codes"`
	// OptionCodesAreRegex treats each entry of OptionCodes as a regular
	// expression instead of literal text.
	OptionCodesAreRegex bool `toml:"option_codes_are_regex"`

	// OptionHasValue is "never", "if_possible" or "always".
	OptionHasValue                   string `toml:"option_has_value"`
	OptionValueCanStartWithAnnouncer bool   `toml:"option_value_can_start_with_announcer"`

	ValueText        string `toml:"value_text"`
	ValueTextIsRegex bool   `toml:"value_text_is_regex"`
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOptionalConfig returns an empty config when path is empty or the file
// does not exist.
func LoadOptionalConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadConfig(path)
}

// BuildParser constructs a parser from the config. Option and parameter tags
// are the matcher names.
func (c *Config) BuildParser() (*argline.Parser[string, string], error) {
	var parser *argline.Parser[string, string]
	switch c.Parser.Mode {
	case "", "line":
		parser = argline.New[string, string]()
	case "env_args":
		parser = argline.NewEnvArgs[string, string]()
	default:
		return nil, fmt.Errorf("unknown parser mode %q", c.Parser.Mode)
	}

	if err := c.Parser.apply(parser); err != nil {
		return nil, err
	}
	for i := range c.Matchers {
		if err := c.Matchers[i].apply(parser); err != nil {
			return nil, err
		}
	}
	return parser, nil
}

func (pc *ParserConfig) apply(parser *argline.Parser[string, string]) error {
	if pc.QuoteChars != nil {
		chars, err := toRunes(pc.QuoteChars, "quote_chars")
		if err != nil {
			return err
		}
		parser.SetQuoteChars(chars...)
	}
	if pc.OptionAnnouncerChars != nil {
		chars, err := toRunes(pc.OptionAnnouncerChars, "option_announcer_chars")
		if err != nil {
			return err
		}
		parser.SetOptionAnnouncerChars(chars...)
	}
	if pc.OptionValueAnnouncerChars != nil {
		chars, err := toRunes(pc.OptionValueAnnouncerChars, "option_value_announcer_chars")
		if err != nil {
			return err
		}
		parser.SetOptionValueAnnouncerChars(chars...)
	}
	if pc.EscapeChar != "" {
		runes := []rune(pc.EscapeChar)
		if len(runes) != 1 {
			return fmt.Errorf("escape_char must be a single character, got %q", pc.EscapeChar)
		}
		parser.SetEscapeChar(runes[0])
	}
	if pc.EscapableChars != nil {
		chars, err := toRunes(pc.EscapableChars, "escapable_chars")
		if err != nil {
			return err
		}
		parser.SetEscapableChars(chars...)
	}
	if pc.ParseTerminateChars != nil {
		chars, err := toRunes(pc.ParseTerminateChars, "parse_terminate_chars")
		if err != nil {
			return err
		}
		parser.SetParseTerminateChars(chars...)
	}
	if pc.OptionCodesCaseSensitive != nil {
		parser.SetOptionCodesCaseSensitive(*pc.OptionCodesCaseSensitive)
	}
	if pc.OptionValuesCaseSensitive != nil {
		parser.SetOptionValuesCaseSensitive(*pc.OptionValuesCaseSensitive)
	}
	if pc.ParamsCaseSensitive != nil {
		parser.SetParamsCaseSensitive(*pc.ParamsCaseSensitive)
	}
	if pc.EmbedQuoteCharWithDouble != nil {
		parser.SetEmbedQuoteCharWithDouble(*pc.EmbedQuoteCharWithDouble)
	}
	if pc.FirstArgIsBinary != nil {
		parser.SetFirstArgIsBinary(*pc.FirstArgIsBinary)
	}
	if pc.MultiCharOptionCodeRequiresDoubleAnnouncer != nil {
		parser.SetMultiCharOptionCodeRequiresDoubleAnnouncer(*pc.MultiCharOptionCodeRequiresDoubleAnnouncer)
	}
	return nil
}

func (mc *MatcherConfig) apply(parser *argline.Parser[string, string]) error {
	matcher := &argline.Matcher[string, string]{
		Name:      mc.Name,
		Help:      mc.Help,
		OptionTag: mc.Name,
		ParamTag:  mc.Name,
	}

	switch mc.Type {
	case "", "any":
		matcher.ArgType = argline.MatchArgTypeAny
	case "option":
		matcher.ArgType = argline.MatchArgTypeOption
	case "param":
		matcher.ArgType = argline.MatchArgTypeParam
	default:
		return fmt.Errorf("matcher %q: unknown type %q", mc.Name, mc.Type)
	}

	matcher.ArgIndices = mc.ArgIndices
	matcher.OptionIndices = mc.OptionIndices
	matcher.ParamIndices = mc.ParamIndices

	for _, code := range mc.OptionCodes {
		if mc.OptionCodesAreRegex {
			rt, err := argline.NewRegex(code)
			if err != nil {
				return fmt.Errorf("matcher %q: option code %q: %w", mc.Name, code, err)
			}
			matcher.OptionCodes = append(matcher.OptionCodes, rt)
		} else {
			matcher.OptionCodes = append(matcher.OptionCodes, argline.NewText(code))
		}
	}

	switch mc.OptionHasValue {
	case "", "never":
		matcher.OptionHasValue = argline.OptionValueNever
	case "if_possible":
		matcher.OptionHasValue = argline.OptionValueIfPossible
	case "always":
		matcher.OptionHasValue = argline.OptionValueAlways
	default:
		return fmt.Errorf("matcher %q: unknown option_has_value %q", mc.Name, mc.OptionHasValue)
	}
	matcher.OptionValueCanStartWithAnnouncer = mc.OptionValueCanStartWithAnnouncer

	if mc.ValueText != "" {
		var rt argline.RegexOrText
		if mc.ValueTextIsRegex {
			var err error
			rt, err = argline.NewRegex(mc.ValueText)
			if err != nil {
				return fmt.Errorf("matcher %q: value_text %q: %w", mc.Name, mc.ValueText, err)
			}
		} else {
			rt = argline.NewText(mc.ValueText)
		}
		matcher.ValueText = &rt
	}

	parser.AddMatcher(matcher)
	return nil
}

func toRunes(values []string, field string) ([]rune, error) {
	chars := make([]rune, 0, len(values))
	for _, value := range values {
		runes := []rune(value)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%s entries must be single characters, got %q", field, value)
		}
		chars = append(chars, runes[0])
	}
	return chars, nil
}
