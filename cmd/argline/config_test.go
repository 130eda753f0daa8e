package main

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
)

const sampleConfig = `
[parser]
mode = "line"
option_value_announcer_chars = [" ", "="]
escape_char = "\\"

[[matcher]]
name = "verbose"
type = "option"
option_codes = ["v", "verbose"]

[[matcher]]
name = "output"
type = "option"
option_codes = ["o"]
option_has_value = "always"

[[matcher]]
name = "inputs"
type = "param"
`

func TestBuildParserFromConfig(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(sampleConfig, &cfg)
	assert.Nil(t, err)

	parser, err := cfg.BuildParser()
	assert.Nil(t, err)
	assert.Equal(t, 3, len(parser.Matchers()))
	assert.Equal(t, '\\', parser.EscapeChar())
	assert.Equal(t, []rune{' ', '='}, parser.OptionValueAnnouncerChars())

	args, err := parser.ParseLine("tool -v -o=out.txt input.txt")
	assert.Nil(t, err)
	assert.Equal(t, 4, len(args))
	value, ok := args.OptionValue("o")
	assert.True(t, ok)
	assert.Equal(t, "out.txt", value)
	assert.Equal(t, []string{"input.txt"}, args.ParamValues())
}

func TestBuildParserRejectsBadConfig(t *testing.T) {
	cfg := Config{Parser: ParserConfig{Mode: "bogus"}}
	_, err := cfg.BuildParser()
	assert.NotNil(t, err)

	cfg = Config{Matchers: []MatcherConfig{{Name: "x", Type: "option", OptionHasValue: "sometimes"}}}
	_, err = cfg.BuildParser()
	assert.NotNil(t, err)

	cfg = Config{Matchers: []MatcherConfig{{
		Name:                "x",
		OptionCodes:         []string{"(unclosed"},
		OptionCodesAreRegex: true,
	}}}
	_, err = cfg.BuildParser()
	assert.NotNil(t, err)
}
