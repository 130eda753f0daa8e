package argline

func runesContain(chars []rune, r rune) bool {
	for _, c := range chars {
		if c == r {
			return true
		}
	}
	return false
}

func (p *Parser[O, P]) isQuoteChar(r rune) bool {
	return runesContain(p.quoteChars, r)
}

func (p *Parser[O, P]) isOptionAnnouncer(r rune) bool {
	return runesContain(p.optionAnnouncerChars, r)
}

func (p *Parser[O, P]) isOptionValueAnnouncer(r rune) bool {
	return runesContain(p.optionValueAnnouncerChars, r)
}

func (p *Parser[O, P]) isParseTerminateChar(r rune) bool {
	return runesContain(p.parseTerminateChars, r)
}

func (p *Parser[O, P]) isEscapeChar(r rune) bool {
	return p.escapeChar != NoEscapeChar && r == p.escapeChar
}

// processChar advances the state machine by one input unit. It returns false
// when a parse terminate character was consumed and the rest of the input
// should be ignored.
func (p *Parser[O, P]) processChar(state *parseState, c envChar, args *Args[O, P]) (bool, error) {
	switch state.argState {
	case argStateWaitBinary:
		r, ok := c.nonWhitespace()
		if !ok {
			return true, nil
		}
		if p.isParseTerminateChar(r) {
			return false, nil
		}
		state.argState = argStateInParam
		p.initialiseParamParsing(state, r, true)
		return true, nil

	case argStateWaitOptionOrParam:
		r, ok := c.nonWhitespace()
		if !ok {
			return true, nil
		}
		switch {
		case p.isParseTerminateChar(r):
			return false, nil
		case p.isOptionAnnouncer(r):
			state.argState = argStateInOption
			p.initialiseOptionParsing(state, r)
		default:
			state.argState = argStateInParam
			p.initialiseParamParsing(state, r, false)
		}
		return true, nil

	case argStateInParam:
		if c.separator {
			if state.valueQuoted {
				return false, state.newParamError(ParamMissingClosingQuote)
			}
			if err := p.matchParamArg(state, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
			return true, nil
		}
		r := c.r
		switch {
		case p.isEscapeChar(r):
			state.argState = argStateInParamEscaped
		case state.valueQuoted:
			if r == state.argQuoteChar {
				state.argState = argStateInParamPossibleEndQuote
			} else {
				state.valueBldr.WriteRune(r)
			}
		case !isWhitespace(r):
			state.valueBldr.WriteRune(r)
		default:
			if err := p.matchParamArg(state, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
		}
		return true, nil

	case argStateInParamPossibleEndQuote:
		if c.separator {
			if err := p.matchParamArg(state, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
			return true, nil
		}
		r := c.r
		switch {
		case r == state.argQuoteChar && p.embedQuoteCharWithDouble:
			state.valueBldr.WriteRune(r)
			state.argState = argStateInParam
		case isWhitespace(r):
			if err := p.matchParamArg(state, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
		default:
			return false, state.newParamError(QuotedParamNotFollowedByWhitespace)
		}
		return true, nil

	case argStateInParamEscaped:
		if c.separator {
			return false, state.newParamError(EscapeCharAtEndOfParam)
		}
		if !p.canCharBeEscaped(state, c.r) {
			return false, state.newParamError(EscapedCharInParamCannotBeEscaped)
		}
		state.valueBldr.WriteRune(c.r)
		state.argState = argStateInParam
		return true, nil

	case argStateInOption:
		return p.processOptionChar(state, c, args)
	}
	return true, nil
}

// processOptionChar drives the inner machine while an option is being parsed.
func (p *Parser[O, P]) processOptionChar(state *parseState, c envChar, args *Args[O, P]) (bool, error) {
	switch state.optionState {
	case optionStateInCode:
		if c.separator {
			return true, p.finaliseOptionCode(state, valueAnnouncedAmbiguous, args)
		}
		r := c.r
		switch {
		case p.isParseTerminateChar(r):
			if err := p.finaliseOptionCode(state, valueAnnouncedNot, args); err != nil {
				return false, err
			}
			return false, nil
		case p.isOptionValueAnnouncer(r):
			announced := valueAnnouncedDefinitely
			if isWhitespace(r) {
				announced = valueAnnouncedAmbiguous
			}
			return true, p.finaliseOptionCode(state, announced, args)
		case isWhitespace(r):
			return true, p.finaliseOptionCode(state, valueAnnouncedNot, args)
		case p.isQuoteChar(r):
			return false, state.newOptionError(OptionCodeCannotContainQuoteChar)
		case p.isEscapeChar(r):
			return false, state.newOptionError(OptionCodeCannotContainEscapeChar)
		default:
			state.optionCodeRunes = append(state.optionCodeRunes, r)
			return true, nil
		}

	case optionStateWaitOptionValue:
		r, ok := c.nonWhitespace()
		if !ok {
			return true, nil
		}
		firstCharIsAnnouncer := p.isOptionAnnouncer(r)
		verdict, err := p.optionValueVerdict(state, firstCharIsAnnouncer)
		if err != nil {
			return false, err
		}
		switch verdict {
		case verdictMust:
			state.optionState = optionStateInValue
			p.initialiseOptionValueParsing(state, r)
			state.currentOptionValueMayBeParam = false
		case verdictPossibly:
			state.optionState = optionStateInValue
			p.initialiseOptionValueParsing(state, r)
			state.currentOptionValueMayBeParam = true
		default:
			state.currentOptionValueMayBeParam = false
			if err := p.matchOptionArg(state, false, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
			// The rejected character starts a new option or parameter.
			return p.processChar(state, c, args)
		}
		return true, nil

	case optionStateInValue:
		if c.separator {
			if state.valueQuoted {
				return false, state.newOptionError(OptionValueMissingClosingQuote)
			}
			if err := p.matchOptionArg(state, true, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
			return true, nil
		}
		r := c.r
		switch {
		case p.isEscapeChar(r):
			state.optionState = optionStateInValueEscaped
		case state.valueQuoted:
			if r == state.argQuoteChar {
				state.optionState = optionStateInValuePossibleEndQuote
			} else {
				state.valueBldr.WriteRune(r)
			}
		case !isWhitespace(r):
			state.valueBldr.WriteRune(r)
		default:
			if err := p.matchOptionArg(state, true, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
		}
		return true, nil

	case optionStateInValuePossibleEndQuote:
		if c.separator {
			if err := p.matchOptionArg(state, true, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
			return true, nil
		}
		r := c.r
		switch {
		case r == state.argQuoteChar && p.embedQuoteCharWithDouble:
			state.valueBldr.WriteRune(r)
			state.optionState = optionStateInValue
		case isWhitespace(r):
			if err := p.matchOptionArg(state, true, args); err != nil {
				return false, err
			}
			state.argState = argStateWaitOptionOrParam
		default:
			return false, state.newOptionError(QuotedOptionValueNotFollowedByWhitespace)
		}
		return true, nil

	case optionStateInValueEscaped:
		if c.separator {
			return false, state.newOptionError(EscapeCharAtEndOfOptionValue)
		}
		if !p.canCharBeEscaped(state, c.r) {
			return false, state.newOptionError(EscapedCharInOptionValueCannotBeEscaped)
		}
		state.valueBldr.WriteRune(c.r)
		state.optionState = optionStateInValue
		return true, nil
	}
	return true, nil
}

// finaliseOptionCode freezes the accumulated code and decides, from the kind
// of announcement, whether a value follows. An unambiguous value announcer
// after a code no matcher allows a value for is an error; an ambiguous one
// just ends the option.
func (p *Parser[O, P]) finaliseOptionCode(state *parseState, announced valueAnnounced, args *Args[O, P]) error {
	if err := state.setOptionCode(); err != nil {
		return err
	}
	switch announced {
	case valueAnnouncedDefinitely:
		state.optionValueAnnouncerIsAmbiguous = false
		if p.canOptionCodeHaveValue(state) {
			state.optionState = optionStateWaitOptionValue
			return nil
		}
		return state.newOptionError(NoMatchForOptionWithValue)
	case valueAnnouncedAmbiguous:
		state.optionValueAnnouncerIsAmbiguous = true
		if p.canOptionCodeHaveValue(state) {
			state.optionState = optionStateWaitOptionValue
			return nil
		}
		fallthrough
	default:
		state.currentOptionValueMayBeParam = false
		if err := p.matchOptionArg(state, false, args); err != nil {
			return err
		}
		state.argState = argStateWaitOptionOrParam
		return nil
	}
}

// finaliseParse settles whatever argument was in flight when input ended.
func (p *Parser[O, P]) finaliseParse(state *parseState, args *Args[O, P]) error {
	switch state.argState {
	case argStateWaitBinary, argStateWaitOptionOrParam:
		return nil

	case argStateInParam:
		if state.valueQuoted {
			return state.newParamError(ParamMissingClosingQuote)
		}
		return p.matchParamArg(state, args)

	case argStateInParamPossibleEndQuote:
		return p.matchParamArg(state, args)

	case argStateInParamEscaped:
		return state.newParamError(EscapedCharInParamCannotBeEscaped)

	case argStateInOption:
		switch state.optionState {
		case optionStateInCode:
			if err := state.setOptionCode(); err != nil {
				return err
			}
			state.currentOptionValueMayBeParam = false
			return p.matchOptionArg(state, false, args)
		case optionStateWaitOptionValue:
			verdict, err := p.optionValueVerdict(state, false)
			if err != nil {
				return err
			}
			if verdict == verdictMust {
				return state.newOptionError(OptionMissingValue)
			}
			state.currentOptionValueMayBeParam = false
			return p.matchOptionArg(state, false, args)
		case optionStateInValue:
			if state.valueQuoted {
				return state.newOptionError(OptionValueMissingClosingQuote)
			}
			return p.matchOptionArg(state, true, args)
		case optionStateInValuePossibleEndQuote:
			return p.matchOptionArg(state, true, args)
		case optionStateInValueEscaped:
			return state.newOptionError(EscapeCharAtEndOfLine)
		}
	}
	return nil
}

func (p *Parser[O, P]) canCharBeEscaped(state *parseState, r rune) bool {
	for _, logical := range p.escapableLogicalChars {
		switch logical {
		case EscapableEscape:
			if p.isEscapeChar(r) {
				return true
			}
		case EscapableQuote:
			if state.valueQuoted && r == state.argQuoteChar {
				return true
			}
		case EscapableWhitespace:
			if isWhitespace(r) {
				return true
			}
		case EscapableOptionAnnouncer:
			if p.isOptionAnnouncer(r) {
				return true
			}
		case EscapableOptionValueAnnouncer:
			if p.isOptionValueAnnouncer(r) {
				return true
			}
		case EscapableAll:
			return true
		}
	}
	return runesContain(p.escapableChars, r)
}

func (p *Parser[O, P]) initialiseOptionParsing(state *parseState, r rune) {
	state.optionState = optionStateInCode
	state.optionAnnouncerChar = r
	state.optionCodeRunes = state.optionCodeRunes[:0]
	state.optionCode = ""
	state.argStartCharIdx = state.lineOrEnvArgCharIdx
	state.argStartEnvLineApproxCharIdx = state.envLineApproxCharIdx
}

func (p *Parser[O, P]) initialiseParamParsing(state *parseState, r rune, isBinary bool) {
	state.valueBldr.Reset()
	state.argStartCharIdx = state.lineOrEnvArgCharIdx
	state.argStartEnvLineApproxCharIdx = state.envLineApproxCharIdx
	state.valueQuoted = p.isQuoteChar(r)
	if state.valueQuoted {
		state.argQuoteChar = r
	} else {
		state.valueBldr.WriteRune(r)
	}
	state.currentParamIsBinary = isBinary
}

func (p *Parser[O, P]) initialiseOptionValueParsing(state *parseState, r rune) {
	state.valueBldr.Reset()
	state.valueQuoted = p.isQuoteChar(r)
	if state.valueQuoted {
		state.argQuoteChar = r
	} else {
		state.valueBldr.WriteRune(r)
	}
}

// canOptionCodeHaveValue reports whether any matcher claiming the current
// code, ignoring value filters, allows a value.
func (p *Parser[O, P]) canOptionCodeHaveValue(state *parseState) bool {
	if len(p.matchers) == 0 {
		return p.canOptionCodeHaveValueWithMatcher(state, &p.anyMatcher)
	}
	for _, matcher := range p.matchers {
		if p.canOptionCodeHaveValueWithMatcher(state, matcher) {
			return true
		}
	}
	return false
}

func (p *Parser[O, P]) canOptionCodeHaveValueWithMatcher(state *parseState, matcher *Matcher[O, P]) bool {
	return p.tryMatchOptionExcludingValue(state, matcher) && matcher.OptionHasValue != OptionValueNever
}

// optionValueVerdict aggregates per matcher verdicts on whether the token
// starting with the given first character is the current option's value.
// A single Must wins outright; otherwise any Possibly beats MustNot.
func (p *Parser[O, P]) optionValueVerdict(state *parseState, firstCharIsAnnouncer bool) (optionValueVerdict, error) {
	if len(p.matchers) == 0 {
		return p.optionValueVerdictWithMatcher(state, firstCharIsAnnouncer, &p.anyMatcher)
	}
	verdict := verdictMustNot
	for _, matcher := range p.matchers {
		matcherVerdict, err := p.optionValueVerdictWithMatcher(state, firstCharIsAnnouncer, matcher)
		if err != nil {
			return verdictMustNot, err
		}
		switch matcherVerdict {
		case verdictMust:
			return verdictMust, nil
		case verdictPossibly:
			verdict = verdictPossibly
		}
	}
	return verdict, nil
}

func (p *Parser[O, P]) optionValueVerdictWithMatcher(state *parseState, firstCharIsAnnouncer bool, matcher *Matcher[O, P]) (optionValueVerdict, error) {
	if !p.tryMatchOptionExcludingValue(state, matcher) {
		return verdictMustNot, nil
	}
	switch matcher.OptionHasValue {
	case OptionValueAlways:
		if matcher.OptionValueCanStartWithAnnouncer {
			return verdictMust, nil
		}
		if firstCharIsAnnouncer {
			return verdictMustNot, state.newOptionError(OptionValueCannotStartWithAnnouncer)
		}
		return verdictMust, nil
	case OptionValueIfPossible:
		if state.optionValueAnnouncerIsAmbiguous {
			if firstCharIsAnnouncer {
				return verdictMustNot, nil
			}
			return verdictPossibly, nil
		}
		if firstCharIsAnnouncer {
			return verdictMustNot, state.newOptionError(OptionValueCannotStartWithAnnouncer)
		}
		return verdictMust, nil
	default:
		return verdictMustNot, nil
	}
}

// matchOptionArg settles the current option. When the first attempt with the
// tentative value fails and the value announcer was ambiguous, the option is
// retried without the value and the captured text is reclassified as a
// parameter.
func (p *Parser[O, P]) matchOptionArg(state *parseState, hasValue bool, args *Args[O, P]) error {
	if matcher := p.tryFindOptionMatcher(state, hasValue); matcher != nil {
		p.addOptionArg(state, hasValue, matcher, args)
		return nil
	}
	if hasValue && state.currentOptionValueMayBeParam {
		if matcher := p.tryFindOptionMatcher(state, false); matcher != nil {
			p.addOptionArg(state, false, matcher, args)
			return p.matchParamArg(state, args)
		}
	}
	return state.newOptionError(UnmatchedOption)
}

func (p *Parser[O, P]) tryFindOptionMatcher(state *parseState, hasValue bool) *Matcher[O, P] {
	if len(p.matchers) == 0 {
		return &p.anyMatcher
	}
	for _, matcher := range p.matchers {
		if p.tryMatchOption(state, hasValue, matcher) {
			return matcher
		}
	}
	return nil
}

func (p *Parser[O, P]) tryMatchOption(state *parseState, hasValue bool, matcher *Matcher[O, P]) bool {
	if !p.tryMatchOptionExcludingValue(state, matcher) {
		return false
	}
	switch matcher.OptionHasValue {
	case OptionValueAlways:
		return hasValue && matchValueTextFilter(state.valueBldr.String(), matcher.ValueText, p.optionValuesCaseSensitive)
	case OptionValueIfPossible:
		if hasValue {
			return matchValueTextFilter(state.valueBldr.String(), matcher.ValueText, p.optionValuesCaseSensitive)
		}
		return true
	default:
		return !hasValue
	}
}

func (p *Parser[O, P]) tryMatchOptionExcludingValue(state *parseState, matcher *Matcher[O, P]) bool {
	return matchIndexFilter(state.argCount, matcher.ArgIndices) &&
		matchArgTypeFilter(MatchArgTypeOption, matcher.ArgType) &&
		matchIndexFilter(state.optionCount, matcher.OptionIndices) &&
		matchOptionCodesFilter(state.optionCode, matcher.OptionCodes, p.optionCodesCaseSensitive)
}

func (p *Parser[O, P]) matchParamArg(state *parseState, args *Args[O, P]) error {
	if state.currentParamIsBinary {
		p.addBinaryArg(state, &p.anyMatcher, args)
		return nil
	}
	var matched *Matcher[O, P]
	if len(p.matchers) == 0 {
		matched = &p.anyMatcher
	} else {
		for _, matcher := range p.matchers {
			if p.tryMatchParam(state, matcher) {
				matched = matcher
				break
			}
		}
	}
	if matched == nil {
		return state.newParamError(UnmatchedParam)
	}
	p.addParamArg(state, matched, args)
	return nil
}

func (p *Parser[O, P]) tryMatchParam(state *parseState, matcher *Matcher[O, P]) bool {
	return matchIndexFilter(state.argCount, matcher.ArgIndices) &&
		matchArgTypeFilter(MatchArgTypeParam, matcher.ArgType) &&
		matchIndexFilter(state.paramCount, matcher.ParamIndices) &&
		matchValueTextFilter(state.valueBldr.String(), matcher.ValueText, p.paramsCaseSensitive)
}

func (p *Parser[O, P]) newBaseArg(state *parseState, matcher *Matcher[O, P]) baseArg[O, P] {
	return baseArg[O, P]{
		matcher:                matcher,
		argIndex:               state.argCount,
		charIndex:              state.argStartCharIdx,
		envLineApproxCharIndex: state.argStartEnvLineApproxCharIdx,
		envArgIndex:            state.envArgIdx,
	}
}

func (p *Parser[O, P]) addBinaryArg(state *parseState, matcher *Matcher[O, P], args *Args[O, P]) {
	*args = append(*args, &BinaryArg[O, P]{
		baseArg:   p.newBaseArg(state, matcher),
		valueText: state.valueBldr.String(),
	})
	state.argCount++
	state.currentParamIsBinary = false
}

func (p *Parser[O, P]) addParamArg(state *parseState, matcher *Matcher[O, P], args *Args[O, P]) {
	*args = append(*args, &ParamArg[O, P]{
		baseArg:    p.newBaseArg(state, matcher),
		paramIndex: state.paramCount,
		valueText:  state.valueBldr.String(),
	})
	state.argCount++
	state.paramCount++
}

func (p *Parser[O, P]) addOptionArg(state *parseState, hasValue bool, matcher *Matcher[O, P], args *Args[O, P]) {
	arg := &OptionArg[O, P]{
		baseArg:     p.newBaseArg(state, matcher),
		optionIndex: state.optionCount,
		code:        state.optionCode,
	}
	if hasValue {
		arg.valueText = state.valueBldr.String()
		arg.hasValue = true
	}
	*args = append(*args, arg)
	state.argCount++
	state.optionCount++
}
