package argline

// Matcher is a filter which classifies arguments produced by a Parser. Each
// parsed option or parameter is matched against the parser's matchers in
// registration order and the first matcher whose filters all pass claims the
// argument.
//
// Every filter field is conjunctive and its zero value accepts everything, so
// an empty Matcher matches any argument. Nil index slices accept any index;
// an empty non-nil slice accepts none.
//
// The generic parameters O and P carry application data: a Matcher's
// OptionTag or ParamTag travels to the Arg it claims and is otherwise opaque
// to the parser. Use int (or struct{}) when no tag data is needed.
type Matcher[O, P any] struct {
	index int

	// Name identifies the matcher in FindMatcher and DeleteMatcher. Not
	// consulted during matching.
	Name string
	// Help is display text for the argument the matcher describes.
	Help string

	// OptionTag is copied to every OptionArg claimed by this matcher.
	OptionTag O
	// ParamTag is copied to every ParamArg claimed by this matcher.
	ParamTag P

	// ArgIndices restricts matching to arguments at the given overall
	// indices.
	ArgIndices []int
	// ArgType restricts matching to options or parameters.
	ArgType MatchArgType
	// OptionIndices restricts matching to options at the given option
	// indices.
	OptionIndices []int
	// OptionCodes restricts matching to options whose code matches one of
	// the entries.
	OptionCodes []RegexOrText
	// OptionHasValue declares whether matched options carry a value.
	OptionHasValue OptionHasValue
	// OptionValueCanStartWithAnnouncer permits an option value whose first
	// character is an option announcer. Only honored when OptionHasValue is
	// OptionValueAlways.
	OptionValueCanStartWithAnnouncer bool
	// ParamIndices restricts matching to parameters at the given parameter
	// indices.
	ParamIndices []int
	// ValueText restricts matching to parameter values or option values
	// matching the entry.
	ValueText *RegexOrText
}

// Index returns the matcher's position in its parser's registry. Assigned
// when the matcher is added and maintained across deletions.
func (m *Matcher[O, P]) Index() int {
	return m.index
}

func matchIndexFilter(index int, filter []int) bool {
	if filter == nil {
		return true
	}
	for _, idx := range filter {
		if idx == index {
			return true
		}
	}
	return false
}

func matchArgTypeFilter(argType MatchArgType, filter MatchArgType) bool {
	return filter == MatchArgTypeAny || filter == argType
}

func matchOptionCodesFilter(code string, filter []RegexOrText, caseSensitive bool) bool {
	if filter == nil {
		return true
	}
	for i := range filter {
		if filter[i].IsMatch(code, caseSensitive) {
			return true
		}
	}
	return false
}

func matchValueTextFilter(value string, filter *RegexOrText, caseSensitive bool) bool {
	if filter == nil {
		return true
	}
	return filter.IsMatch(value, caseSensitive)
}
