package domain

// ParseOutcome records how confidently a parameter list was recovered
type ParseOutcome string

const (
	// ParseOutcomePrecise means every parameter came from a bracketed (name type) group
	ParseOutcomePrecise ParseOutcome = "precise"
	// ParseOutcomeSinglePair means the whole text was a bare "name type" pair
	ParseOutcomeSinglePair ParseOutcome = "single-pair"
	// ParseOutcomeLooseFallback means pairs were guessed; tokens may have been dropped
	ParseOutcomeLooseFallback ParseOutcome = "loose-fallback"
	// ParseOutcomeEmpty means no parameters were found
	ParseOutcomeEmpty ParseOutcome = "empty"
)

// Guessed reports whether the parameter list may be inaccurate
func (o ParseOutcome) Guessed() bool {
	return o == ParseOutcomeLooseFallback
}

// ParsedParameters is the result of parsing a function's parameter text
type ParsedParameters struct {
	Outcome    ParseOutcome
	Parameters []ParameterDescriptor
}
