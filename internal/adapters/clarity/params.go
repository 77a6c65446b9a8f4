package clarity

import (
	"regexp"
	"strings"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

var (
	singlePairPattern = regexp.MustCompile(`^(\w+)\s+(\w+)$`)
	loosePairPattern  = regexp.MustCompile(`(\w+)\s+(\w+)`)
)

// ParseParameters recovers the parameter list from the text between a
// function's name and the end of its header. Tiers are tried in order and the
// outcome records which one produced the result. It never fails: text that
// matches no tier yields an empty list.
func ParseParameters(text string) domain.ParsedParameters {
	text = strings.TrimSpace(text)
	if text == "" || text == "()" {
		return domain.ParsedParameters{Outcome: domain.ParseOutcomeEmpty}
	}

	// (name type) groups; the type keeps nested parens, e.g. (items (list 10 uint))
	if params := parseGroups(text); len(params) > 0 {
		return domain.ParsedParameters{Outcome: domain.ParseOutcomePrecise, Parameters: params}
	}

	// bare "name type"
	if m := singlePairPattern.FindStringSubmatch(text); m != nil {
		return domain.ParsedParameters{
			Outcome:    domain.ParseOutcomeSinglePair,
			Parameters: []domain.ParameterDescriptor{{Name: m[1], Type: m[2]}},
		}
	}

	// Anything that looks like word pairs. Hyphenated names and type-only
	// tokens get mangled or dropped here.
	if pairs := loosePairPattern.FindAllStringSubmatch(text, -1); len(pairs) > 0 {
		params := make([]domain.ParameterDescriptor, 0, len(pairs))
		for _, pair := range pairs {
			params = append(params, domain.ParameterDescriptor{Name: pair[1], Type: pair[2]})
		}
		return domain.ParsedParameters{Outcome: domain.ParseOutcomeLooseFallback, Parameters: params}
	}

	return domain.ParsedParameters{Outcome: domain.ParseOutcomeEmpty}
}

// parseGroups splits each top-level bracketed group into a name and a type
func parseGroups(text string) []domain.ParameterDescriptor {
	var params []domain.ParameterDescriptor
	for _, group := range topLevelGroups(text) {
		fields := strings.Fields(group)
		if len(fields) < 2 {
			continue
		}
		params = append(params, domain.ParameterDescriptor{
			Name: fields[0],
			Type: strings.Join(fields[1:], " "),
		})
	}
	return params
}

// topLevelGroups returns the contents of every balanced top-level (...) group.
// A group left open at the end of the text is ignored.
func topLevelGroups(text string) []string {
	var (
		groups []string
		depth  int
		start  int
	)
	for i, r := range text {
		switch r {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				groups = append(groups, text[start+1:i])
			}
		}
	}
	return groups
}
