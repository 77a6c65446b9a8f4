package clarity

import (
	"fmt"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

type position struct {
	line, column int
}

// Diagnose reports unbalanced parentheses and unterminated string literals.
// Comments (";" to end of line) and string contents are skipped.
func Diagnose(path, text string) []domain.Diagnostic {
	var (
		diags     []domain.Diagnostic
		open      []position
		inString  bool
		inComment bool
		escaped   bool
		stringAt  position
		line      = 1
		column    = 0
	)

	report := func(at position, severity domain.Severity, format string, args ...any) {
		diags = append(diags, domain.Diagnostic{
			File:     path,
			Line:     at.line,
			Column:   at.column,
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	for _, r := range text {
		column++
		if r == '\n' {
			line++
			column = 0
			inComment = false
			continue
		}
		here := position{line, column}

		switch {
		case inComment:
		case inString:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
		case r == ';':
			inComment = true
		case r == '"':
			inString = true
			stringAt = here
		case r == '(':
			open = append(open, here)
		case r == ')':
			if len(open) == 0 {
				report(here, domain.SeverityError, "unexpected closing parenthesis")
				continue
			}
			open = open[:len(open)-1]
		}
	}

	if inString {
		report(stringAt, domain.SeverityError, "unterminated string literal")
	}
	for _, at := range open {
		report(at, domain.SeverityError, "unclosed parenthesis")
	}
	return diags
}

// Checker exposes Diagnose as a usecase.ContractChecker
type Checker struct{}

// NewChecker creates a new structural checker
func NewChecker() *Checker {
	return &Checker{}
}

func (Checker) Diagnose(path, text string) []domain.Diagnostic {
	return Diagnose(path, text)
}
