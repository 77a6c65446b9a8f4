package clarity

import (
	"regexp"
	"strings"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// Extractor pulls a complete function definition out of a contract's text.
//
// The end of the definition is where a running count of open minus close
// delimiters returns to zero. With the brace delimiter (the default) this only
// lines up with the function boundary when the contract's brace nesting
// mirrors it; the paren delimiter follows Clarity's own grouping.
type Extractor struct {
	open  rune
	close rune
}

// NewExtractor creates an extractor counting the given delimiter
func NewExtractor(cfg *config.RuntimeConfig) *Extractor {
	open, close := cfg.ExtractDelimiter.Runes()
	return &Extractor{open: open, close: close}
}

// Extract returns the definition of fn, or false if no header matches or the
// balance never returns to zero before the end of the text.
func (e *Extractor) Extract(text string, fn *domain.FunctionDescriptor) (string, bool) {
	header := regexp.MustCompile(`\(define-(public|private|read-only)\s+\(` + regexp.QuoteMeta(fn.Name) + `(\s|\))`)

	var (
		lines    []string
		inside   bool
		balance  int
		complete bool
	)
	for _, line := range strings.Split(text, "\n") {
		if !inside {
			if !header.MatchString(line) {
				continue
			}
			inside = true
			lines = append(lines, line)
			balance += e.net(line)
			continue
		}

		lines = append(lines, line)
		balance += e.net(line)
		if balance == 0 {
			complete = true
			break
		}
	}

	if !complete {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// net returns opening minus closing delimiters on the line
func (e *Extractor) net(line string) int {
	return strings.Count(line, string(e.open)) - strings.Count(line, string(e.close))
}
