package clarity

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// headerPatterns match "(define-<visibility> (<name>" and capture the name.
// The parameter text is found separately by balancing parentheses.
var headerPatterns = lo.Map(domain.Visibilities, func(v domain.Visibility, _ int) visibilityPattern {
	return visibilityPattern{
		visibility: v,
		re:         regexp.MustCompile(`\(` + regexp.QuoteMeta(v.DefineKeyword()) + `\s+\(([^\s()]+)`),
	}
})

type visibilityPattern struct {
	visibility domain.Visibility
	re         *regexp.Regexp
}

// Scanner extracts function signatures from contract text
type Scanner struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewScanner creates a new source scanner
func NewScanner(cfg *config.RuntimeConfig, log *slog.Logger) *Scanner {
	return &Scanner{cfg: cfg, log: log.With("component", "Scanner")}
}

// Scan scans every file. Files are visited in path order so repeated scans of
// the same input produce the same sequence.
func (s *Scanner) Scan(files map[string]string) []*domain.FunctionDescriptor {
	paths := lo.Keys(files)
	sort.Strings(paths)

	var functions []*domain.FunctionDescriptor
	for _, path := range paths {
		functions = append(functions, s.ScanFile(path, files[path])...)
	}
	return functions
}

// ScanFile scans a single contract. Each visibility kind is searched
// independently, public first, then private, then read-only.
func (s *Scanner) ScanFile(path, text string) []*domain.FunctionDescriptor {
	contractName := s.contractName(path)

	var functions []*domain.FunctionDescriptor
	for _, pattern := range headerPatterns {
		for _, m := range pattern.re.FindAllStringSubmatchIndex(text, -1) {
			name := text[m[2]:m[3]]
			paramText, ok := headerParameters(text, m[3])
			if !ok {
				s.log.Debug("unterminated function header", "file", path, "function", name)
				continue
			}

			parsed := ParseParameters(paramText)
			if parsed.Outcome.Guessed() {
				s.log.Warn("parameter list guessed from loose match",
					"file", path, "function", name, "text", paramText)
			}

			functions = append(functions, &domain.FunctionDescriptor{
				Name:         name,
				Visibility:   pattern.visibility,
				ContractName: contractName,
				Parameters:   parsed.Parameters,
				ParseOutcome: parsed.Outcome,
				Signature:    signature(name, paramText),
				FilePath:     path,
			})
		}
	}

	s.log.Debug("scanned contract", "file", path, "functions", len(functions))
	return functions
}

// contractName prefers the name Clarinet.toml registers for path. Files the
// manifest does not list are named after their base name.
func (s *Scanner) contractName(path string) string {
	if name, ok := s.cfg.Manifest.ContractFor(s.cfg.ProjectRoot, path); ok {
		return name
	}
	return domain.ContractName(path)
}

// headerParameters returns the text from offset up to the paren closing the
// name/parameter list, which is already open at offset.
func headerParameters(text string, offset int) (string, bool) {
	depth := 1
	for i := offset; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[offset:i]), true
			}
		}
	}
	return "", false
}

func signature(name, paramText string) string {
	if paramText == "" {
		return fmt.Sprintf("(%s)", name)
	}
	return fmt.Sprintf("(%s %s)", name, paramText)
}
