package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string // empty when no Clarinet project was found

	// Toolchain
	ClarinetPath string // substituted for the bare "clarinet" in every invocation
	Shell        string // shell started inside each terminal session

	// Source layout
	ContractGlob string // doublestar pattern relative to ProjectRoot
	ScratchDir   string // relative to ProjectRoot, staged test files live here
	ScratchExt   string

	// ExtractDelimiter selects the nesting marker used to find a function's end
	ExtractDelimiter Delimiter

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	Pacing PacingPolicy

	// Resolved configurations
	Manifest *ClarinetManifest // nil when Clarinet.toml is absent
}

// PacingPolicy holds the fixed delays used in place of acknowledgements from
// the external console. None of them guarantee the console consumed a command.
type PacingPolicy struct {
	ConsoleWarmup    time.Duration // after starting the console, before the first command
	BatchSettle      time.Duration // before the first line of a batch
	BatchInterval    time.Duration // between consecutive batch lines
	DefinitionSettle time.Duration // between a definition and its test call
	CleanupDelay     time.Duration // before a staged file is removed
}

// DefaultPacing returns the delays the console is known to tolerate
func DefaultPacing() PacingPolicy {
	return PacingPolicy{
		ConsoleWarmup:    3000 * time.Millisecond,
		BatchSettle:      5000 * time.Millisecond,
		BatchInterval:    2000 * time.Millisecond,
		DefinitionSettle: 2000 * time.Millisecond,
		CleanupDelay:     5000 * time.Millisecond,
	}
}

// Delimiter is a nesting marker pair counted by the body extractor
type Delimiter string

const (
	DelimiterBrace Delimiter = "brace"
	DelimiterParen Delimiter = "paren"
)

// Runes returns the opening and closing characters
func (d Delimiter) Runes() (open, close rune) {
	if d == DelimiterParen {
		return '(', ')'
	}
	return '{', '}'
}

// HasProject reports whether a project root was resolved
func (c *RuntimeConfig) HasProject() bool {
	return c != nil && c.ProjectRoot != ""
}
