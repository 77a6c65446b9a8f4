package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyValue is returned when a parameter value is blank
var ErrEmptyValue = errors.New("parameter value cannot be empty")

// InvalidValueError describes a value that does not match its declared type
type InvalidValueError struct {
	Type  string
	Usage string
}

func (e *InvalidValueError) Error() string {
	return "invalid " + e.Type + " format. Use: " + e.Usage
}

type valueRule struct {
	example string
	usage   string
	valid   func(string) bool
}

var (
	uintPattern = regexp.MustCompile(`^u\d+$`)
	intPattern  = regexp.MustCompile(`^i-?\d+$`)
)

// valueRules maps a base type tag to its example and validation rule.
// Types with a nil valid func accept any non-empty value.
var valueRules = map[string]valueRule{
	"uint": {
		example: "u100",
		usage:   "u123",
		valid:   uintPattern.MatchString,
	},
	"int": {
		example: "i100",
		usage:   "i123 or i-123",
		valid:   intPattern.MatchString,
	},
	"bool": {
		example: "true",
		usage:   "true or false",
		valid: func(v string) bool {
			return v == "true" || v == "false"
		},
	},
	"string-ascii": {
		example: `"hello"`,
		usage:   `"hello"`,
		valid: func(v string) bool {
			return strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`)
		},
	},
	"string-utf8": {
		example: `u"hello"`,
		usage:   `u"hello"`,
		valid: func(v string) bool {
			return strings.HasPrefix(v, `u"`) && strings.HasSuffix(v, `"`)
		},
	},
	"principal": {example: "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"},
	"list":      {example: "(list u1 u2 u3)"},
	"tuple":     {example: `(tuple (key "value"))`},
	"optional":  {example: "(some u100)"},
	"response":  {example: "(ok u100)"},
}

// ExampleValue returns a literal of the given type to pre-fill prompts with
func ExampleValue(typeTag string) string {
	if rule, ok := valueRules[typeTag]; ok {
		return rule.example
	}
	return "value"
}

// ValidateValue checks a literal against the declared type tag
func ValidateValue(value, typeTag string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyValue
	}
	rule, ok := valueRules[typeTag]
	if !ok || rule.valid == nil {
		return nil
	}
	if !rule.valid(value) {
		return &InvalidValueError{Type: typeTag, Usage: rule.usage}
	}
	return nil
}
