package domain

import (
	"fmt"
	"strings"
)

// Visibility is the callability kind of a Clarity function definition
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityReadOnly Visibility = "read-only"
)

// Visibilities lists the definition kinds in scan order
var Visibilities = []Visibility{
	VisibilityPublic,
	VisibilityPrivate,
	VisibilityReadOnly,
}

// DefineKeyword returns the define form for the visibility, e.g. define-read-only
func (v Visibility) DefineKeyword() string {
	return "define-" + string(v)
}

// ParameterDescriptor is a single name/type pair from a function header
type ParameterDescriptor struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// BaseType returns the type tag used for example and validation lookups.
// Compound types keep only their head: "(string-ascii 32)" -> "string-ascii".
func (p ParameterDescriptor) BaseType() string {
	t := strings.TrimSpace(p.Type)
	t = strings.TrimLeft(t, "(")
	if fields := strings.Fields(t); len(fields) > 0 {
		return strings.TrimRight(fields[0], ")")
	}
	return t
}

// FunctionDescriptor describes a function definition found in a contract file
type FunctionDescriptor struct {
	Name         string                `json:"name"`
	Visibility   Visibility            `json:"visibility"`
	ContractName string                `json:"contractName"`
	Parameters   []ParameterDescriptor `json:"parameters"`
	ParseOutcome ParseOutcome          `json:"parseOutcome"`
	Signature    string                `json:"signature"`
	FilePath     string                `json:"filePath"`
}

// Description is the disambiguating text shown next to the function name
func (f *FunctionDescriptor) Description() string {
	return fmt.Sprintf("%s - %s (%d params)", f.ContractName, f.Visibility, len(f.Parameters))
}

// CallExpression builds the console invocation for the given argument values
func (f *FunctionDescriptor) CallExpression(values []string) string {
	if len(values) == 0 {
		return fmt.Sprintf("(%s)", f.Name)
	}
	return fmt.Sprintf("(%s %s)", f.Name, strings.Join(values, " "))
}
