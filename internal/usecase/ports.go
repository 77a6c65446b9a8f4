package usecase

import (
	"context"
	"time"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// ContractFinder locates and reads Clarity sources in the project
type ContractFinder interface {
	// FindContracts returns the contract files under root, sorted
	FindContracts(ctx context.Context, root string) ([]string, error)
	// ReadContracts loads the current text of every path
	ReadContracts(ctx context.Context, paths []string) (map[string]string, error)
	// ReadContract loads the current text of a single file
	ReadContract(ctx context.Context, path string) (string, error)
}

// FunctionScanner turns contract text into function descriptors
type FunctionScanner interface {
	Scan(files map[string]string) []*domain.FunctionDescriptor
}

// DefinitionExtractor pulls a function's full definition out of contract text
type DefinitionExtractor interface {
	Extract(text string, fn *domain.FunctionDescriptor) (string, bool)
}

// ContractChecker reports structural problems in contract text
type ContractChecker interface {
	Diagnose(path, text string) []domain.Diagnostic
}

// ScratchStore manages staged test files
type ScratchStore interface {
	// EnsureDir creates the scratch directory if needed and returns its path
	EnsureDir(ctx context.Context) (string, error)
	// Write stores content under name inside the scratch directory
	Write(ctx context.Context, name, content string) (*domain.StagedTestFile, error)
	// Remove deletes a staged file
	Remove(path string) error
}

// FunctionSelector lets the user pick one function
type FunctionSelector interface {
	SelectFunction(ctx context.Context, functions []*domain.FunctionDescriptor) (*domain.FunctionDescriptor, error)
}

// NetworkSelector lets the user pick a deployment network
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []domain.Network) (domain.Network, error)
}

// ValuePrompter asks the user for the value of parameter index (1-based) of total
type ValuePrompter interface {
	PromptValue(ctx context.Context, index, total int, param domain.ParameterDescriptor) (string, error)
}

// TerminalDriver delivers text to the named terminal sessions
type TerminalDriver interface {
	// Open starts the session for channel if it is not running yet
	Open(ctx context.Context, channel domain.Channel) error
	// Send delivers one command on the given channel
	Send(ctx context.Context, channel domain.Channel, text string) error
	// SendBatch starts the console and schedules each non-blank line of text
	SendBatch(ctx context.Context, text string) error
}

// Clock abstracts time for pacing and staged file names
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// Scheduler runs deferred work
type Scheduler interface {
	After(d time.Duration, fn func())
}

// ToolchainChecker reports the installed clarinet version
type ToolchainChecker interface {
	Check(ctx context.Context) (string, error)
}

// PlanReader loads deployment plans from the project
type PlanReader interface {
	ListPlans(ctx context.Context, root string) ([]*domain.DeploymentPlan, error)
}

// ContractWatcher calls onChange whenever contract files change, until ctx ends
type ContractWatcher interface {
	Watch(ctx context.Context, root string, onChange func()) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
