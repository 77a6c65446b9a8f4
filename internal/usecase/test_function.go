package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// TestFunctionParams contains parameters for testing a function
type TestFunctionParams struct {
	// Name narrows the picker to functions with this name. Empty shows all.
	Name string
	// Values skips prompting when set; it must hold one literal per parameter.
	Values []string
}

// TestFunctionResult describes what was sent to the console
type TestFunctionResult struct {
	Function       *domain.FunctionDescriptor
	Values         []string
	Definition     string
	CallExpression string
	StagedFile     *domain.StagedTestFile
}

// TestFunction loads a function's definition into the console and calls it
// with values the user supplies.
type TestFunction struct {
	config    *config.RuntimeConfig
	list      *ListFunctions
	selector  FunctionSelector
	collect   *CollectParameters
	finder    ContractFinder
	extractor DefinitionExtractor
	scratch   ScratchStore
	driver    TerminalDriver
	checker   ToolchainChecker
	clock     Clock
	scheduler Scheduler
	progress  ProgressSink
	log       *slog.Logger
}

// NewTestFunction creates a new TestFunction use case
func NewTestFunction(
	cfg *config.RuntimeConfig,
	list *ListFunctions,
	selector FunctionSelector,
	collect *CollectParameters,
	finder ContractFinder,
	extractor DefinitionExtractor,
	scratch ScratchStore,
	driver TerminalDriver,
	checker ToolchainChecker,
	clock Clock,
	scheduler Scheduler,
	progress ProgressSink,
	log *slog.Logger,
) *TestFunction {
	return &TestFunction{
		config:    cfg,
		list:      list,
		selector:  selector,
		collect:   collect,
		finder:    finder,
		extractor: extractor,
		scratch:   scratch,
		driver:    driver,
		checker:   checker,
		clock:     clock,
		scheduler: scheduler,
		progress:  progress,
		log:       log,
	}
}

// Run executes the use case
func (uc *TestFunction) Run(ctx context.Context, params TestFunctionParams) (*TestFunctionResult, error) {
	// Discover
	listed, err := uc.list.Run(ctx)
	if err != nil {
		return nil, uc.fail("discover", err)
	}

	candidates := listed.Functions
	if params.Name != "" {
		candidates = lo.Filter(candidates, func(fn *domain.FunctionDescriptor, _ int) bool {
			return fn.Name == params.Name
		})
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no function named %s in .clar files", params.Name)
		}
	}

	// Select. A name that matches exactly one function needs no picker.
	fn := candidates[0]
	if params.Name == "" || len(candidates) > 1 {
		if fn, err = uc.selector.SelectFunction(ctx, candidates); err != nil {
			return nil, err
		}
	}

	// Collect
	values, err := uc.values(ctx, fn, params.Values)
	if err != nil {
		return nil, err
	}

	// Extract from the file as it is now, not as it was when scanned
	text, err := uc.finder.ReadContract(ctx, fn.FilePath)
	if err != nil {
		return nil, uc.fail("read contract", err)
	}
	definition, ok := uc.extractor.Extract(text, fn)
	if !ok {
		return nil, domain.DefinitionNotFoundError{Function: fn.Name}
	}
	definition = strings.TrimSpace(definition)
	call := fn.CallExpression(values)

	// Stage
	if _, err := uc.scratch.EnsureDir(ctx); err != nil {
		return nil, uc.fail("stage", err)
	}
	staged, err := uc.scratch.Write(ctx, domain.StagedFileName(fn.Name, uc.clock.Now(), uc.config.ScratchExt), call)
	if err != nil {
		return nil, uc.fail("stage", err)
	}
	defer uc.scheduleCleanup(staged)

	// Execute. Once the definition is on its way the call must follow, so an
	// interrupt from here on no longer stops the sequence.
	execCtx := context.WithoutCancel(ctx)
	checkToolchain(execCtx, uc.checker, uc.log)
	if err := uc.execute(execCtx, fn, definition, call); err != nil {
		return nil, uc.fail("execute", err)
	}

	uc.log.Debug("function sent to console", "function", fn.Name, "call", call, "staged", staged.Path)
	return &TestFunctionResult{
		Function:       fn,
		Values:         values,
		Definition:     definition,
		CallExpression: call,
		StagedFile:     staged,
	}, nil
}

func (uc *TestFunction) values(ctx context.Context, fn *domain.FunctionDescriptor, given []string) ([]string, error) {
	if given == nil {
		return uc.collect.Run(ctx, fn.Parameters)
	}

	if len(given) != len(fn.Parameters) {
		return nil, fmt.Errorf("%s takes %d parameters, got %d values", fn.Name, len(fn.Parameters), len(given))
	}
	for i, param := range fn.Parameters {
		if err := domain.ValidateValue(given[i], param.BaseType()); err != nil {
			return nil, fmt.Errorf("parameter %s: %w", param.Name, err)
		}
	}
	return given, nil
}

func (uc *TestFunction) execute(ctx context.Context, fn *domain.FunctionDescriptor, definition, call string) error {
	if err := uc.driver.Send(ctx, domain.ChannelConsole, definition); err != nil {
		return err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "definition_settle",
		Message: fmt.Sprintf("Loading %s into the console...", fn.Name),
		Spinner: true,
	})
	err := uc.clock.Sleep(ctx, uc.config.Pacing.DefinitionSettle)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "definition_loaded"})
	if err != nil {
		return err
	}

	return uc.driver.Send(ctx, domain.ChannelConsole, call)
}

func (uc *TestFunction) scheduleCleanup(staged *domain.StagedTestFile) {
	uc.scheduler.After(uc.config.Pacing.CleanupDelay, func() {
		if err := uc.scratch.Remove(staged.Path); err != nil {
			uc.log.Error("failed to clean up staged test file", "path", staged.Path, "error", err)
		}
	})
}

// fail passes expected outcomes through and wraps everything else
func (uc *TestFunction) fail(step string, err error) error {
	switch {
	case domain.IsPrecondition(err), errors.Is(err, domain.ErrCancelled):
		return err
	case errors.Is(err, context.Canceled):
		return domain.ErrCancelled
	}
	uc.log.Error("function test failed", "step", step, "error", err)
	return &domain.TestFailedError{Err: err}
}
