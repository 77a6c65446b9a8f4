package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/clarity-cli/internal/adapters/timer"
	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

const (
	tokenPath = "/work/contracts/token.clar"
	tokenText = `(define-public (transfer (amount uint) (recipient principal)) {
  (ft-transfer? token amount tx-sender recipient)
})
(define-read-only (get-count) {
  (var-get count)
})`
	recipient = "'ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
)

var (
	transferFn = &domain.FunctionDescriptor{
		Name:         "transfer",
		Visibility:   domain.VisibilityPublic,
		ContractName: "token",
		FilePath:     tokenPath,
		Parameters: []domain.ParameterDescriptor{
			{Name: "amount", Type: "uint"},
			{Name: "recipient", Type: "principal"},
		},
	}
	getCountFn = &domain.FunctionDescriptor{
		Name:         "get-count",
		Visibility:   domain.VisibilityReadOnly,
		ContractName: "token",
		FilePath:     tokenPath,
	}
	startTime = time.UnixMilli(1700000000000)
)

type testFunctionFixture struct {
	cfg       *config.RuntimeConfig
	finder    *MockContractFinder
	scanner   *MockScanner
	selector  *MockSelector
	prompter  *MockPrompter
	extractor *MockExtractor
	scratch   *MockScratchStore
	driver    *MockDriver
	checker   *MockChecker
	clock     *timer.Fake
	progress  *MockProgressSink
}

func newTestFunctionFixture() *testFunctionFixture {
	f := &testFunctionFixture{
		cfg: &config.RuntimeConfig{
			ProjectRoot: "/work",
			ScratchExt:  "clar",
			Pacing:      config.DefaultPacing(),
		},
		finder:    new(MockContractFinder),
		scanner:   new(MockScanner),
		selector:  new(MockSelector),
		prompter:  new(MockPrompter),
		extractor: new(MockExtractor),
		scratch:   new(MockScratchStore),
		driver:    new(MockDriver),
		checker:   new(MockChecker),
		clock:     timer.NewFake(startTime),
		progress:  &MockProgressSink{},
	}
	f.checker.On("Check", mock.Anything).Return("clarinet 2.11.0", nil).Maybe()
	return f
}

func (f *testFunctionFixture) useCase() *usecase.TestFunction {
	log := discardLogger()
	list := usecase.NewListFunctions(f.cfg, f.finder, f.scanner, log)
	collect := usecase.NewCollectParameters(f.prompter)
	return usecase.NewTestFunction(f.cfg, list, f.selector, collect, f.finder, f.extractor,
		f.scratch, f.driver, f.checker, f.clock, f.clock, f.progress, log)
}

// discovers sets up a project holding the given functions in token.clar
func (f *testFunctionFixture) discovers(functions ...*domain.FunctionDescriptor) {
	files := map[string]string{tokenPath: tokenText}
	f.finder.On("FindContracts", mock.Anything, "/work").Return([]string{tokenPath}, nil)
	f.finder.On("ReadContracts", mock.Anything, []string{tokenPath}).Return(files, nil)
	f.scanner.On("Scan", files).Return(functions)
}

func (f *testFunctionFixture) assertExpectations(t *testing.T) {
	f.finder.AssertExpectations(t)
	f.scanner.AssertExpectations(t)
	f.selector.AssertExpectations(t)
	f.prompter.AssertExpectations(t)
	f.extractor.AssertExpectations(t)
	f.scratch.AssertExpectations(t)
	f.driver.AssertExpectations(t)
}

func TestTestFunction_HappyPath(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(transferFn, getCountFn)

	definition := "(define-public (transfer (amount uint) (recipient principal)) {\n  (ft-transfer? token amount tx-sender recipient)\n})"
	call := "(transfer u100 " + recipient + ")"
	stagedPath := "/work/contracts/temp_test_transfer_1700000000000.clar"

	f.selector.On("SelectFunction", mock.Anything, []*domain.FunctionDescriptor{transferFn, getCountFn}).Return(transferFn, nil)
	f.prompter.On("PromptValue", mock.Anything, 1, 2, transferFn.Parameters[0]).Return("u100", nil)
	f.prompter.On("PromptValue", mock.Anything, 2, 2, transferFn.Parameters[1]).Return(recipient, nil)
	f.finder.On("ReadContract", mock.Anything, tokenPath).Return(tokenText, nil)
	f.extractor.On("Extract", tokenText, transferFn).Return("  "+definition+"\n", true)
	f.scratch.On("EnsureDir", mock.Anything).Return("/work/contracts", nil)
	f.scratch.On("Write", mock.Anything, "temp_test_transfer_1700000000000.clar", call).
		Return(&domain.StagedTestFile{Path: stagedPath, Content: call}, nil)
	mock.InOrder(
		f.driver.On("Send", mock.Anything, domain.ChannelConsole, definition).Return(nil),
		f.driver.On("Send", mock.Anything, domain.ChannelConsole, call).Return(nil),
	)

	result, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	require.NoError(t, err)
	assert.Same(t, transferFn, result.Function)
	assert.Equal(t, []string{"u100", recipient}, result.Values)
	assert.Equal(t, definition, result.Definition)
	assert.Equal(t, call, result.CallExpression)
	assert.Equal(t, call, result.StagedFile.Content)

	// The definition settles before the call is sent
	assert.Equal(t, []time.Duration{2 * time.Second}, f.clock.Sleeps())
	require.Len(t, f.progress.events, 2)
	assert.True(t, f.progress.events[0].Spinner)

	// Cleanup is deferred, not immediate
	pending := f.clock.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 5*time.Second, pending[0].Delay)
	f.scratch.AssertNotCalled(t, "Remove", stagedPath)

	f.scratch.On("Remove", stagedPath).Return(nil).Once()
	f.clock.Flush()
	f.assertExpectations(t)
}

func TestTestFunction_ZeroParametersSkipPrompt(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(transferFn, getCountFn)

	f.selector.On("SelectFunction", mock.Anything, mock.Anything).Return(getCountFn, nil)
	f.finder.On("ReadContract", mock.Anything, tokenPath).Return(tokenText, nil)
	f.extractor.On("Extract", tokenText, getCountFn).Return("(define-read-only (get-count) {\n  (var-get count)\n})", true)
	f.scratch.On("EnsureDir", mock.Anything).Return("/work/contracts", nil)
	f.scratch.On("Write", mock.Anything, "temp_test_get-count_1700000000000.clar", "(get-count)").
		Return(&domain.StagedTestFile{Path: "/work/contracts/temp_test_get-count_1700000000000.clar", Content: "(get-count)"}, nil)
	f.driver.On("Send", mock.Anything, domain.ChannelConsole, mock.Anything).Return(nil).Twice()

	result, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	require.NoError(t, err)
	assert.Empty(t, result.Values)
	assert.Equal(t, "(get-count)", result.CallExpression)
	f.prompter.AssertNotCalled(t, "PromptValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTestFunction_Preconditions(t *testing.T) {
	t.Run("no project", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.cfg.ProjectRoot = ""

		_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})
		assert.ErrorIs(t, err, domain.ErrNoProject)
		f.finder.AssertNotCalled(t, "FindContracts", mock.Anything, mock.Anything)
	})

	t.Run("no contract files", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.finder.On("FindContracts", mock.Anything, "/work").Return([]string{}, nil)

		_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})
		assert.ErrorIs(t, err, domain.ErrNoContractFiles)
		assert.True(t, domain.IsPrecondition(err))
	})

	t.Run("no functions", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.discovers()

		_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})
		assert.ErrorIs(t, err, domain.ErrNoFunctions)
		f.selector.AssertNotCalled(t, "SelectFunction", mock.Anything, mock.Anything)
	})
}

func TestTestFunction_CancelledSelection(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(transferFn)
	f.selector.On("SelectFunction", mock.Anything, mock.Anything).Return(nil, domain.ErrCancelled)

	_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	assert.ErrorIs(t, err, domain.ErrCancelled)
	f.finder.AssertNotCalled(t, "ReadContract", mock.Anything, mock.Anything)
	f.driver.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestTestFunction_CancelledPrompt(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(transferFn)
	f.selector.On("SelectFunction", mock.Anything, mock.Anything).Return(transferFn, nil)
	f.prompter.On("PromptValue", mock.Anything, 1, 2, mock.Anything).Return("u5", nil)
	f.prompter.On("PromptValue", mock.Anything, 2, 2, mock.Anything).Return("", domain.ErrCancelled)

	_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	assert.ErrorIs(t, err, domain.ErrCancelled)
	f.scratch.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestTestFunction_DefinitionNotFound(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(getCountFn)
	f.selector.On("SelectFunction", mock.Anything, mock.Anything).Return(getCountFn, nil)
	f.finder.On("ReadContract", mock.Anything, tokenPath).Return("(define-read-only (get-count) {", nil)
	f.extractor.On("Extract", mock.Anything, getCountFn).Return("", false)

	_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	var notFound domain.DefinitionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "get-count", notFound.Function)
	assert.EqualError(t, err, "could not find function definition for get-count")
	f.scratch.AssertNotCalled(t, "EnsureDir", mock.Anything)
}

func TestTestFunction_SendFailureIsWrapped(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(getCountFn)
	boom := errors.New("pty closed")
	staged := &domain.StagedTestFile{Path: "/work/contracts/temp_test_get-count_1700000000000.clar", Content: "(get-count)"}

	f.selector.On("SelectFunction", mock.Anything, mock.Anything).Return(getCountFn, nil)
	f.finder.On("ReadContract", mock.Anything, tokenPath).Return(tokenText, nil)
	f.extractor.On("Extract", tokenText, getCountFn).Return("(define-read-only (get-count) {})", true)
	f.scratch.On("EnsureDir", mock.Anything).Return("/work/contracts", nil)
	f.scratch.On("Write", mock.Anything, mock.Anything, "(get-count)").Return(staged, nil)
	f.driver.On("Send", mock.Anything, domain.ChannelConsole, mock.Anything).Return(boom).Once()

	_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	var failed *domain.TestFailedError
	require.ErrorAs(t, err, &failed)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "failed to test function: pty closed")

	// The staged file is still cleaned up, and a failed removal is only logged
	require.Len(t, f.clock.Pending(), 1)
	f.scratch.On("Remove", staged.Path).Return(errors.New("already gone")).Once()
	f.clock.Flush()
	f.scratch.AssertExpectations(t)
}

func TestTestFunction_DiscoveryFailureIsWrapped(t *testing.T) {
	f := newTestFunctionFixture()
	f.finder.On("FindContracts", mock.Anything, "/work").Return(nil, errors.New("permission denied"))

	_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{})

	var failed *domain.TestFailedError
	assert.ErrorAs(t, err, &failed)
}

func TestTestFunction_InterruptDuringExecutionStillSendsCall(t *testing.T) {
	f := newTestFunctionFixture()
	f.discovers(getCountFn)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.selector.On("SelectFunction", mock.Anything, mock.Anything).Return(getCountFn, nil)
	f.finder.On("ReadContract", mock.Anything, tokenPath).Return(tokenText, nil)
	f.extractor.On("Extract", tokenText, getCountFn).Return("(define-read-only (get-count) {})", true)
	f.scratch.On("EnsureDir", mock.Anything).Return("/work/contracts", nil)
	f.scratch.On("Write", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.StagedTestFile{Path: "/work/contracts/x.clar"}, nil)
	f.driver.On("Send", mock.Anything, domain.ChannelConsole, "(define-read-only (get-count) {})").
		Run(func(mock.Arguments) { cancel() }).Return(nil).Once()
	f.driver.On("Send", mock.Anything, domain.ChannelConsole, "(get-count)").Return(nil).Once()
	f.scratch.On("Remove", "/work/contracts/x.clar").Return(nil).Once()

	result, err := f.useCase().Run(ctx, usecase.TestFunctionParams{})
	require.NoError(t, err)
	assert.Equal(t, "(get-count)", result.CallExpression)
	assert.Equal(t, []time.Duration{config.DefaultPacing().DefinitionSettle}, f.clock.Sleeps())

	require.Len(t, f.clock.Pending(), 1)
	f.clock.Flush()
	f.assertExpectations(t)
}

func TestTestFunction_NameAndValues(t *testing.T) {
	t.Run("unique name skips the picker and prompts", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.discovers(transferFn, getCountFn)
		call := "(transfer u7 " + recipient + ")"

		f.finder.On("ReadContract", mock.Anything, tokenPath).Return(tokenText, nil)
		f.extractor.On("Extract", tokenText, transferFn).Return("(define-public (transfer) {})", true)
		f.scratch.On("EnsureDir", mock.Anything).Return("/work/contracts", nil)
		f.scratch.On("Write", mock.Anything, mock.Anything, call).
			Return(&domain.StagedTestFile{Path: "/work/contracts/t.clar", Content: call}, nil)
		f.driver.On("Send", mock.Anything, domain.ChannelConsole, mock.Anything).Return(nil).Twice()

		result, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{
			Name:   "transfer",
			Values: []string{"u7", recipient},
		})

		require.NoError(t, err)
		assert.Equal(t, call, result.CallExpression)
		f.selector.AssertNotCalled(t, "SelectFunction", mock.Anything, mock.Anything)
		f.prompter.AssertNotCalled(t, "PromptValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown name", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.discovers(transferFn)

		_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{Name: "mint"})
		assert.EqualError(t, err, "no function named mint in .clar files")
	})

	t.Run("wrong value count", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.discovers(transferFn)

		_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{Name: "transfer", Values: []string{"u1"}})
		assert.EqualError(t, err, "transfer takes 2 parameters, got 1 values")
	})

	t.Run("invalid value", func(t *testing.T) {
		f := newTestFunctionFixture()
		f.discovers(transferFn)

		_, err := f.useCase().Run(context.Background(), usecase.TestFunctionParams{Name: "transfer", Values: []string{"100", recipient}})
		assert.EqualError(t, err, "parameter amount: invalid uint format. Use: u123")
	})
}
