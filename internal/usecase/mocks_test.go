package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockContractFinder is a mock implementation of ContractFinder
type MockContractFinder struct {
	mock.Mock
}

func (m *MockContractFinder) FindContracts(ctx context.Context, root string) ([]string, error) {
	args := m.Called(ctx, root)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContractFinder) ReadContracts(ctx context.Context, paths []string) (map[string]string, error) {
	args := m.Called(ctx, paths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockContractFinder) ReadContract(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// MockScanner is a mock implementation of FunctionScanner
type MockScanner struct {
	mock.Mock
}

func (m *MockScanner) Scan(files map[string]string) []*domain.FunctionDescriptor {
	args := m.Called(files)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.FunctionDescriptor)
}

// MockExtractor is a mock implementation of DefinitionExtractor
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(text string, fn *domain.FunctionDescriptor) (string, bool) {
	args := m.Called(text, fn)
	return args.String(0), args.Bool(1)
}

// MockScratchStore is a mock implementation of ScratchStore
type MockScratchStore struct {
	mock.Mock
}

func (m *MockScratchStore) EnsureDir(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockScratchStore) Write(ctx context.Context, name, content string) (*domain.StagedTestFile, error) {
	args := m.Called(ctx, name, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedTestFile), args.Error(1)
}

func (m *MockScratchStore) Remove(path string) error {
	return m.Called(path).Error(0)
}

// MockSelector is a mock implementation of FunctionSelector and NetworkSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectFunction(ctx context.Context, functions []*domain.FunctionDescriptor) (*domain.FunctionDescriptor, error) {
	args := m.Called(ctx, functions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FunctionDescriptor), args.Error(1)
}

func (m *MockSelector) SelectNetwork(ctx context.Context, networks []domain.Network) (domain.Network, error) {
	args := m.Called(ctx, networks)
	return args.Get(0).(domain.Network), args.Error(1)
}

// MockPrompter is a mock implementation of ValuePrompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) PromptValue(ctx context.Context, index, total int, param domain.ParameterDescriptor) (string, error) {
	args := m.Called(ctx, index, total, param)
	return args.String(0), args.Error(1)
}

// MockDriver is a mock implementation of TerminalDriver
type MockDriver struct {
	mock.Mock
}

func (m *MockDriver) Open(ctx context.Context, channel domain.Channel) error {
	return m.Called(ctx, channel).Error(0)
}

func (m *MockDriver) Send(ctx context.Context, channel domain.Channel, text string) error {
	return m.Called(ctx, channel, text).Error(0)
}

func (m *MockDriver) SendBatch(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

// MockChecker is a mock implementation of ToolchainChecker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Check(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockPlanReader is a mock implementation of PlanReader
type MockPlanReader struct {
	mock.Mock
}

func (m *MockPlanReader) ListPlans(ctx context.Context, root string) ([]*domain.DeploymentPlan, error) {
	args := m.Called(ctx, root)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DeploymentPlan), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	usecase.NopProgress
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

var (
	_ usecase.ContractFinder      = (*MockContractFinder)(nil)
	_ usecase.FunctionScanner     = (*MockScanner)(nil)
	_ usecase.DefinitionExtractor = (*MockExtractor)(nil)
	_ usecase.ScratchStore        = (*MockScratchStore)(nil)
	_ usecase.FunctionSelector    = (*MockSelector)(nil)
	_ usecase.NetworkSelector     = (*MockSelector)(nil)
	_ usecase.ValuePrompter       = (*MockPrompter)(nil)
	_ usecase.TerminalDriver      = (*MockDriver)(nil)
	_ usecase.ToolchainChecker    = (*MockChecker)(nil)
	_ usecase.PlanReader          = (*MockPlanReader)(nil)
)
