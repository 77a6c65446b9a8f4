package adapters

import (
	"github.com/google/wire"

	"github.com/trebuchet-org/clarity-cli/internal/adapters/clarity"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/fs"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/interactive"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/progress"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/terminal"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/timer"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/toolchain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// ClaritySet provides the Clarity source analysis implementations
var ClaritySet = wire.NewSet(
	clarity.NewScanner,
	wire.Bind(new(usecase.FunctionScanner), new(*clarity.Scanner)),

	clarity.NewExtractor,
	wire.Bind(new(usecase.DefinitionExtractor), new(*clarity.Extractor)),

	clarity.NewChecker,
	wire.Bind(new(usecase.ContractChecker), new(*clarity.Checker)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewContractFinderAdapter,
	wire.Bind(new(usecase.ContractFinder), new(*fs.ContractFinderAdapter)),

	fs.NewScratchStoreAdapter,
	wire.Bind(new(usecase.ScratchStore), new(*fs.ScratchStoreAdapter)),

	fs.NewPlanReaderAdapter,
	wire.Bind(new(usecase.PlanReader), new(*fs.PlanReaderAdapter)),

	fs.NewContractWatcherAdapter,
	wire.Bind(new(usecase.ContractWatcher), new(*fs.ContractWatcherAdapter)),
)

// TimerSet provides the wall clock, shared by pacing and deferred cleanup
var TimerSet = wire.NewSet(
	timer.NewClock,
	wire.Bind(new(usecase.Clock), new(*timer.Clock)),
	wire.Bind(new(usecase.Scheduler), new(*timer.Clock)),
)

// TerminalSet provides the pty-backed session driver
var TerminalSet = wire.NewSet(
	terminal.NewPTYFactory,
	terminal.NewRegistry,
	terminal.NewDriver,
	wire.Bind(new(usecase.TerminalDriver), new(*terminal.Driver)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.FunctionSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),

	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.ValuePrompter), new(*interactive.PrompterAdapter)),
)

// ToolchainSet provides the clarinet availability check
var ToolchainSet = wire.NewSet(
	toolchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ToolchainChecker), new(*toolchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	progress.NewSink,

	ClaritySet,
	FSSet,
	TimerSet,
	TerminalSet,
	InteractiveSet,
	ToolchainSet,
)
