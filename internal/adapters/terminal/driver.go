package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// submit is sent after every console command; the console only evaluates
// input once it sees a carriage return.
const submit = "\r"

// Driver sends commands to the commands and console sessions. There is no
// acknowledgement from the console, so ordering relies on the pacing delays.
type Driver struct {
	registry  *Registry
	clock     usecase.Clock
	scheduler usecase.Scheduler
	progress  usecase.ProgressSink
	log       *slog.Logger

	root     string
	clarinet string
	pacing   config.PacingPolicy
}

// NewDriver creates a new session driver
func NewDriver(
	cfg *config.RuntimeConfig,
	registry *Registry,
	clock usecase.Clock,
	scheduler usecase.Scheduler,
	progress usecase.ProgressSink,
	log *slog.Logger,
) *Driver {
	clarinet := cfg.ClarinetPath
	if clarinet == "" {
		clarinet = "clarinet"
	}
	return &Driver{
		registry:  registry,
		clock:     clock,
		scheduler: scheduler,
		progress:  progress,
		log:       log.With("component", "SessionDriver"),
		root:      cfg.ProjectRoot,
		clarinet:  clarinet,
		pacing:    cfg.Pacing,
	}
}

// Send delivers text on channel
func (d *Driver) Send(ctx context.Context, channel domain.Channel, text string) error {
	if d.root == "" {
		return domain.ErrNoProject
	}

	switch channel {
	case domain.ChannelCommands:
		return d.sendCommand(text)
	case domain.ChannelConsole:
		return d.sendConsole(ctx, text)
	default:
		return fmt.Errorf("unknown channel %q", channel)
	}
}

func (d *Driver) sendCommand(text string) error {
	term, _, err := d.registry.GetOrCreate(domain.ChannelCommands)
	if err != nil {
		return err
	}
	term.Show()

	command := d.substitute(text)
	if err := term.SendText(d.cd(), true); err != nil {
		return err
	}
	if err := term.SendText(command, true); err != nil {
		return err
	}

	d.log.Debug("sent command", "terminal", term.Name(), "command", command)
	d.progress.Info("Running: " + command)
	return nil
}

func (d *Driver) sendConsole(ctx context.Context, text string) error {
	term, err := d.openConsole(ctx)
	if err != nil {
		return err
	}
	term.Show()
	return d.submit(term, text)
}

// Open starts the session for channel without sending anything else
func (d *Driver) Open(ctx context.Context, channel domain.Channel) error {
	if d.root == "" {
		return domain.ErrNoProject
	}

	switch channel {
	case domain.ChannelCommands:
		term, _, err := d.registry.GetOrCreate(channel)
		if err != nil {
			return err
		}
		term.Show()
		return nil
	case domain.ChannelConsole:
		_, err := d.openConsole(ctx)
		return err
	default:
		return fmt.Errorf("unknown channel %q", channel)
	}
}

// openConsole returns the console session, starting the console and waiting
// out the warm-up when the session is new
func (d *Driver) openConsole(ctx context.Context) (Terminal, error) {
	term, created, err := d.registry.GetOrCreate(domain.ChannelConsole)
	if err != nil {
		return nil, err
	}
	if !created {
		return term, nil
	}

	if err := d.startConsole(term); err != nil {
		return nil, err
	}
	term.Show()

	d.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   "console_warmup",
		Message: "Starting clarinet console...",
		Spinner: true,
	})
	err = d.clock.Sleep(ctx, d.pacing.ConsoleWarmup)
	d.progress.OnProgress(ctx, usecase.ProgressEvent{Stage: "console_ready"})
	if err != nil {
		return nil, err
	}
	return term, nil
}

// SendBatch starts the console and schedules every non-blank line of text.
// It returns once the lines are scheduled; delivery happens in the background.
func (d *Driver) SendBatch(ctx context.Context, text string) error {
	if d.root == "" {
		return domain.ErrNoProject
	}

	term, created, err := d.registry.GetOrCreate(domain.ChannelConsole)
	if err != nil {
		return err
	}
	term.Show()
	if created {
		if err := d.startConsole(term); err != nil {
			return err
		}
	}

	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	for i, line := range lines {
		delay := d.pacing.BatchSettle + d.pacing.BatchInterval*time.Duration(i)
		d.scheduler.After(delay, func() {
			d.log.Debug("sending batch line", "index", i+1, "total", len(lines), "line", line)
			if err := d.submit(term, line); err != nil {
				d.log.Warn("failed to send batch line", "index", i+1, "error", err)
			}
		})
	}
	return nil
}

func (d *Driver) startConsole(term Terminal) error {
	return term.SendText(fmt.Sprintf("%s && %s console", d.cd(), d.clarinet), true)
}

func (d *Driver) submit(term Terminal, text string) error {
	if err := term.SendText(text, true); err != nil {
		return err
	}
	return term.SendText(submit, false)
}

func (d *Driver) cd() string {
	return `cd "` + d.root + `"`
}

// substitute replaces the first bare clarinet token with the configured tool path
func (d *Driver) substitute(command string) string {
	return strings.Replace(command, "clarinet", d.clarinet, 1)
}

var _ usecase.TerminalDriver = (*Driver)(nil)
