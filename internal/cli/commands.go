package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"gradetally/internal/config"
	"gradetally/internal/core"
	"gradetally/internal/log"
	"gradetally/internal/menu"
	"gradetally/internal/tui"
)

// Register adds the gradetally subcommands to c.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "session")
	c.Register(&tuiCmd{}, "session")
	c.Register(&costsCmd{}, "reference")
}

// bootstrap loads the environment and config, applying an optional export
// path override, and builds the logger.
func bootstrap(exportFile string, logFallback io.Writer) (*config.Config, *log.Logger, func() error, error) {
	LoadEnvFile()
	cfg, err := LoadAndValidateConfig(exportFile)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closeFn, err := SetupLogger(cfg, logFallback)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeFn, nil
}

// menuCmd holds the flags for the 'menu' subcommand.
type menuCmd struct {
	exportFile string
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "record graded cards through a numbered menu" }
func (*menuCmd) Usage() string {
	return `gradetally menu [-o <file>]

  Starts the numbered menu: add card, remove card, update revenue,
  print report to the export file, quit.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "o", "", "export file path (overrides EXPORT_FILE)")
}

func (c *menuCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, closeLog, err := bootstrap(c.exportFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer closeLog()

	svc, err := NewService(cfg, logger)
	if err != nil {
		logger.Error("Failed to prepare report", log.FieldErrorType, log.ErrorTypeConfiguration, log.FieldError, err)
		return subcommands.ExitFailure
	}

	ctx = log.NewContext(ctx, logger)
	if err := menu.Run(ctx, os.Stdin, os.Stdout, svc); err != nil {
		logger.Error("Menu stopped", log.FieldError, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// tuiCmd holds the flags for the 'tui' subcommand.
type tuiCmd struct {
	exportFile string
}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "record graded cards in a full-screen terminal UI" }
func (*tuiCmd) Usage() string {
	return `gradetally tui [-o <file>]

  Shows the live tally table. Keys: a add, r remove, v revenue,
  w write report, q quit. Logs go to LOG_FILE, or nowhere when unset.
`
}

func (c *tuiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "o", "", "export file path (overrides EXPORT_FILE)")
}

func (c *tuiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, closeLog, err := bootstrap(c.exportFile, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer closeLog()

	svc, err := NewService(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing report: %v\n", err)
		return subcommands.ExitFailure
	}

	model := tui.NewModel(log.NewContext(ctx, logger), svc)
	p := tea.NewProgram(&model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// costsCmd holds the flags for the 'costs' subcommand.
type costsCmd struct {
	currency string
}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "list the reference cost table used for profit" }
func (*costsCmd) Usage() string {
	return `gradetally costs [-c <currency>]

  Prints the cost table: the built-in one, or COST_TABLE_FILE when set.
`
}

func (c *costsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "display currency (overrides CURRENCY)")
}

func (c *costsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	LoadEnvFile()
	cfg := config.Load()
	if c.currency != "" {
		cfg.Currency = strings.ToUpper(c.currency)
	}
	if !core.IsKnownCurrency(cfg.Currency) {
		fmt.Fprintf(os.Stderr, "Error: unknown currency %q\n", cfg.Currency)
		return subcommands.ExitUsageError
	}

	table, err := LoadCostTable(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cost table: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range table.Names() {
		fmt.Printf("%-30s %s\n", name, core.FormatMoney(table.Cost(name), cfg.Currency))
	}
	return subcommands.ExitSuccess
}
