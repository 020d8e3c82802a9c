package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/talvid/swipedeck/internal/config"
	"github.com/talvid/swipedeck/internal/deck"
	"github.com/talvid/swipedeck/internal/logger"
	"github.com/talvid/swipedeck/internal/tui"
)

type rootFlags struct {
	configPath string
	question   string
	layout     string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swipedeck [deck.yaml]",
		Short:         "Swipedeck browses question decks with card-swipe navigation",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(flags, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to a file instead of discarding them")
	cmd.Flags().StringVarP(&flags.question, "question", "q", "", "Open at a question, by number or exact text")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "Force a layout: auto, compact or extended")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig layers the command line over the config file and defaults.
func loadConfig(flags *rootFlags, args []string) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		cfg.Deck = args[0]
	}
	if flags.layout != "" {
		cfg.Layout = flags.layout
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Deck) == "" {
		return nil, fmt.Errorf("a deck file is required: pass one as an argument or set deck in the config")
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	if cfg.Log.File == "" {
		// The TUI owns the terminal; without a file sink, logs are
		// discarded.
		return nil, nil
	}
	return logger.New(logger.Options{
		Level:    cfg.Log.Level,
		FilePath: cfg.Log.File,
	})
}

func runBrowse(flags *rootFlags, args []string) error {
	cfg, err := loadConfig(flags, args)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	d, err := deck.Load(cfg.Deck)
	if err != nil {
		return err
	}

	startIndex := 0
	if flags.question != "" {
		idx, ok := d.ResolveRef(flags.question)
		if !ok {
			return fmt.Errorf("no question matches %q", flags.question)
		}
		startIndex = idx
	}

	model, err := tui.NewModel(cfg, d, startIndex, log)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		log.Error(err, "browser exited with error")
		return err
	}
	return nil
}
