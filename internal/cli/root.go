package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/wayfarer/internal/config"
	"github.com/alexanderramin/wayfarer/internal/logging"
	"github.com/alexanderramin/wayfarer/internal/tracker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App holds the wired dependencies used by CLI commands and the TUI.
type App struct {
	Tracker *tracker.Tracker
	Config  config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// newApp assembles an App from the effective configuration. The
// returned cleanup closes the log file, if any.
func newApp(cfg config.Config) (*App, func(), error) {
	logger := logging.Discard()
	cleanup := func() {}
	if cfg.LogFile != "" {
		fileLogger, closeLog, err := logging.File(cfg.LogFile, cfg.Verbose)
		if err != nil {
			return nil, nil, err
		}
		logger = fileLogger
		cleanup = func() { _ = closeLog() }
	}

	app := &App{
		Tracker: tracker.New(tracker.Resolve(cfg.Source), logger),
		Config:  cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	return app, cleanup, nil
}

// NewRootCmd creates the top-level "wayfarer" command. The root command
// opens the TUI; subcommands cover non-interactive use.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wayfarer",
		Short: "Personal roadmap progress tracker",
		Long: "Wayfarer tracks your progress through a learning roadmap: an ordered\n" +
			"list of topics, each with a status, optional due date, and notes.\n" +
			"Edits live in memory for the session; export writes them to a file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			app, cleanup, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			return runTUI(app)
		},
	}

	cobra.OnInitialize(initConfig)

	root.PersistentFlags().String("config", "", "config file (default .wayfarer.yaml)")
	root.PersistentFlags().String("source", "", "roadmap source (URL or file path)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("source", root.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		newProgressCmd(),
		newValidateCmd(),
		newExportCmd(),
	)

	return root
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".wayfarer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("WAYFARER")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runTUI starts the interactive program. The TUI owns the terminal, so
// it refuses to start when stdin is not one.
func runTUI(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("wayfarer requires an interactive terminal; try 'wayfarer progress' or 'wayfarer export'")
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
