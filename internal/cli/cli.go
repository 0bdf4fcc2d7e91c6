package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Runtime state
	verbose bool

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "thdpool",
		Short: "Dynamically-sized worker pool driver",
		Long: `thdpool drives a dynamically-sized worker pool: services are dispatched
to pre-allocated workers that park between requests, with adaptive min/max
sizing under load.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")

	a.rootCmd.AddCommand(NewBenchCmd(a))
	a.rootCmd.AddCommand(NewVersionCmd(a))
}
