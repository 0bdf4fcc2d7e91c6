package cli

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/moharaka/thdpool/internal/cli/tui"
	"github.com/moharaka/thdpool/internal/config"
	"github.com/moharaka/thdpool/internal/events"
	"github.com/moharaka/thdpool/internal/pool"
)

// BenchOptions holds flags for the bench command
type BenchOptions struct {
	ConfigPath string        // Path to yaml config (optional)
	Min        int           // Workers created at init (-1: pool default)
	Max        int           // Initial ceiling (-1: pool default)
	Node       int           // Placement hint (-1: any)
	Name       string        // Pool display name
	Jobs       int           // Services submitted per round
	Spin       time.Duration // Busy-wait per service
	Duration   time.Duration // Total bench run time
	NoTUI      bool          // Disable TUI even when stdout is a TTY
}

// Validate checks BenchOptions for validity
func (opts BenchOptions) Validate() error {
	if opts.Min < -1 {
		return fmt.Errorf("min must be >= -1, got %d", opts.Min)
	}
	if opts.Max < -1 {
		return fmt.Errorf("max must be >= -1, got %d", opts.Max)
	}
	if opts.Jobs <= 0 {
		return fmt.Errorf("jobs must be greater than 0, got %d", opts.Jobs)
	}
	if opts.Spin < 0 {
		return fmt.Errorf("spin must not be negative, got %v", opts.Spin)
	}
	if opts.Duration <= 0 {
		return fmt.Errorf("duration must be greater than 0, got %v", opts.Duration)
	}
	if opts.Name == "" {
		return fmt.Errorf("pool name must not be empty")
	}
	return nil
}

// applyConfig fills options from the loaded config for flags the user did
// not set explicitly.
func (opts *BenchOptions) applyConfig(cfg *config.Config, flags *pflag.FlagSet) error {
	if !flags.Changed("min") {
		opts.Min = cfg.Pool.Min
	}
	if !flags.Changed("max") {
		opts.Max = cfg.Pool.Max
	}
	if !flags.Changed("node") {
		opts.Node = cfg.Pool.Node
	}
	if !flags.Changed("name") {
		opts.Name = cfg.Pool.Name
	}
	if !flags.Changed("jobs") {
		opts.Jobs = cfg.Bench.Jobs
	}
	if !flags.Changed("spin") {
		spin, err := time.ParseDuration(cfg.Bench.Spin)
		if err != nil {
			return fmt.Errorf("config bench spin: %w", err)
		}
		opts.Spin = spin
	}
	if !flags.Changed("duration") {
		d, err := time.ParseDuration(cfg.Bench.Duration)
		if err != nil {
			return fmt.Errorf("config bench duration: %w", err)
		}
		opts.Duration = d
	}
	return nil
}

// NewBenchCmd creates the 'bench' command, a synthetic load driver for the
// worker pool
func NewBenchCmd(a *App) *cobra.Command {
	opts := BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a synthetic workload against the pool",
		Long: `Bench submits rounds of busy-wait services to a worker pool and reports
how the pool sized itself. With a TTY, a live dashboard shows worker and
balance counters; otherwise lifecycle events are logged to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if err := opts.applyConfig(cfg, cmd.Flags()); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return runBench(cmd, opts, a.verbose)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "thdpool.yaml", "Path to config file")
	cmd.Flags().IntVar(&opts.Min, "min", -1, "Workers created at init (-1: default)")
	cmd.Flags().IntVar(&opts.Max, "max", -1, "Initial worker ceiling (-1: default)")
	cmd.Flags().IntVar(&opts.Node, "node", -1, "Preferred placement node (-1: any)")
	cmd.Flags().StringVar(&opts.Name, "name", config.DefaultPoolName, "Pool display name")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", config.DefaultJobs, "Services submitted per round")
	cmd.Flags().DurationVar(&opts.Spin, "spin", 2*time.Millisecond, "Busy-wait per service")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 10*time.Second, "Total run time")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Disable the live dashboard")

	return cmd
}

func runBench(cmd *cobra.Command, opts BenchOptions, verbose bool) error {
	bus := events.NewBus(256)
	defer bus.Close()

	useTUI := !opts.NoTUI && term.IsTerminal(int(os.Stdout.Fd()))
	if !useTUI {
		bus.Subscribe(events.LogHandler(events.LogConfig{
			Writer:         cmd.ErrOrStderr(),
			IncludePayload: verbose,
		}))
	}

	p, err := pool.New(pool.Config{
		Min:    opts.Min,
		Max:    opts.Max,
		Node:   opts.Node,
		Name:   opts.Name,
		Events: bus,
	})
	if err != nil {
		return err
	}

	var completed, rounds atomic.Int64
	var stop atomic.Bool

	work := func(arg any) int64 {
		spinFor(opts.Spin)
		completed.Add(1)
		return 0
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.Now().Add(opts.Duration)
		states := make([]pool.State, opts.Jobs)
		submitted := make([]bool, opts.Jobs)
		for time.Now().Before(deadline) && !stop.Load() {
			for i := range states {
				states[i].Reset()
				submitted[i] = false
			}
			for i := range states {
				for time.Now().Before(deadline) && !stop.Load() {
					err := p.SubmitService(pool.Service{Fn: work, Arg: i}, &states[i])
					if err == nil {
						submitted[i] = true
						break
					}
					if errors.Is(err, pool.ErrRetry) {
						time.Sleep(200 * time.Microsecond)
					}
				}
			}
			for i := range states {
				for submitted[i] && !states[i].Complete() {
					time.Sleep(50 * time.Microsecond)
				}
			}
			rounds.Add(1)
		}
	}()

	if useTUI {
		prog := tea.NewProgram(tui.NewModel(p.Stats()))
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					prog.Send(tui.StatsMsg{
						Stats:     p.Stats(),
						Completed: completed.Load(),
						Rounds:    rounds.Load(),
					})
				case <-done:
					prog.Send(tui.DoneMsg{})
					return
				}
			}
		}()
		if _, err := prog.Run(); err != nil {
			stop.Store(true)
			<-done
			p.Destroy()
			return err
		}
		stop.Store(true)
	}
	<-done
	p.Destroy()

	st := p.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "bench: %d services in %d rounds over %v\n",
		completed.Load(), rounds.Load(), opts.Duration)
	fmt.Fprintf(out, "pool %s: submits=%d retries=%d created=%d retired=%d max=%d\n",
		st.Name, st.Submits, st.Retries, st.Created, st.Retired, st.Max)
	return nil
}

// spinFor busy-waits to model a CPU-bound service.
func spinFor(d time.Duration) {
	if d <= 0 {
		return
	}
	end := time.Now().Add(d)
	for time.Now().Before(end) {
	}
}
