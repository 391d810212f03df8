// Package cli wires configuration, the Docker client, the collector and
// the TUI together under a single cobra command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rusenback/dockmon/internal/collector"
	"github.com/rusenback/dockmon/internal/config"
	"github.com/rusenback/dockmon/internal/docker"
	"github.com/rusenback/dockmon/internal/logger"
	"github.com/rusenback/dockmon/internal/session"
	"github.com/rusenback/dockmon/internal/tui"
)

var (
	cfgFlag     string
	sessionFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "dockmon",
	Short: "Terminal dashboard for Docker containers",
	Long: `dockmon polls the Docker runtime for containers and their resource
usage and renders a live color-coded table inside a tmux session it
manages itself. The selected container's logs or an interactive shell
open in new tmux windows.

Run it from any terminal; outside tmux it launches its own session and
re-runs itself inside.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFlag, "config", "", "config file (default .dockmon.yaml or ~/.config/dockmon/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", "", "tmux session name")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose logging output")
}

// SetVersionInfo sets the version string shown by --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(cfgFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	if sessionFlag != "" {
		cfg.Session = sessionFlag
	}

	log, err := logger.NewFileLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	// Outside tmux: launch a managed session that re-runs this command
	// inside its monitor window, then exit.
	if os.Getenv("TMUX") == "" {
		log.Info("not inside tmux, launching session %q", cfg.Session)
		return session.Launch(cfg.Session, cfg.LogFile, strings.Join(os.Args, " "))
	}

	client, err := docker.NewClient(docker.DefaultConfig())
	if err != nil {
		fmt.Printf("❌ Failed to connect to Docker: %v\n", err)
		fmt.Println("\nMake sure Docker is running:")
		fmt.Println("  sudo systemctl start docker")
		fmt.Println("  sudo usermod -aG docker $USER")
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr := session.NewManager(cfg.Session, client, cfg.QueryTimeout, log)
	// Tear the tmux session down on every exit path: quit, signal, fault.
	defer mgr.Kill()

	coll := collector.New(docker.NewQuery(cfg.QueryTimeout, log), collector.Options{
		ProcessInterval: cfg.ProcessInterval,
		StatsInterval:   cfg.StatsInterval,
		SummaryInterval: cfg.SummaryInterval,
	}, log)
	coll.Run(ctx)

	renderer := tui.NewRenderer(tui.Thresholds{
		CPUYellow: cfg.CPUYellow,
		CPURed:    cfg.CPURed,
		MemYellow: cfg.MemYellow,
		MemRed:    cfg.MemRed,
	}, log)

	m := tui.NewModel(coll, mgr, renderer, log, cfg.RedrawMaxWait)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// A signal cancels ctx; quit the program so the deferred teardown runs.
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		log.Error("program: %v", err)
		return err
	}
	return nil
}
