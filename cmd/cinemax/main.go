package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinemax_cli/pkg/chat"
	"cinemax_cli/pkg/config"
	"cinemax_cli/pkg/feed"
	"cinemax_cli/pkg/logging"
	"cinemax_cli/pkg/session"
	"cinemax_cli/pkg/transcript"
	"cinemax_cli/pkg/ui"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "cinemax",
		Short: "Browse cinema listings and chat with the cinema assistant",
		Long: `cinemax shows the current movie listings in a terminal UI with a
chat panel connected to the cinema assistant backend.

When stdout is not a terminal the listings are printed as a table instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return printMovies(cmd.Context(), cmd.OutOrStdout(), cfg, feed.Query{})
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.GetConfigPath(), "Path to the configuration file")

	rootCmd.AddCommand(
		newMoviesCmd(&configPath),
		newSessionCmd(&configPath),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file, applies the environment override,
// validates the result and starts file logging.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	cfg, err = config.ApplyEnv(cfg)
	if err != nil {
		return config.Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w (config: %s)", err, path)
	}
	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	return cfg, nil
}

// openSessionStore opens the on-disk store. When it is locked by another
// running instance an in-memory store is used for this run.
func openSessionStore(cfg config.Config) (session.Store, func() error) {
	store, err := session.OpenBadgerStore(cfg.ResolveSessionDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session store unavailable, using a temporary session: %v\n", err)
		return session.NewMemoryStore(), func() error { return nil }
	}
	return store, store.Close
}

func runTUI(ctx context.Context, cfg config.Config) error {
	store, closeStore := openSessionStore(cfg)
	defer closeStore()

	sessionID, err := session.LoadOrCreate(store, time.Now)
	if err != nil {
		return err
	}

	model := ui.NewModel(
		ctx,
		feed.NewClient(cfg.FeedURL),
		chat.NewClient(cfg.ChatEndpoint, cfg.RequestTimeout()),
		transcript.New(sessionID),
		cfg.TypingInterval(),
	)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
