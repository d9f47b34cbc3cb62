package main

import (
	"fmt"
	"time"

	"cinemax_cli/pkg/session"

	"github.com/spf13/cobra"
)

func newSessionCmd(configPath *string) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Print the chat session id",
		Long: `Print the chat session id sent with every chat request.

With --reset a new id is generated, starting a fresh conversation on the
backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			store, err := session.OpenBadgerStore(cfg.ResolveSessionDir())
			if err != nil {
				return fmt.Errorf("opening session store: %w", err)
			}
			defer store.Close()

			var id string
			if reset {
				id, err = session.Reset(store, time.Now)
			} else {
				id, err = session.LoadOrCreate(store, time.Now)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Generate a new session id")
	return cmd
}
