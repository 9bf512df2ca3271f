package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/state"
)

var sessionsDBPath string

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded reasoning sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := sessionsDBPath
		if dbPath == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dbPath = cfg.State.DBPath
		}

		db, err := state.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			return err
		}

		sessions, err := db.ListSessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded.")
			return nil
		}

		for _, s := range sessions {
			finished := "running"
			if s.FinishedAt != nil {
				finished = s.FinishedAt.Format(time.RFC3339)
			}
			n, err := db.CountStates(s.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %-10s %-12s %-10s states=%-4d started=%s finished=%s\n",
				s.ID, s.Agent, s.Method, s.Status, n, s.StartedAt.Format(time.RFC3339), finished)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsDBPath, "db", "", "Run-state database path (default from config)")
}
