package cmd

import (
	"fmt"

	"github.com/abhisek/quizflow/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the local visit history and feed order",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.SessionRepo().Clear(); err != nil {
			return fmt.Errorf("clear session data: %w", err)
		}

		fmt.Println("Session data cleared. The answer log is kept; use your file manager to delete the database entirely.")
		return nil
	},
}
