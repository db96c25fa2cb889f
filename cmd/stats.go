package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/quizflow/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your local answer statistics",
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

		ctx := context.Background()
		total, correct, err := s.EventRepo().CountAnswers(ctx)
		if err != nil {
			return fmt.Errorf("count answers: %w", err)
		}

		if total == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		accuracy := float64(correct) / float64(total) * 100
		fmt.Printf("Answered: %d   Correct: %d   Accuracy: %.0f%%\n\n", total, correct, accuracy)

		quizzes, err := s.EventRepo().AnswerStats(ctx)
		if err != nil {
			return fmt.Errorf("aggregate answers: %w", err)
		}

		fmt.Printf("%-10s  %-8s  %-8s  %s\n", "Quiz", "Total", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 42))
		for _, q := range quizzes {
			var rate float64
			if q.Total > 0 {
				rate = float64(q.Correct) / float64(q.Total) * 100
			}
			fmt.Printf("%-10d  %-8d  %-8d  %.0f%%\n", q.QuizID, q.Total, q.Correct, rate)
		}
		return nil
	},
}
