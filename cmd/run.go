package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/app"
	"github.com/abhisek/quizflow/internal/coach"
	"github.com/abhisek/quizflow/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sessionRepo := st.SessionRepo()
	if err := sessionRepo.StartSession(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not reset session state:", err)
	}

	apiCfg := api.ConfigFromEnv()
	if err := apiCfg.Validate(); err != nil {
		return fmt.Errorf("API configuration: %w", err)
	}

	client := api.New(apiCfg)
	// A rejected token is dropped for the rest of the run; the feed
	// keeps working anonymously instead of resending bad credentials.
	client.SetUnauthorizedHook(client.Logout)

	opts := app.Options{
		Client:      client,
		SessionRepo: sessionRepo,
		EventRepo:   st.EventRepo(),
	}

	// The coach is optional; the feed works without it.
	if coachCfg, ok := coach.DiscoverConfig(); ok {
		provider, err := coach.NewProvider(context.Background(), coachCfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Coach provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Explanations will be unavailable.")
		} else {
			opts.CoachService = coach.NewService(provider)
		}
	}

	return app.Run(opts)
}
