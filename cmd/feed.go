package cmd

import (
	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the quiz feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
