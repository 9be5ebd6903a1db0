package root

import (
	"github.com/spf13/cobra"

	"github.com/backtrack-framework/backtrack/cmd/passwords"

	"github.com/backtrack-framework/backtrack/cmd/weasel"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "backtrack",
		Short: "Backtrack is an open-source candidate search framework",
		Long: `An open-source backtracking search framework written in Go.
For more information visit https://github.com/backtrack-framework/backtrack`,
	}

	// add sub-commands
	rootCmd.AddCommand(passwords.NewPasswordsCommand())
	rootCmd.AddCommand(weasel.NewWeaselCommand())

	return rootCmd
}
