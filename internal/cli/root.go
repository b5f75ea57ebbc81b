package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "threadfmt",
	Short: "Format text as a numbered bulletin-board thread",
	Long: "threadfmt turns freeform text into a bulletin-board thread: comments are numbered, " +
		"signed with an anonymous name, and numbering skips ahead after deleted-post markers (＊).",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print threadfmt version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "threadfmt version %s\n", version)
	},
}
