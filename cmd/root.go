package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lanternworks/hookctl/internal/config"
	"github.com/lanternworks/hookctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "hookctl",
	Short: "Automation hooks for AI coding assistants",
	Long: `hookctl inspects a project and keeps the assistant's configuration current.

It is normally invoked by the assistant's hook system:
  - skills setup  keeps .claude/skills/skill-rules.json in step with the project
  - track         records edited files and the tooling commands they imply

All hook-invoked paths exit zero regardless of internal errors, so a
broken hook can never block the assistant's workflow.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)

// projectPaths resolves the project layout from an optional positional
// path argument, defaulting to the current directory.
func projectPaths(args []string) (*config.Paths, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	return config.NewPaths(root)
}
