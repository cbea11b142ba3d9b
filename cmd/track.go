package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lanternworks/hookctl/internal/hookio"
	"github.com/lanternworks/hookctl/internal/logging"
	"github.com/lanternworks/hookctl/internal/tracker"
)

var trackCmd = &cobra.Command{
	Use:   "track [path]",
	Short: "Record a file edit reported by the hook host",
	Long: `Reads one PostToolUse event as JSON from stdin, classifies the edited
file into a project area, and records it in the session cache along with
the tooling commands detected for that area.

Intended to be wired as a PostToolUse hook. Always exits zero: any
internal error is logged and swallowed so the assistant is never blocked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	// Hook contract: never fail the host, whatever went wrong.
	if err := track(args); err != nil {
		logging.Debug("track failed", "error", err)
	}
	return nil
}

func track(args []string) error {
	paths, err := projectPaths(args)
	if err != nil {
		return err
	}

	event, err := hookio.ReadEvent(os.Stdin)
	if err != nil {
		return err
	}

	result, err := tracker.Track(paths, event)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	logging.Debug("edit tracked",
		"file", result.RelPath,
		"area", result.Area,
		"commands", len(result.Commands),
	)
	return nil
}
