package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanternworks/hookctl/internal/errors"
	"github.com/lanternworks/hookctl/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect per-session tracker state",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id> [path]",
	Short: "Display the edits, areas, and commands recorded for a session",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSessionShow,
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	paths, err := projectPaths(args[1:])
	if err != nil {
		return errors.ConfigError("invalid project path", err)
	}

	store, err := session.NewStore(paths, args[0])
	if err != nil {
		return errors.SessionError("open", err)
	}

	edits, err := store.Edits()
	if err != nil {
		return errors.SessionError("read", err)
	}
	if len(edits) == 0 {
		logInfo("No edits recorded for session %s", args[0])
		return nil
	}

	fmt.Println("Edited files:")
	for _, e := range edits {
		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		fmt.Printf("  [%s] %-10s %s\n", ts, e.Area, e.FilePath)
	}

	areas, err := store.Areas()
	if err != nil {
		return errors.SessionError("read", err)
	}
	fmt.Println("\nAffected areas:")
	for _, area := range areas {
		fmt.Printf("  - %s\n", area)
	}

	cmds, err := store.Commands()
	if err != nil {
		return errors.SessionError("read", err)
	}
	if len(cmds) > 0 {
		fmt.Println("\nDetected commands:")
		for _, line := range cmds {
			fmt.Printf("  %s\n", line)
		}
	}

	return nil
}
