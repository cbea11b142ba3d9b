package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanternworks/hookctl/internal/analyzer"
	"github.com/lanternworks/hookctl/internal/skillrules"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a project and report detected technologies",
	Long: `Scans the project's dependency manifests, directory layout, and existing
skill definitions, then reports the detected technologies and project types.

Read-only: nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	paths, err := projectPaths(args)
	if err != nil {
		return err
	}

	analysis := analyzer.New(paths).Analyze()

	if analyzeJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	logInfo("Project: %s", paths.ProjectRoot)
	printList("Dependencies", analysis.Dependencies)
	printList("Technologies", analysis.Technologies)

	types := make([]string, 0, len(analysis.ProjectTypes))
	for _, pt := range analysis.ProjectTypes {
		types = append(types, string(pt))
	}
	printList("Project types", types)
	printList("Existing skills", analysis.ExistingSkills)

	doc := skillrules.Load(paths.SkillRulesPath)
	if skillrules.NeedsUpdate(analysis, doc) {
		logWarning("Skill rules are out of date; run: hookctl skills setup")
	} else {
		logSuccess("Skill rules are up to date")
	}

	return nil
}

func printList(label string, items []string) {
	if len(items) == 0 {
		fmt.Printf("%s: none\n", label)
		return
	}
	fmt.Printf("%s:\n", label)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
