package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanternworks/hookctl/internal/analyzer"
	"github.com/lanternworks/hookctl/internal/errors"
	"github.com/lanternworks/hookctl/internal/skillrules"
	"github.com/lanternworks/hookctl/internal/tui"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the skill-rules document",
}

var skillsSetupCmd = &cobra.Command{
	Use:   "setup [path]",
	Short: "Generate or refresh .claude/skills/skill-rules.json",
	Long: `Analyzes the project and keeps the skill-rules document in step with it.

First-time setup (no document yet) writes the generated rules unattended.
When a document already exists but is missing rules for newly detected
project types or skills, overwriting requires confirmation: answer the
prompt, or pass --yes. This asymmetry is deliberate — an existing document
may carry hand-tuned rules.

With --hook, first-time setup still writes unattended; once a document
exists the command only reports staleness and always exits zero, leaving
the overwrite decision to the assistant asking the user. With --check,
nothing is ever written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkillsSetup,
}

var (
	skillsYes   bool
	skillsCheck bool
	skillsHook  bool
)

func init() {
	skillsSetupCmd.Flags().BoolVarP(&skillsYes, "yes", "y", false, "Overwrite a stale document without prompting")
	skillsSetupCmd.Flags().BoolVar(&skillsCheck, "check", false, "Only report whether the document is stale")
	skillsSetupCmd.Flags().BoolVar(&skillsHook, "hook", false, "Hook mode: never prompt, always exit zero; report staleness once a document exists")
	skillsCmd.AddCommand(skillsSetupCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsSetup(cmd *cobra.Command, args []string) error {
	err := skillsSetup(args)
	if skillsHook && err != nil {
		// Hook contract: never fail the host.
		logError("skills setup failed: %v", err)
		return nil
	}
	return err
}

func skillsSetup(args []string) error {
	paths, err := projectPaths(args)
	if err != nil {
		return errors.ConfigError("invalid project path", err)
	}

	analysis := analyzer.New(paths).Analyze()
	doc := skillrules.Load(paths.SkillRulesPath)

	if !skillrules.NeedsUpdate(analysis, doc) {
		logSuccess("Skill rules are up to date (%d rules)", len(doc.Skills))
		return nil
	}

	missing := skillrules.MissingNames(analysis, doc)

	// --check never writes, not even on a first run.
	if skillsCheck {
		if doc == nil {
			logWarning("No skill rules document at %s", paths.SkillRulesPath)
			logInfo("Run 'hookctl skills setup' to generate")
		} else {
			logWarning("Skill rules are missing: %s", strings.Join(missing, ", "))
			logInfo("Run 'hookctl skills setup --yes' to regenerate")
		}
		return nil
	}

	// First-time setup runs unattended, in hook mode too.
	if doc == nil {
		generated := skillrules.Generate(analysis)
		if err := generated.Save(paths.SkillRulesPath); err != nil {
			return errors.ConfigError("failed to write skill rules", err)
		}
		logSuccess("Skill rules written to %s", paths.SkillRulesPath)
		for _, name := range generated.Names() {
			logInfo("  - %s", name)
		}
		return nil
	}

	logWarning("Skill rules are missing: %s", strings.Join(missing, ", "))

	if skillsHook {
		logInfo("Run 'hookctl skills setup --yes' to regenerate")
		return nil
	}

	if !skillsYes {
		ok, err := tui.Confirm(
			"Regenerate skill rules?",
			"The existing document will be replaced. Missing: "+strings.Join(missing, ", "),
		)
		if err != nil {
			return errors.ConfigError("confirmation prompt failed", err)
		}
		if !ok {
			logInfo("Keeping the existing skill rules")
			return nil
		}
	}

	generated := skillrules.Generate(analysis)
	if err := generated.Save(paths.SkillRulesPath); err != nil {
		return errors.ConfigError("failed to write skill rules", err)
	}
	logSuccess("Skill rules regenerated (%d rules)", len(generated.Skills))
	return nil
}
