package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/l10n-kit/po-sync-helper/flag"
	"github.com/l10n-kit/po-sync-helper/repository"
	"github.com/l10n-kit/po-sync-helper/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
	O   struct {
		JSON bool
	}
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat [<XX.po>...]",
		Short: "Report statistics for catalog files",
		Long: `Report entry statistics for catalog files:
  translated   - entries with non-empty translation
  untranslated - entries with empty msgstr
  same         - entries where msgstr equals msgid (suspect untranslated)
  fuzzy        - entries with fuzzy flag
  plural       - entries with a msgid_plural form
  obsolete     - obsolete entries (#~ format)

Without catalog arguments the configured catalogs (or po/*.po of the
worktree) are reported.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().BoolVar(&v.O.JSON, "json", false,
		"output statistics as JSON")

	return v.cmd
}

// statReport pairs a catalog path with its statistics for JSON output.
type statReport struct {
	File string `json:"file"`
	util.CatalogStats
}

func (v statCommand) Execute(args []string) error {
	if len(args) == 0 {
		repository.ChdirProjectRoot()
		cfg, err := loadConfig()
		if err != nil {
			return NewStandardErrorF("fail to load configuration: %v", err)
		}
		args = util.DiscoverCatalogs(cfg.Catalogs, repository.WorkDirOrCwd())
		if len(args) == 0 {
			return newUserError("no catalog files found")
		}
	}
	for _, poFile := range args {
		if !util.Exist(poFile) {
			return newUserError("file does not exist:", poFile)
		}
	}
	if v.O.JSON {
		return v.reportJSON(args)
	}
	return v.reportText(args)
}

func (v statCommand) reportText(args []string) error {
	for _, poFile := range args {
		stats, err := util.CountCatalogStats(poFile)
		if err != nil {
			return err
		}
		if flag.Verbose() > 0 {
			title := fmt.Sprintf("catalog: %s", poFile)
			fmt.Println(title)
			fmt.Println(strings.Repeat("-", len(title)))
			fmt.Printf("  translated:   %d\n", stats.Translated)
			fmt.Printf("  untranslated: %d\n", stats.Untranslated)
			fmt.Printf("  same:         %d\n", stats.Same)
			fmt.Printf("  fuzzy:        %d\n", stats.Fuzzy)
			fmt.Printf("  plural:       %d\n", stats.Plural)
			fmt.Printf("  obsolete:     %d\n", stats.Obsolete)
		} else if len(args) > 1 {
			fmt.Printf("%s: %s", poFile, util.FormatStatLine(stats))
		} else {
			fmt.Print(util.FormatStatLine(stats))
		}
	}
	return nil
}

func (v statCommand) reportJSON(args []string) error {
	reports := make([]statReport, 0, len(args))
	for _, poFile := range args {
		stats, err := util.CountCatalogStats(poFile)
		if err != nil {
			return err
		}
		reports = append(reports, statReport{File: poFile, CatalogStats: *stats})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encode stat JSON: %w", err)
	}
	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
