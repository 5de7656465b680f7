package cmd

import (
	"github.com/l10n-kit/po-sync-helper/repository"
	"github.com/l10n-kit/po-sync-helper/util"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	cmd *cobra.Command
	O   struct {
		Mo string
	}
}

func (v *checkCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check [<XX.po>...]",
		Short: "Check catalog files for structural problems",
		Long: `Check catalog files for structural problems: duplicate msgids,
entries without a msgid, malformed source references, translation case
counts that do not match the plural setting of the header, and charset
issues.

With --mo the compiled machine-object file is read back and its messages
are verified against the catalog (missing, stale and differing
translations). Without catalog arguments the configured catalogs (or
po/*.po of the worktree) are checked.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().StringVar(&v.O.Mo, "mo", "",
		"verify this compiled machine-object file against the catalog")

	return v.cmd
}

func (v checkCommand) Execute(args []string) error {
	if len(args) == 0 {
		repository.ChdirProjectRoot()
		cfg, err := loadConfig()
		if err != nil {
			return NewStandardErrorF("fail to load configuration: %v", err)
		}
		args = util.DiscoverCatalogs(cfg.Catalogs, repository.WorkDirOrCwd())
		if len(args) == 0 {
			return newUserError("no catalog files found to check")
		}
	}
	if v.O.Mo != "" && len(args) != 1 {
		return newUserError("--mo works with a single catalog only")
	}
	ok := true
	for _, poFile := range args {
		if !util.CmdCheck(poFile, v.O.Mo) {
			ok = false
		}
	}
	if !ok {
		return NewStandardError("check command failed")
	}
	return nil
}

var checkCmd = checkCommand{}

func init() {
	rootCmd.AddCommand(checkCmd.Command())
}
