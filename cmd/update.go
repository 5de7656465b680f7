package cmd

import (
	"github.com/l10n-kit/po-sync-helper/repository"
	"github.com/l10n-kit/po-sync-helper/util"
	"github.com/spf13/cobra"
)

type updateCommand struct {
	cmd *cobra.Command
	O   struct {
		Messages string
		Output   string
	}
}

func (v *updateCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "update [<XX.po>...]",
		Short: "Merge a message inventory into XX.po files",
		Long: `Merge freshly extracted messages into translation catalogs.

Translations, translator comments and flags of existing entries are
preserved. Source references are refreshed from the inventory, and new
messages are appended in extraction order. A catalog that does not exist
yet is created from scratch.

Without catalog arguments the configured catalogs (or po/*.po of the
worktree) are used. Use --dryrun to see what would change without
writing anything.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().StringVarP(&v.O.Messages, "messages", "m", "",
		"message inventory to read (defaults to the configured inventory)")
	v.cmd.Flags().StringVarP(&v.O.Output, "output", "o", "",
		"write the merged catalog here instead of in place (use - for stdout)")

	return v.cmd
}

func (v updateCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return NewStandardErrorF("fail to load configuration: %v", err)
	}
	messages := v.O.Messages
	if messages == "" {
		messages = cfg.Messages
	}
	if len(args) == 0 {
		repository.ChdirProjectRoot()
		poFile, err := util.SelectCatalog(
			util.DiscoverCatalogs(cfg.Catalogs, repository.WorkDirOrCwd()))
		if err != nil {
			return newUserError(err.Error())
		}
		args = []string{poFile}
	}
	if v.O.Output != "" && len(args) > 1 {
		return newUserError("--output works with a single catalog only")
	}
	for _, poFile := range args {
		if !util.CmdUpdate(poFile, messages, v.O.Output, cfg) {
			return NewStandardError("update command failed")
		}
	}
	return nil
}

var updateCmd = updateCommand{}

func init() {
	rootCmd.AddCommand(updateCmd.Command())
}
